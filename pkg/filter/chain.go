package filter

import (
	"fmt"
)

// Entry is one step of a filter chain: a filter and its optional
// parameters. A nil Parms selects the filter's defaults.
type Entry struct {
	Type  FilterType
	Parms Parms
}

// Chain is an ordered sequence of filters as declared by a stream
// dictionary's /Filter array, first entry outermost. A chain is built per
// stream and consumed once for a decode or an encode; the zero value is an
// empty chain that passes data through unchanged.
type Chain struct {
	entries []Entry
}

// NewChain builds a parameter-less chain over the given filters.
func NewChain(types ...FilterType) *Chain {
	c := &Chain{}
	for _, t := range types {
		c.Add(t, nil)
	}
	return c
}

// Add appends a filter with optional parameters.
func (c *Chain) Add(t FilterType, parms Parms) {
	c.entries = append(c.entries, Entry{Type: t, Parms: parms})
}

// Entries returns the chain in declared order.
func (c *Chain) Entries() []Entry {
	return c.entries
}

// Decode applies the decode side of every filter in declared order.
func (c *Chain) Decode(data []byte) ([]byte, error) {
	for _, e := range c.entries {
		var err error
		data, err = decodeEntry(data, e)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

func decodeEntry(data []byte, e Entry) ([]byte, error) {
	switch e.Type {
	case FlateDecode:
		p, _ := e.Parms.(*FlateParms)
		return DecodeFlate(data, p)
	case LZWDecode:
		p, _ := e.Parms.(*LZWParms)
		return DecodeLZW(data, p)
	case ASCII85Decode:
		return DecodeASCII85(data)
	case ASCIIHexDecode:
		return DecodeASCIIHex(data)
	case RunLengthDecode:
		return DecodeRunLength(data)
	case CCITTFaxDecode:
		p, _ := e.Parms.(*CCITTFaxParms)
		return DecodeCCITTFax(data, p)
	case DCTDecode:
		p, _ := e.Parms.(*DCTParms)
		return DecodeDCT(data, p)
	case JPXDecode:
		return DecodeJPX(data)
	case JBIG2Decode:
		p, _ := e.Parms.(*JBIG2Parms)
		return DecodeJBIG2(data, p)
	case Crypt:
		// Decryption belongs to the caller; pass through.
		return data, nil
	}
	return nil, fmt.Errorf("%w: unrecognized filter type %d", ErrMalformed, int(e.Type))
}

// Encode applies the encode side of every filter in reverse declared
// order, so that Decode over the declared order reproduces the input. The
// image filters have no context-free encode and fail with an
// UnsupportedError.
func (c *Chain) Encode(data []byte) ([]byte, error) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		var err error
		data, err = encodeEntry(data, c.entries[i])
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

func encodeEntry(data []byte, e Entry) ([]byte, error) {
	switch e.Type {
	case FlateDecode:
		return EncodeFlate(data, 6)
	case LZWDecode:
		return EncodeLZW(data)
	case ASCII85Decode:
		return EncodeASCII85(data)
	case ASCIIHexDecode:
		return EncodeASCIIHex(data)
	case RunLengthDecode:
		return EncodeRunLength(data)
	case CCITTFaxDecode, DCTDecode, JPXDecode, JBIG2Decode:
		return nil, UnsupportedError{
			Filter: e.Type.Name(),
			Reason: "encode not supported in a chain",
		}
	case Crypt:
		return data, nil
	}
	return nil, fmt.Errorf("%w: unrecognized filter type %d", ErrMalformed, int(e.Type))
}
