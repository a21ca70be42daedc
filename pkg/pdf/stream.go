package pdf

import (
	"fmt"

	"github.com/quaddle/go-pdflib/pkg/filter"
)

// FilterChain resolves the stream dictionary's /Filter entry (a name or an
// array of names) and /DecodeParms entry (a dictionary or a parallel array,
// with null holes for filters that take none) into a parameterized chain.
func (s Stream) FilterChain() (*filter.Chain, error) {
	filterObj := s.Dictionary.Get("Filter")
	if filterObj == nil {
		return &filter.Chain{}, nil
	}

	var names []Name
	switch f := filterObj.(type) {
	case Name:
		names = []Name{f}
	case Array:
		for _, item := range f {
			n, ok := item.(Name)
			if !ok {
				return nil, fmt.Errorf("non-name entry in /Filter array: %v", item)
			}
			names = append(names, n)
		}
	default:
		return nil, fmt.Errorf("/Filter must be a name or an array of names, got %v", filterObj)
	}

	parmsObj := s.Dictionary.Get("DecodeParms")

	chain := &filter.Chain{}
	for i, name := range names {
		t, ok := filter.FromName(string(name))
		if !ok {
			return nil, fmt.Errorf("unknown filter: %s", name)
		}

		var parmsDict Dictionary
		switch p := parmsObj.(type) {
		case Dictionary:
			if len(names) == 1 {
				parmsDict = p
			}
		case Array:
			if i < len(p) {
				if d, ok := p[i].(Dictionary); ok {
					parmsDict = d
				}
			}
		}

		parms, err := filterParms(t, parmsDict)
		if err != nil {
			return nil, err
		}
		chain.Add(t, parms)
	}

	return chain, nil
}

// filterParms converts one /DecodeParms dictionary into the parameter
// struct for the filter. A nil or irrelevant dictionary yields nil,
// selecting the filter's defaults.
func filterParms(t filter.FilterType, d Dictionary) (filter.Parms, error) {
	if d == nil {
		return nil, nil
	}

	switch t {
	case filter.FlateDecode:
		p := &filter.FlateParms{}
		if v, ok := d.GetInt("Predictor"); ok {
			p.Predictor = int(v)
		}
		if v, ok := d.GetInt("Colors"); ok {
			p.Colors = int(v)
		}
		if v, ok := d.GetInt("BitsPerComponent"); ok {
			p.BitsPerComponent = int(v)
		}
		if v, ok := d.GetInt("Columns"); ok {
			p.Columns = int(v)
		}
		return p, nil

	case filter.LZWDecode:
		p := &filter.LZWParms{EarlyChange: 1}
		if v, ok := d.GetInt("Predictor"); ok {
			p.Predictor = int(v)
		}
		if v, ok := d.GetInt("Colors"); ok {
			p.Colors = int(v)
		}
		if v, ok := d.GetInt("BitsPerComponent"); ok {
			p.BitsPerComponent = int(v)
		}
		if v, ok := d.GetInt("Columns"); ok {
			p.Columns = int(v)
		}
		if v, ok := d.GetInt("EarlyChange"); ok {
			p.EarlyChange = int(v)
		}
		return p, nil

	case filter.CCITTFaxDecode:
		p := filter.DefaultCCITTFaxParms()
		if v, ok := d.GetInt("K"); ok {
			p.K = int(v)
		}
		if v, ok := d.GetBool("EndOfLine"); ok {
			p.EndOfLine = v
		}
		if v, ok := d.GetBool("EncodedByteAlign"); ok {
			p.EncodedByteAlign = v
		}
		if v, ok := d.GetInt("Columns"); ok {
			p.Columns = int(v)
		}
		if v, ok := d.GetInt("Rows"); ok {
			p.Rows = int(v)
		}
		if v, ok := d.GetBool("EndOfBlock"); ok {
			p.EndOfBlock = v
		}
		if v, ok := d.GetBool("BlackIs1"); ok {
			p.BlackIs1 = v
		}
		if v, ok := d.GetInt("DamagedRowsBeforeError"); ok {
			p.DamagedRowsBeforeError = int(v)
		}
		return p, nil

	case filter.DCTDecode:
		p := &filter.DCTParms{}
		if v, ok := d.GetInt("ColorTransform"); ok {
			p.ColorTransform = int(v)
		}
		return p, nil

	case filter.JBIG2Decode:
		p := &filter.JBIG2Parms{}
		if g, ok := d.Get("JBIG2Globals").(Stream); ok {
			globals, err := g.Decode()
			if err != nil {
				return nil, fmt.Errorf("JBIG2Globals: %w", err)
			}
			p.Globals = globals
		}
		return p, nil
	}

	// ASCII85, ASCIIHex, RunLength, JPX and Crypt take no parameters here.
	return nil, nil
}

// Decode runs the stream's raw data through its declared filter chain and
// returns the fully decoded content bytes.
func (s Stream) Decode() ([]byte, error) {
	chain, err := s.FilterChain()
	if err != nil {
		return nil, err
	}
	return chain.Decode(s.Data)
}

// EncodeStream authors a stream: it encodes data through the chain
// (outermost filter applied last) and builds the dictionary with the
// matching /Filter entry and /Length.
func EncodeStream(data []byte, chain *filter.Chain) (Stream, error) {
	encoded, err := chain.Encode(data)
	if err != nil {
		return Stream{}, err
	}

	dict := Dictionary{"Length": Integer(len(encoded))}
	switch entries := chain.Entries(); len(entries) {
	case 0:
	case 1:
		dict["Filter"] = Name(entries[0].Type.Name())
	default:
		names := make(Array, len(entries))
		for i, e := range entries {
			names[i] = Name(e.Type.Name())
		}
		dict["Filter"] = names
	}

	return Stream{Dictionary: dict, Data: encoded}, nil
}
