// Package filter implements the PDF stream filters: the byte transforms
// named by a stream dictionary's /Filter entry, the TIFF and PNG predictors
// used with them, and the composition of several filters into an ordered
// chain. Every function is a pure transform over a byte buffer and is safe
// for concurrent use.
package filter

import (
	"errors"
)

// FilterType identifies one of the stream filters defined by the PDF
// specification. The set is closed; code dispatching on a FilterType
// switches over every variant rather than going through an interface.
type FilterType int

const (
	FlateDecode FilterType = iota
	LZWDecode
	ASCII85Decode
	ASCIIHexDecode
	RunLengthDecode
	CCITTFaxDecode
	DCTDecode
	JPXDecode
	JBIG2Decode
	Crypt
)

// FromName resolves a PDF filter name to its type. Both the full names and
// the standard abbreviations (Fl, LZW, A85, AHx, RL, CCF, DCT) are accepted.
func FromName(name string) (FilterType, bool) {
	switch name {
	case "FlateDecode", "Fl":
		return FlateDecode, true
	case "LZWDecode", "LZW":
		return LZWDecode, true
	case "ASCII85Decode", "A85":
		return ASCII85Decode, true
	case "ASCIIHexDecode", "AHx":
		return ASCIIHexDecode, true
	case "RunLengthDecode", "RL":
		return RunLengthDecode, true
	case "CCITTFaxDecode", "CCF":
		return CCITTFaxDecode, true
	case "DCTDecode", "DCT":
		return DCTDecode, true
	case "JPXDecode":
		return JPXDecode, true
	case "JBIG2Decode":
		return JBIG2Decode, true
	case "Crypt":
		return Crypt, true
	}
	return 0, false
}

// Name returns the canonical PDF name for the filter.
func (f FilterType) Name() string {
	switch f {
	case FlateDecode:
		return "FlateDecode"
	case LZWDecode:
		return "LZWDecode"
	case ASCII85Decode:
		return "ASCII85Decode"
	case ASCIIHexDecode:
		return "ASCIIHexDecode"
	case RunLengthDecode:
		return "RunLengthDecode"
	case CCITTFaxDecode:
		return "CCITTFaxDecode"
	case DCTDecode:
		return "DCTDecode"
	case JPXDecode:
		return "JPXDecode"
	case JBIG2Decode:
		return "JBIG2Decode"
	case Crypt:
		return "Crypt"
	}
	return ""
}

func (f FilterType) String() string { return f.Name() }

var (
	// ErrMalformed reports input bytes that are not valid for the filter's
	// encoding: an out-of-range ASCII85 character, a truncated RunLength
	// record, an unknown PNG filter-type byte and so on. The whole decode
	// fails; no partial buffer is returned.
	ErrMalformed = errors.New("malformed stream data")

	// ErrCodec reports a failure inside an underlying codec library
	// (inflate, deflate, JPEG). It is wrapped and surfaced, not retried.
	ErrCodec = errors.New("codec failure")
)

// UnsupportedError reports a filter operation that is recognized but has no
// implementation: either support was not compiled in, or the requested
// direction has no defined semantics. It is distinguishable from
// ErrMalformed so callers can decide whether to fall back.
type UnsupportedError struct {
	Filter string
	Reason string
}

func (e UnsupportedError) Error() string {
	return e.Filter + ": " + e.Reason
}

// Parms carries the /DecodeParms values for one filter. The concrete types
// are *FlateParms, *LZWParms, *CCITTFaxParms, *DCTParms and *JBIG2Parms.
// A nil Parms selects the filter's defaults.
type Parms interface {
	parms()
}

// FlateParms holds the predictor geometry for FlateDecode. Zero values for
// Colors, BitsPerComponent and Columns mean the PDF defaults (1, 8, 1).
type FlateParms struct {
	Predictor        int // 1 = none, 2 = TIFF, 10-15 = PNG
	Colors           int
	BitsPerComponent int
	Columns          int
}

func (*FlateParms) parms() {}

// LZWParms holds the predictor geometry and early-change flag for
// LZWDecode. The PDF default for EarlyChange is 1; DecodeLZW treats a nil
// LZWParms as early change on.
type LZWParms struct {
	Predictor        int
	Colors           int
	BitsPerComponent int
	Columns          int
	EarlyChange      int // 0 or 1
}

func (*LZWParms) parms() {}

// CCITTFaxParms holds the CCITTFaxDecode parameter dictionary.
type CCITTFaxParms struct {
	K                      int // 0 = Group 3 1D, < 0 = Group 3 2D, > 0 = Group 4
	EndOfLine              bool
	EncodedByteAlign       bool
	Columns                int // 0 means the default width of 1728
	Rows                   int // 0 means unknown height
	EndOfBlock             bool
	BlackIs1               bool
	DamagedRowsBeforeError int
}

func (*CCITTFaxParms) parms() {}

// DefaultCCITTFaxParms returns the parameter defaults from the PDF
// specification: Columns 1728, EndOfBlock true, everything else zero.
func DefaultCCITTFaxParms() *CCITTFaxParms {
	return &CCITTFaxParms{Columns: 1728, EndOfBlock: true}
}

// DCTParms holds the DCTDecode parameters.
type DCTParms struct {
	ColorTransform int // 0 = none, 1 = YCbCr to RGB
}

func (*DCTParms) parms() {}

// JBIG2Parms holds the JBIG2Decode parameters.
type JBIG2Parms struct {
	// Globals is the decoded content of the JBIG2Globals stream, shared
	// segment data referenced by the embedded stream.
	Globals []byte
}

func (*JBIG2Parms) parms() {}
