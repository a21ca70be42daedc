package filter

import (
	"testing"
)

// TestFromName tests resolving full filter names
func TestFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected FilterType
	}{
		{"FlateDecode", FlateDecode},
		{"LZWDecode", LZWDecode},
		{"ASCII85Decode", ASCII85Decode},
		{"ASCIIHexDecode", ASCIIHexDecode},
		{"RunLengthDecode", RunLengthDecode},
		{"CCITTFaxDecode", CCITTFaxDecode},
		{"DCTDecode", DCTDecode},
		{"JPXDecode", JPXDecode},
		{"JBIG2Decode", JBIG2Decode},
		{"Crypt", Crypt},
	}

	for _, tt := range tests {
		got, ok := FromName(tt.name)
		if !ok {
			t.Errorf("FromName(%q) not recognized", tt.name)
			continue
		}
		if got != tt.expected {
			t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

// TestFromNameAbbreviations tests that the standard abbreviations resolve
// to the same filter as the full names
func TestFromNameAbbreviations(t *testing.T) {
	tests := []struct {
		abbrev   string
		expected FilterType
	}{
		{"Fl", FlateDecode},
		{"LZW", LZWDecode},
		{"A85", ASCII85Decode},
		{"AHx", ASCIIHexDecode},
		{"RL", RunLengthDecode},
		{"CCF", CCITTFaxDecode},
		{"DCT", DCTDecode},
	}

	for _, tt := range tests {
		got, ok := FromName(tt.abbrev)
		if !ok {
			t.Errorf("FromName(%q) not recognized", tt.abbrev)
			continue
		}
		if got != tt.expected {
			t.Errorf("FromName(%q) = %v, want %v", tt.abbrev, got, tt.expected)
		}
	}
}

// TestFromNameInvalid tests rejection of unknown names
func TestFromNameInvalid(t *testing.T) {
	for _, name := range []string{"", "Invalid", "flatedecode", "Flate"} {
		if _, ok := FromName(name); ok {
			t.Errorf("FromName(%q) unexpectedly recognized", name)
		}
	}
}

// TestNameMappingBidirectional tests that Name and FromName are total and
// inverse over every filter type
func TestNameMappingBidirectional(t *testing.T) {
	all := []FilterType{
		FlateDecode, LZWDecode, ASCII85Decode, ASCIIHexDecode,
		RunLengthDecode, CCITTFaxDecode, DCTDecode, JPXDecode,
		JBIG2Decode, Crypt,
	}

	for _, f := range all {
		name := f.Name()
		if name == "" {
			t.Errorf("%d has no canonical name", int(f))
			continue
		}
		got, ok := FromName(name)
		if !ok || got != f {
			t.Errorf("FromName(%q) = %v, %v; want %v, true", name, got, ok, f)
		}
	}
}

// TestDefaultCCITTFaxParms tests the CCITT parameter defaults
func TestDefaultCCITTFaxParms(t *testing.T) {
	p := DefaultCCITTFaxParms()
	if p.K != 0 {
		t.Errorf("K = %d, want 0", p.K)
	}
	if p.EndOfLine || p.EncodedByteAlign || p.BlackIs1 {
		t.Errorf("boolean defaults wrong: %+v", p)
	}
	if p.Columns != 1728 {
		t.Errorf("Columns = %d, want 1728", p.Columns)
	}
	if p.Rows != 0 {
		t.Errorf("Rows = %d, want 0", p.Rows)
	}
	if !p.EndOfBlock {
		t.Errorf("EndOfBlock = false, want true")
	}
	if p.DamagedRowsBeforeError != 0 {
		t.Errorf("DamagedRowsBeforeError = %d, want 0", p.DamagedRowsBeforeError)
	}
}
