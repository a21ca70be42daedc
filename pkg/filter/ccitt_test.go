package filter

import (
	"bytes"
	"errors"
	"testing"
)

// TestCCITTUncompressedPassthrough tests that input matching the bitmap
// size exactly is passed through, with BlackIs1 controlling polarity
func TestCCITTUncompressedPassthrough(t *testing.T) {
	// 16 columns, 3 rows: 2 bytes per row, 6 bytes total.
	data := []byte{0xF0, 0x0F, 0xAA, 0x55, 0x00, 0xFF}

	parms := &CCITTFaxParms{K: 1, Columns: 16, Rows: 3, BlackIs1: true}
	got, err := DecodeCCITTFax(data, parms)
	if err != nil {
		t.Fatalf("DecodeCCITTFax failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("BlackIs1 passthrough changed data: %X", got)
	}

	parms.BlackIs1 = false
	got, err = DecodeCCITTFax(data, parms)
	if err != nil {
		t.Fatalf("DecodeCCITTFax failed: %v", err)
	}
	want := []byte{0x0F, 0xF0, 0x55, 0xAA, 0xFF, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("expected inverted bytes %X, got %X", want, got)
	}
}

// TestCCITTGroup3TwoDimensionalUnsupported tests that K < 0 reports
// missing support instead of producing garbage rows
func TestCCITTGroup3TwoDimensionalUnsupported(t *testing.T) {
	parms := &CCITTFaxParms{K: -1, Columns: 8, Rows: 2}
	_, err := DecodeCCITTFax([]byte{0x01, 0x02, 0x03}, parms)
	if err == nil {
		t.Fatal("expected error for K < 0")
	}
	var ue UnsupportedError
	if !errors.As(err, &ue) {
		t.Errorf("expected UnsupportedError, got %v", err)
	}
}

// TestCCITTEmptyInput tests that empty input terminates and yields no rows
func TestCCITTEmptyInput(t *testing.T) {
	got, err := DecodeCCITTFax(nil, &CCITTFaxParms{K: 1, Columns: 8})
	if err != nil {
		t.Fatalf("DecodeCCITTFax failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no output for empty input, got %d bytes", len(got))
	}
}

// TestCCITTDefaultColumns tests that nil parameters take the 1728-column
// default for the passthrough size check
func TestCCITTDefaultColumns(t *testing.T) {
	// 1728 columns is 216 bytes per row; one exact row passes through.
	data := make([]byte, 216)
	for i := range data {
		data[i] = byte(i)
	}
	got, err := DecodeCCITTFax(data, &CCITTFaxParms{K: 1, Rows: 1, BlackIs1: true})
	if err != nil {
		t.Fatalf("DecodeCCITTFax failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("passthrough mismatch")
	}
}
