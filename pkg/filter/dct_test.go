package filter

import (
	"errors"
	"testing"
)

// TestDCTEncodeDecode tests that an encoded JPEG decodes to samples of the
// right dimensions; byte equality is not expected, DCT is lossy
func TestDCTEncodeDecode(t *testing.T) {
	const width, height = 16, 8
	rgb := make([]byte, width*height*3)
	for i := range rgb {
		rgb[i] = byte(i * 7)
	}

	encoded, err := EncodeDCT(rgb, width, height, 90)
	if err != nil {
		t.Fatalf("EncodeDCT failed: %v", err)
	}
	if len(encoded) == 0 {
		t.Fatal("EncodeDCT produced no output")
	}

	decoded, err := DecodeDCT(encoded, nil)
	if err != nil {
		t.Fatalf("DecodeDCT failed: %v", err)
	}
	if len(decoded) != width*height*3 {
		t.Errorf("decoded %d bytes, want %d", len(decoded), width*height*3)
	}
}

// TestDCTEncodeBadGeometry tests rejection of dimensions that do not match
// the data
func TestDCTEncodeBadGeometry(t *testing.T) {
	tests := []struct {
		name          string
		data          []byte
		width, height int
	}{
		{"zero width", make([]byte, 12), 0, 4},
		{"zero height", make([]byte, 12), 4, 0},
		{"short data", make([]byte, 10), 2, 2},
		{"long data", make([]byte, 14), 2, 2},
	}

	for _, tt := range tests {
		_, err := EncodeDCT(tt.data, tt.width, tt.height, 75)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", tt.name, err)
		}
	}
}

// TestDCTDecodeGarbage tests that non-JPEG input surfaces a codec error
func TestDCTDecodeGarbage(t *testing.T) {
	_, err := DecodeDCT([]byte("definitely not a JPEG"), nil)
	if err == nil {
		t.Fatal("expected error for garbage input")
	}
	if !errors.Is(err, ErrCodec) {
		t.Errorf("expected ErrCodec, got %v", err)
	}
}

// TestDCTColorTransformAccepted tests that the ColorTransform parameter is
// accepted without changing the decode
func TestDCTColorTransformAccepted(t *testing.T) {
	const width, height = 8, 8
	rgb := make([]byte, width*height*3)
	encoded, err := EncodeDCT(rgb, width, height, 75)
	if err != nil {
		t.Fatalf("EncodeDCT failed: %v", err)
	}

	plain, err := DecodeDCT(encoded, nil)
	if err != nil {
		t.Fatalf("DecodeDCT failed: %v", err)
	}
	withParms, err := DecodeDCT(encoded, &DCTParms{ColorTransform: 1})
	if err != nil {
		t.Fatalf("DecodeDCT with parms failed: %v", err)
	}
	if len(plain) != len(withParms) {
		t.Errorf("ColorTransform changed output length: %d vs %d", len(plain), len(withParms))
	}
}
