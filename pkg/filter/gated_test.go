//go:build !jpx && !jbig2

package filter

import (
	"errors"
	"testing"
)

// TestJPXDisabled tests that JPX decoding without the jpx tag reports
// missing support rather than returning garbage
func TestJPXDisabled(t *testing.T) {
	_, err := DecodeJPX([]byte{0x00})
	if err == nil {
		t.Fatal("expected error without jpx support")
	}
	var ue UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnsupportedError, got %v", err)
	}
	if ue.Filter != "JPXDecode" {
		t.Errorf("Filter = %q, want JPXDecode", ue.Filter)
	}
	if errors.Is(err, ErrMalformed) {
		t.Errorf("unsupported must be distinguishable from malformed input")
	}
}

// TestJBIG2Disabled tests that JBIG2 decoding without the jbig2 tag
// reports missing support
func TestJBIG2Disabled(t *testing.T) {
	_, err := DecodeJBIG2([]byte{0x00}, nil)
	if err == nil {
		t.Fatal("expected error without jbig2 support")
	}
	var ue UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnsupportedError, got %v", err)
	}
	if ue.Filter != "JBIG2Decode" {
		t.Errorf("Filter = %q, want JBIG2Decode", ue.Filter)
	}
}
