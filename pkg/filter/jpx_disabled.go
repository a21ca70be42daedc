//go:build !jpx

package filter

// DecodeJPX reports that JPEG 2000 support was not compiled in. Build with
// the jpx tag to enable it.
func DecodeJPX(data []byte) ([]byte, error) {
	return nil, UnsupportedError{
		Filter: "JPXDecode",
		Reason: "support not enabled (build with the jpx tag)",
	}
}
