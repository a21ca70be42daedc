//go:build !jbig2

package filter

// DecodeJBIG2 reports that JBIG2 support was not compiled in. Build with
// the jbig2 tag to enable it.
func DecodeJBIG2(data []byte, parms *JBIG2Parms) ([]byte, error) {
	return nil, UnsupportedError{
		Filter: "JBIG2Decode",
		Reason: "support not enabled (build with the jbig2 tag)",
	}
}
