//go:build jbig2

package filter

import (
	"bytes"
	"fmt"
	"image"

	"github.com/xiaoqidun/jbig2"
)

// DecodeJBIG2 decodes embedded JBIG2 data, consulting the stream's global
// segments when parms carries them, and returns the interleaved 8-bit
// samples of the decoded bi-level image. Enabled by the jbig2 build tag.
func DecodeJBIG2(data []byte, parms *JBIG2Parms) ([]byte, error) {
	var (
		img image.Image
		err error
	)
	if parms != nil && len(parms.Globals) > 0 {
		var d *jbig2.Decoder
		d, err = jbig2.NewDecoderWithGlobals(bytes.NewReader(data), parms.Globals)
		if err == nil {
			img, err = d.Decode()
		}
	} else {
		img, err = jbig2.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("JBIG2Decode: %w: %v", ErrCodec, err)
	}
	return imageSamples(img), nil
}
