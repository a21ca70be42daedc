//go:build jpx

package filter

import (
	"bytes"
	"fmt"

	jpeg2000 "github.com/mrjoshuak/go-jpeg2000"
)

// DecodeJPX decodes JPEG 2000 data and returns the interleaved 8-bit
// samples. Enabled by the jpx build tag.
func DecodeJPX(data []byte) ([]byte, error) {
	img, err := jpeg2000.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("JPXDecode: %w: %v", ErrCodec, err)
	}
	return imageSamples(img), nil
}
