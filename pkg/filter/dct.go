package filter

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
)

// DecodeDCT decodes JPEG data and returns the interleaved 8-bit samples:
// one per pixel for grayscale, four for CMYK, RGB triples otherwise.
// ColorTransform is accepted for compatibility but has no effect; the
// decoder applies the JFIF transform itself.
func DecodeDCT(data []byte, parms *DCTParms) ([]byte, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("DCTDecode: %w: %v", ErrCodec, err)
	}
	return imageSamples(img), nil
}

// EncodeDCT packs raw interleaved RGB samples of the given dimensions into
// a baseline JPEG at the given quality (1-100, values outside that range
// take the default). Lossy: never part of a round-trip chain.
func EncodeDCT(data []byte, width, height, quality int) ([]byte, error) {
	if width <= 0 || height <= 0 || len(data) != width*height*3 {
		return nil, fmt.Errorf("DCTDecode: %w: %d bytes is not %dx%d RGB data",
			ErrMalformed, len(data), width, height)
	}
	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := y * width * 3
		dst := y * img.Stride
		for x := 0; x < width; x++ {
			img.Pix[dst+0] = data[src+0]
			img.Pix[dst+1] = data[src+1]
			img.Pix[dst+2] = data[src+2]
			img.Pix[dst+3] = 0xFF
			src += 3
			dst += 4
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("DCTDecode: %w: %v", ErrCodec, err)
	}
	return buf.Bytes(), nil
}

// imageSamples flattens a decoded image into interleaved 8-bit samples.
func imageSamples(img image.Image) []byte {
	b := img.Bounds()

	switch m := img.(type) {
	case *image.Gray:
		result := make([]byte, 0, b.Dx()*b.Dy())
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := m.PixOffset(b.Min.X, y)
			result = append(result, m.Pix[off:off+b.Dx()]...)
		}
		return result
	case *image.CMYK:
		result := make([]byte, 0, b.Dx()*b.Dy()*4)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := m.PixOffset(b.Min.X, y)
			result = append(result, m.Pix[off:off+b.Dx()*4]...)
		}
		return result
	}

	result := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			result = append(result, byte(r>>8), byte(g>>8), byte(bl>>8))
		}
	}
	return result
}
