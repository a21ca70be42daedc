package filter

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// DecodeFlate inflates zlib/deflate compressed data. A non-nil parms with
// Predictor > 1 runs the corresponding predictor over the inflated bytes
// before returning.
func DecodeFlate(data []byte, parms *FlateParms) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("FlateDecode: %w: %v", ErrCodec, err)
	}
	defer r.Close()

	decoded, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("FlateDecode: %w: %v", ErrCodec, err)
	}

	if parms != nil && parms.Predictor > 1 {
		return predictorDecode(decoded, parms)
	}
	return decoded, nil
}

// EncodeFlate deflates data. The level maps onto zlib as 0 = no
// compression, 1-3 = fastest, 4-6 = default, 7 and up = best.
func EncodeFlate(data []byte, level int) ([]byte, error) {
	var zl int
	switch {
	case level <= 0:
		zl = zlib.NoCompression
	case level <= 3:
		zl = zlib.BestSpeed
	case level <= 6:
		zl = zlib.DefaultCompression
	default:
		zl = zlib.BestCompression
	}

	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zl)
	if err != nil {
		return nil, fmt.Errorf("FlateDecode: %w: %v", ErrCodec, err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("FlateDecode: %w: %v", ErrCodec, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("FlateDecode: %w: %v", ErrCodec, err)
	}
	return buf.Bytes(), nil
}
