package filter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hhrutter/lzw"
)

// DecodeLZW decompresses PDF-dialect LZW data (9-bit initial codes, MSB
// first). A nil parms means early change on, the PDF default. A non-nil
// parms with Predictor > 1 runs the predictor over the decompressed bytes.
func DecodeLZW(data []byte, parms *LZWParms) ([]byte, error) {
	earlyChange := true
	if parms != nil {
		earlyChange = parms.EarlyChange != 0
	}

	r := lzw.NewReader(bytes.NewReader(data), earlyChange)
	defer r.Close()

	decoded, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("LZWDecode: %w: %v", ErrMalformed, err)
	}

	if parms != nil && parms.Predictor > 1 {
		return predictorDecode(decoded, &FlateParms{
			Predictor:        parms.Predictor,
			Colors:           parms.Colors,
			BitsPerComponent: parms.BitsPerComponent,
			Columns:          parms.Columns,
		})
	}
	return decoded, nil
}

// EncodeLZW compresses data with early change on, matching the DecodeLZW
// default. The predictor is never applied here; callers wanting predicted
// output must pre-process the bytes themselves.
func EncodeLZW(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lzw.NewWriter(&buf, true)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("LZWDecode: %w: %v", ErrCodec, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("LZWDecode: %w: %v", ErrCodec, err)
	}
	return buf.Bytes(), nil
}
