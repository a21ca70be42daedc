package filter

import (
	"bytes"
	"io"

	"golang.org/x/image/ccitt"
)

// maxCCITTRows bounds the row scan when the parameters carry no height, so
// malformed or empty input cannot loop forever.
const maxCCITTRows = 1000

// DecodeCCITTFax decodes CCITT Group 4 (K > 0) and Group 3 one-dimensional
// (K == 0) fax data into a packed 1-bit-per-pixel bitmap. Mixed
// two-dimensional Group 3 (K < 0) is not implemented and returns an
// UnsupportedError. Input whose length exactly matches the expected bitmap
// size is treated as an uncompressed bitmap and passed through.
//
// The decoded bitmap uses 1 for black; when BlackIs1 is false (the PDF
// default) every output byte is inverted so 0 bits mean black.
func DecodeCCITTFax(data []byte, parms *CCITTFaxParms) ([]byte, error) {
	if parms == nil {
		parms = DefaultCCITTFaxParms()
	}
	columns := parms.Columns
	if columns <= 0 {
		columns = 1728
	}
	bytesPerRow := (columns + 7) / 8

	estimatedRows := parms.Rows
	if estimatedRows <= 0 {
		estimatedRows = len(data) * 8 / columns
	}

	var result []byte
	if estimatedRows > 0 && len(data) == bytesPerRow*estimatedRows {
		result = append([]byte(nil), data...)
	} else {
		var sf ccitt.SubFormat
		switch {
		case parms.K > 0:
			sf = ccitt.Group4
		case parms.K == 0:
			sf = ccitt.Group3
		default:
			return nil, UnsupportedError{
				Filter: "CCITTFaxDecode",
				Reason: "two-dimensional Group 3 decoding not supported",
			}
		}

		maxRows := parms.Rows
		if maxRows <= 0 {
			maxRows = maxCCITTRows
		}

		r := ccitt.NewReader(bytes.NewReader(data), ccitt.MSB, sf, columns, maxRows,
			&ccitt.Options{Align: parms.EncodedByteAlign, Invert: true})

		result = make([]byte, 0, bytesPerRow*min(maxRows, 64))
		row := make([]byte, bytesPerRow)
		for n := 0; n < maxRows; n++ {
			if _, err := io.ReadFull(r, row); err != nil {
				// End of data, or a damaged tail; keep the rows
				// decoded so far.
				break
			}
			result = append(result, row...)
		}
	}

	if !parms.BlackIs1 {
		for i := range result {
			result[i] = ^result[i]
		}
	}

	return result, nil
}
