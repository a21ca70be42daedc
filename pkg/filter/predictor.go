package filter

import (
	"fmt"
)

// predictorDecode reverses the TIFF or PNG predictor named by parms over
// post-decompression data. Zero geometry fields take the PDF defaults:
// one color, eight bits per component, one column.
func predictorDecode(data []byte, parms *FlateParms) ([]byte, error) {
	colors := parms.Colors
	if colors < 1 {
		colors = 1
	}
	bits := parms.BitsPerComponent
	if bits < 1 {
		bits = 8
	}
	columns := parms.Columns
	if columns < 1 {
		columns = 1
	}

	bytesPerPixel := (colors*bits + 7) / 8
	bytesPerRow := (colors*bits*columns + 7) / 8

	switch p := parms.Predictor; {
	case p == 1:
		return data, nil
	case p == 2:
		return tiffPredictorDecode(data, bytesPerRow, bytesPerPixel), nil
	case p >= 10 && p <= 15:
		return pngPredictorDecode(data, bytesPerRow, bytesPerPixel)
	default:
		return nil, fmt.Errorf("predictor: %w: unsupported predictor %d", ErrMalformed, p)
	}
}

// tiffPredictorDecode undoes TIFF horizontal differencing: each byte is the
// wrapping sum of the stored byte and the same channel of the previous
// pixel, with the accumulator reset at every row start.
func tiffPredictorDecode(data []byte, bytesPerRow, bytesPerPixel int) []byte {
	result := make([]byte, 0, len(data))
	prev := make([]byte, bytesPerPixel)

	for off := 0; off < len(data); off += bytesPerRow {
		row := data[off:min(off+bytesPerRow, len(data))]
		for i := range prev {
			prev[i] = 0
		}
		for i, b := range row {
			d := b + prev[i%bytesPerPixel]
			result = append(result, d)
			prev[i%bytesPerPixel] = d
		}
	}

	return result
}

// pngPredictorDecode undoes the PNG row filters. Each stored row is one
// filter-type byte followed by bytesPerRow data bytes; an incomplete final
// row is zero padded before decoding.
func pngPredictorDecode(data []byte, bytesPerRow, bytesPerPixel int) ([]byte, error) {
	result := make([]byte, 0, len(data))
	prev := make([]byte, bytesPerRow)
	row := make([]byte, bytesPerRow)

	for off := 0; off < len(data); off += bytesPerRow + 1 {
		filterType := data[off]
		n := copy(row, data[off+1:min(off+1+bytesPerRow, len(data))])
		for i := n; i < bytesPerRow; i++ {
			row[i] = 0
		}

		switch filterType {
		case 0: // None
		case 1: // Sub
			for i := bytesPerPixel; i < bytesPerRow; i++ {
				row[i] += row[i-bytesPerPixel]
			}
		case 2: // Up
			for i := 0; i < bytesPerRow; i++ {
				row[i] += prev[i]
			}
		case 3: // Average
			for i := 0; i < bytesPerRow; i++ {
				left := 0
				if i >= bytesPerPixel {
					left = int(row[i-bytesPerPixel])
				}
				row[i] += byte((left + int(prev[i])) / 2)
			}
		case 4: // Paeth
			for i := 0; i < bytesPerRow; i++ {
				var left, upLeft byte
				if i >= bytesPerPixel {
					left = row[i-bytesPerPixel]
					upLeft = prev[i-bytesPerPixel]
				}
				row[i] += paethPredictor(left, prev[i], upLeft)
			}
		default:
			return nil, fmt.Errorf("predictor: %w: unknown PNG filter type %d", ErrMalformed, filterType)
		}

		result = append(result, row...)
		copy(prev, row)
	}

	return result, nil
}

// paethPredictor selects among left, up and upper-left by minimizing the
// absolute deviation from a linear estimate, preferring left, then up.
func paethPredictor(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
