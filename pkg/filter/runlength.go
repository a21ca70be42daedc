package filter

import (
	"fmt"
)

// rleEOD is the in-band end-of-data marker for RunLengthDecode.
const rleEOD = 128

// DecodeRunLength expands run-length encoded data. A length byte below 128
// copies that many plus one literal bytes, a length byte above 128 repeats
// the following byte 257 minus the length times, and 128 ends the stream.
// Running past the end of input fails the decode.
func DecodeRunLength(data []byte) ([]byte, error) {
	var result []byte

	for i := 0; i < len(data); {
		length := data[i]
		i++

		switch {
		case length == rleEOD:
			return result, nil
		case length < rleEOD:
			count := int(length) + 1
			if i+count > len(data) {
				return nil, fmt.Errorf("RunLengthDecode: %w: truncated literal record", ErrMalformed)
			}
			result = append(result, data[i:i+count]...)
			i += count
		default:
			if i >= len(data) {
				return nil, fmt.Errorf("RunLengthDecode: %w: truncated repeat record", ErrMalformed)
			}
			count := 257 - int(length)
			b := data[i]
			i++
			for j := 0; j < count; j++ {
				result = append(result, b)
			}
		}
	}

	return result, nil
}

// EncodeRunLength run-length encodes data and terminates it with the
// end-of-data marker. The encoder is greedy: runs of two or more identical
// bytes become repeat records, everything else accumulates into literal
// records broken early when a run of three starts. Not optimal, but
// round-trip safe.
func EncodeRunLength(data []byte) ([]byte, error) {
	result := make([]byte, 0, len(data)+len(data)/128+1)

	for i := 0; i < len(data); {
		start := i
		b := data[i]
		for i < len(data) && data[i] == b && i-start < 128 {
			i++
		}

		if run := i - start; run >= 2 {
			result = append(result, byte(257-run), b)
			continue
		}

		i = start
		for i < len(data) {
			if i+2 < len(data) && data[i] == data[i+1] && data[i] == data[i+2] {
				break
			}
			i++
			if i-start >= 128 {
				break
			}
		}
		if i > start {
			result = append(result, byte(i-start-1))
			result = append(result, data[start:i]...)
		}
	}

	result = append(result, rleEOD)
	return result, nil
}
