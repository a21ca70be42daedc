package filter

import (
	"fmt"
)

// isWhitespace reports whether b is PDF whitespace.
func isWhitespace(b byte) bool {
	switch b {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// DecodeASCII85 decodes base-85 encoded data. Whitespace is skipped, '~'
// ends the stream, and 'z' stands for four zero bytes when it appears on a
// group boundary. Any byte outside '!'..'u', or a 'z' inside a group, fails
// the decode.
func DecodeASCII85(data []byte) ([]byte, error) {
	result := make([]byte, 0, len(data)*4/5)
	var group uint32
	count := 0

	for _, b := range data {
		if isWhitespace(b) {
			continue
		}
		if b == '~' {
			break
		}
		if b == 'z' {
			if count != 0 {
				return nil, fmt.Errorf("ASCII85Decode: %w: 'z' inside group", ErrMalformed)
			}
			result = append(result, 0, 0, 0, 0)
			continue
		}
		if b < '!' || b > 'u' {
			return nil, fmt.Errorf("ASCII85Decode: %w: invalid character %q", ErrMalformed, b)
		}

		group = group*85 + uint32(b-'!')
		count++

		if count == 5 {
			result = append(result,
				byte(group>>24),
				byte(group>>16),
				byte(group>>8),
				byte(group))
			group = 0
			count = 0
		}
	}

	// A trailing partial group is padded with 'u' digits; count-1 bytes
	// of it are real output.
	if count > 0 {
		for i := count; i < 5; i++ {
			group = group*85 + 84
		}
		for i := 0; i < count-1; i++ {
			result = append(result, byte(group>>(24-i*8)))
		}
	}

	return result, nil
}

// EncodeASCII85 encodes data in base-85, emitting 'z' for all-zero 4-byte
// groups and terminating the output with "~>".
func EncodeASCII85(data []byte) ([]byte, error) {
	result := make([]byte, 0, len(data)*5/4+10)

	for i := 0; i < len(data); {
		chunkLen := min(len(data)-i, 4)

		var group uint32
		for j := 0; j < chunkLen; j++ {
			group |= uint32(data[i+j]) << (24 - j*8)
		}

		if group == 0 && chunkLen == 4 {
			result = append(result, 'z')
			i += 4
			continue
		}

		var encoded [5]byte
		tmp := group
		for j := 4; j >= 0; j-- {
			encoded[j] = byte(tmp%85) + '!'
			tmp /= 85
		}

		// Full groups emit 5 digits, the final partial group chunkLen+1.
		outLen := 5
		if chunkLen < 4 {
			outLen = chunkLen + 1
		}
		result = append(result, encoded[:outLen]...)

		i += chunkLen
	}

	result = append(result, '~', '>')
	return result, nil
}

// DecodeASCIIHex decodes hexadecimal encoded data. Whitespace is skipped,
// '>' ends the stream, and an odd trailing digit is padded with a low
// nibble of zero. Any other non-hex byte fails the decode.
func DecodeASCIIHex(data []byte) ([]byte, error) {
	result := make([]byte, 0, len(data)/2)
	var nibble byte
	hasNibble := false

	for _, b := range data {
		if isWhitespace(b) {
			continue
		}
		if b == '>' {
			break
		}

		var val byte
		switch {
		case b >= '0' && b <= '9':
			val = b - '0'
		case b >= 'A' && b <= 'F':
			val = b - 'A' + 10
		case b >= 'a' && b <= 'f':
			val = b - 'a' + 10
		default:
			return nil, fmt.Errorf("ASCIIHexDecode: %w: invalid character %q", ErrMalformed, b)
		}

		if hasNibble {
			result = append(result, nibble<<4|val)
			hasNibble = false
		} else {
			nibble = val
			hasNibble = true
		}
	}

	if hasNibble {
		result = append(result, nibble<<4)
	}

	return result, nil
}

// EncodeASCIIHex encodes data as uppercase hex digits terminated by '>'.
func EncodeASCIIHex(data []byte) ([]byte, error) {
	const digits = "0123456789ABCDEF"

	result := make([]byte, 0, len(data)*2+1)
	for _, b := range data {
		result = append(result, digits[b>>4], digits[b&0x0F])
	}
	result = append(result, '>')
	return result, nil
}
