// Package hex implements strict hexadecimal encoding and decoding of byte
// buffers. Encoding always emits lowercase digits, two per byte with the high
// nibble first; decoding accepts either case and rejects everything else.
package hex

import (
	"errors"
	"fmt"
)

const digits = "0123456789abcdef"

// ErrOddLength is returned when a decode input does not split into
// two-character pairs.
var ErrOddLength = errors.New("hex: odd length input")

// InvalidByteError reports a decode input character outside [0-9a-fA-F].
type InvalidByteError byte

func (e InvalidByteError) Error() string {
	return fmt.Sprintf("hex: invalid byte %#U", rune(e))
}

// RangeError reports an offset/length pair that does not fit inside the input
// it addresses.
type RangeError struct {
	Off  int
	Need int
	Size int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("hex: range [%d, %d) out of bounds for %d-byte input", e.Off, e.Off+e.Need, e.Size)
}

func checkRange(size, off, need int) error {
	if off < 0 || need < 0 || need > size-off {
		return &RangeError{Off: off, Need: need, Size: size}
	}
	return nil
}

// Encode returns the lowercase hexadecimal rendering of src. The result is
// always exactly twice as long as src.
func Encode(src []byte) string {
	dst := make([]byte, len(src)*2)
	for i, b := range src {
		dst[i*2] = digits[b>>4]
		dst[i*2+1] = digits[b&0x0F]
	}
	return string(dst)
}

// EncodeRange encodes the n bytes of src starting at off.
func EncodeRange(src []byte, off, n int) (string, error) {
	if err := checkRange(len(src), off, n); err != nil {
		return "", err
	}
	return Encode(src[off : off+n]), nil
}

// Decode parses s as hexadecimal and returns the bytes it spells. Both digit
// cases are accepted. The input length must be even; callers never see partial
// output on failure.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ErrOddLength
	}

	dst := make([]byte, len(s)/2)
	for i := range dst {
		hi, ok := nibble(s[i*2])
		if !ok {
			return nil, InvalidByteError(s[i*2])
		}
		lo, ok := nibble(s[i*2+1])
		if !ok {
			return nil, InvalidByteError(s[i*2+1])
		}
		dst[i] = hi<<4 | lo
	}
	return dst, nil
}

// DecodeRange decodes the n characters of s starting at off.
func DecodeRange(s string, off, n int) ([]byte, error) {
	if err := checkRange(len(s), off, n); err != nil {
		return nil, err
	}
	return Decode(s[off : off+n])
}

func nibble(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
