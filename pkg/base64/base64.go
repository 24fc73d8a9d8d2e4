package base64

import (
	"errors"
	"fmt"
)

// ErrLength is returned when a decode input length fits no valid encoding:
// any length not a multiple of four for a padded alphabet, or a length of
// 1 mod 4 for an unpadded one.
var ErrLength = errors.New("base64: invalid input length")

// CorruptInputError reports the byte offset of a decode input character that
// does not belong to the alphabet.
type CorruptInputError int64

func (e CorruptInputError) Error() string {
	return fmt.Sprintf("base64: illegal symbol at input byte %d", int64(e))
}

// RangeError reports an offset/length pair that does not fit inside the input
// it addresses.
type RangeError struct {
	Off  int
	Need int
	Size int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("base64: range [%d, %d) out of bounds for %d-byte input", e.Off, e.Off+e.Need, e.Size)
}

func checkRange(size, off, need int) error {
	if off < 0 || need < 0 || need > size-off {
		return &RangeError{Off: off, Need: need, Size: size}
	}
	return nil
}

// Encode encodes src with the standard alphabet.
func Encode(src []byte) string {
	return Std.Encode(src)
}

// EncodeRange encodes the n bytes of src starting at off with the standard
// alphabet.
func EncodeRange(src []byte, off, n int) (string, error) {
	return Std.EncodeRange(src, off, n)
}

// Decode decodes s with the standard alphabet.
func Decode(s string) ([]byte, error) {
	return Std.Decode(s)
}

// DecodeRange decodes the n characters of s starting at off with the standard
// alphabet.
func DecodeRange(s string, off, n int) ([]byte, error) {
	return Std.DecodeRange(s, off, n)
}

// Encode encodes src. Each complete 3-byte group becomes 4 characters; a
// trailing group of 1 or 2 bytes becomes 2 or 3 characters, completed to 4
// with pad symbols when the alphabet pads.
func (a *Alphabet) Encode(src []byte) string {
	dst := make([]byte, 0, encodedLen(len(src), a.padded))

	i := 0
	for ; i+3 <= len(src); i += 3 {
		b1, b2, b3 := src[i], src[i+1], src[i+2]
		dst = append(dst,
			a.symbols[b1>>2],
			a.symbols[(b1<<4|b2>>4)&0x3F],
			a.symbols[(b2<<2|b3>>6)&0x3F],
			a.symbols[b3&0x3F])
	}

	switch len(src) - i {
	case 1:
		b1 := src[i]
		dst = append(dst, a.symbols[b1>>2], a.symbols[(b1<<4)&0x3F])
		if a.padded {
			dst = append(dst, a.pad, a.pad)
		}
	case 2:
		b1, b2 := src[i], src[i+1]
		dst = append(dst,
			a.symbols[b1>>2],
			a.symbols[(b1<<4|b2>>4)&0x3F],
			a.symbols[(b2<<2)&0x3F])
		if a.padded {
			dst = append(dst, a.pad)
		}
	}
	return string(dst)
}

// EncodeRange encodes the n bytes of src starting at off.
func (a *Alphabet) EncodeRange(src []byte, off, n int) (string, error) {
	if err := checkRange(len(src), off, n); err != nil {
		return "", err
	}
	return a.Encode(src[off : off+n]), nil
}

// Decode decodes s. Every consumed character must belong to the alphabet;
// callers never see partial output on failure.
func (a *Alphabet) Decode(s string) ([]byte, error) {
	n := len(s)
	if n == 0 {
		return []byte{}, nil
	}

	// quads complete groups decode to 3 bytes each, then the trailing group
	// contributes tailBytes more.
	var quads, tailBytes int
	if a.padded {
		if n%4 != 0 {
			return nil, ErrLength
		}
		quads = n/4 - 1
		switch {
		case s[n-2] == a.pad:
			tailBytes = 1
		case s[n-1] == a.pad:
			tailBytes = 2
		default:
			tailBytes = 3
		}
	} else {
		quads = n / 4
		switch n % 4 {
		case 1:
			return nil, ErrLength
		case 2:
			tailBytes = 1
		case 3:
			tailBytes = 2
		}
	}

	t := a.table()
	dst := make([]byte, 0, quads*3+tailBytes)

	pos := 0
	for g := 0; g < quads; g++ {
		c1, err := lookup(t, s, pos)
		if err != nil {
			return nil, err
		}
		c2, err := lookup(t, s, pos+1)
		if err != nil {
			return nil, err
		}
		c3, err := lookup(t, s, pos+2)
		if err != nil {
			return nil, err
		}
		c4, err := lookup(t, s, pos+3)
		if err != nil {
			return nil, err
		}
		dst = append(dst, c1<<2|c2>>4, c2<<4|c3>>2, c3<<6|c4)
		pos += 4
	}

	if tailBytes > 0 {
		c1, err := lookup(t, s, pos)
		if err != nil {
			return nil, err
		}
		c2, err := lookup(t, s, pos+1)
		if err != nil {
			return nil, err
		}
		dst = append(dst, c1<<2|c2>>4)

		if tailBytes >= 2 {
			c3, err := lookup(t, s, pos+2)
			if err != nil {
				return nil, err
			}
			dst = append(dst, c2<<4|c3>>2)

			if tailBytes == 3 {
				c4, err := lookup(t, s, pos+3)
				if err != nil {
					return nil, err
				}
				dst = append(dst, c3<<6|c4)
			}
		}
	}
	return dst, nil
}

// DecodeRange decodes the n characters of s starting at off.
func (a *Alphabet) DecodeRange(s string, off, n int) ([]byte, error) {
	if err := checkRange(len(s), off, n); err != nil {
		return nil, err
	}
	return a.Decode(s[off : off+n])
}

func encodedLen(n int, padded bool) int {
	if padded {
		return (n + 2) / 3 * 4
	}
	switch n % 3 {
	case 1:
		return n/3*4 + 2
	case 2:
		return n/3*4 + 3
	default:
		return n / 3 * 4
	}
}

func lookup(t *[128]int8, s string, i int) (byte, error) {
	c := s[i]
	if c < 0x80 {
		if v := t[c]; v >= 0 {
			return byte(v), nil
		}
	}
	return 0, CorruptInputError(i)
}
