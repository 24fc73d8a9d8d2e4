package byteconv

import (
	"encoding/binary"
	"math"
)

// EncodeFloat32 encodes the IEEE-754 bit pattern of v big-endian into a fresh
// 4-byte slice.
func EncodeFloat32(v float32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, math.Float32bits(v))
	return b
}

// PutFloat32 encodes the IEEE-754 bit pattern of v big-endian into b at off.
func PutFloat32(b []byte, off int, v float32) error {
	if err := checkRange(len(b), off, 4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b[off:], math.Float32bits(v))
	return nil
}

// Float32 decodes a big-endian float32 bit pattern from the start of b.
func Float32(b []byte) (float32, error) {
	return Float32At(b, 0)
}

// Float32At decodes a big-endian float32 bit pattern from b at off. All four
// bytes are treated as raw pattern; no byte sign-extends.
func Float32At(b []byte, off int) (float32, error) {
	if err := checkRange(len(b), off, 4); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b[off:])), nil
}

// EncodeFloat64 encodes the IEEE-754 bit pattern of v big-endian into a fresh
// 8-byte slice.
func EncodeFloat64(v float64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, math.Float64bits(v))
	return b
}

// PutFloat64 encodes the IEEE-754 bit pattern of v big-endian into b at off.
func PutFloat64(b []byte, off int, v float64) error {
	if err := checkRange(len(b), off, 8); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b[off:], math.Float64bits(v))
	return nil
}

// Float64 decodes a big-endian float64 bit pattern from the start of b.
func Float64(b []byte) (float64, error) {
	return Float64At(b, 0)
}

// Float64At decodes a big-endian float64 bit pattern from b at off.
func Float64At(b []byte, off int) (float64, error) {
	if err := checkRange(len(b), off, 8); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b[off:])), nil
}
