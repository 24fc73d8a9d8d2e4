package byteconv

import "encoding/binary"

// EncodeInt16 encodes v big-endian into a fresh 2-byte slice.
func EncodeInt16(v int16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}

// PutInt16 encodes v big-endian into b at off.
func PutInt16(b []byte, off int, v int16) error {
	if err := checkRange(len(b), off, 2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b[off:], uint16(v))
	return nil
}

// Int16 decodes a big-endian int16 from the start of b.
func Int16(b []byte) (int16, error) {
	return Int16At(b, 0)
}

// Int16At decodes a big-endian int16 from b at off. The unsigned load is
// reinterpreted as two's complement, so the top byte sign-extends.
func Int16At(b []byte, off int) (int16, error) {
	if err := checkRange(len(b), off, 2); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b[off:])), nil
}

// EncodeInt32 encodes v big-endian into a fresh 4-byte slice.
func EncodeInt32(v int32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}

// PutInt32 encodes v big-endian into b at off.
func PutInt32(b []byte, off int, v int32) error {
	if err := checkRange(len(b), off, 4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b[off:], uint32(v))
	return nil
}

// Int32 decodes a big-endian int32 from the start of b.
func Int32(b []byte) (int32, error) {
	return Int32At(b, 0)
}

// Int32At decodes a big-endian int32 from b at off.
func Int32At(b []byte, off int) (int32, error) {
	if err := checkRange(len(b), off, 4); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[off:])), nil
}

// EncodeInt64 encodes v big-endian into a fresh 8-byte slice.
func EncodeInt64(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// PutInt64 encodes v big-endian into b at off.
func PutInt64(b []byte, off int, v int64) error {
	if err := checkRange(len(b), off, 8); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b[off:], uint64(v))
	return nil
}

// Int64 decodes a big-endian int64 from the start of b.
func Int64(b []byte) (int64, error) {
	return Int64At(b, 0)
}

// Int64At decodes a big-endian int64 from b at off.
func Int64At(b []byte, off int) (int64, error) {
	if err := checkRange(len(b), off, 8); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b[off:])), nil
}
