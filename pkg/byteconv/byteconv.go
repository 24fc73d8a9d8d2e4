package byteconv

import "fmt"

// RangeError reports an offset/width pair that does not fit inside the buffer
// it addresses. It is returned before any byte is read or written.
type RangeError struct {
	Off  int // requested offset into the buffer
	Need int // bytes required starting at Off
	Size int // actual buffer length
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("byteconv: range [%d, %d) out of bounds for %d-byte buffer", e.Off, e.Off+e.Need, e.Size)
}

// checkRange validates that need bytes starting at off fit in a buffer of the
// given size. The subtraction form keeps off+need from overflowing.
func checkRange(size, off, need int) error {
	if off < 0 || need > size-off {
		return &RangeError{Off: off, Need: need, Size: size}
	}
	return nil
}

// CopyOf returns a new byte slice of exactly length n holding the first n
// bytes of src. When n exceeds len(src) the tail is zero-filled; when n is
// smaller the copy is truncated. The result never aliases src.
func CopyOf(src []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, &RangeError{Off: 0, Need: n, Size: len(src)}
	}
	dst := make([]byte, n)
	copy(dst, src)
	return dst, nil
}
