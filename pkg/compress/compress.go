// Package compress wraps byte buffers in zlib deflate framing and unwraps
// them again. The stream format is standard zlib, so output interoperates
// with any other zlib coder.
package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Zip deflates data into a zlib stream. An empty input still produces a
// valid, non-empty stream that unzips back to empty.
func Zip(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("compress: zip: %w", err)
	}
	// Close flushes the final block and writes the checksum trailer.
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: zip: %w", err)
	}
	return buf.Bytes(), nil
}

// Unzip inflates a zlib stream back into the original bytes. A missing or
// corrupt header, payload, or checksum surfaces as a wrapped error.
func Unzip(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("compress: unzip: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compress: unzip: %w", err)
	}
	return out, nil
}
