// Package digest computes MD5 content digests of byte buffers, strings,
// files, and streams. All sources yield the same digest for the same bytes.
package digest

import (
	"crypto/md5"
	"fmt"
	"hash"
	"io"
	"os"
	"sync"
)

// Size is the digest length in bytes.
const Size = md5.Size

// chunkSize is the working-buffer size for streamed sources.
const chunkSize = 8192

// engines pools digest states so repeated hashing skips engine construction.
// An engine is owned exclusively while held and reset before release.
var engines = sync.Pool{
	New: func() any { return md5.New() },
}

// Sum returns the digest of data.
func Sum(data []byte) [Size]byte {
	h := engines.Get().(hash.Hash)
	h.Write(data)

	var d [Size]byte
	h.Sum(d[:0])

	h.Reset()
	engines.Put(h)
	return d
}

// SumString returns the digest of the UTF-8 bytes of s.
func SumString(s string) [Size]byte {
	return Sum([]byte(s))
}

// SumReader returns the digest of everything r yields, feeding the engine in
// chunks so arbitrarily large sources hash in constant memory. It blocks until
// r is exhausted.
func SumReader(r io.Reader) ([Size]byte, error) {
	var d [Size]byte

	h := engines.Get().(hash.Hash)
	defer func() {
		h.Reset()
		engines.Put(h)
	}()

	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return d, fmt.Errorf("digest: read source: %w", err)
		}
	}

	h.Sum(d[:0])
	return d, nil
}

// SumFile returns the digest of the file's contents. The file is closed on
// every path.
func SumFile(path string) ([Size]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return [Size]byte{}, fmt.Errorf("digest: open %s: %w", path, err)
	}
	defer f.Close()

	return SumReader(f)
}
