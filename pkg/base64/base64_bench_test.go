//go:build bench
// +build bench

package base64

import (
	"bytes"
	"testing"
)

func BenchmarkEncode(b *testing.B) {
	benchmarks := []struct {
		name string
		size int
	}{
		{name: "small", size: 16},
		{name: "medium", size: 1024},
		{name: "large", size: 65536},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			src := bytes.Repeat([]byte{0xA5}, bm.size)

			b.ReportAllocs()
			b.SetBytes(int64(bm.size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Encode(src)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	benchmarks := []struct {
		name string
		size int
	}{
		{name: "small", size: 16},
		{name: "medium", size: 1024},
		{name: "large", size: 65536},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			encoded := Encode(bytes.Repeat([]byte{0xA5}, bm.size))

			b.ReportAllocs()
			b.SetBytes(int64(bm.size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := Decode(encoded)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode_TableLookupPath(b *testing.B) {
	// A cold alphabet every iteration would measure cache churn instead of
	// decoding; construct once so the steady-state path dominates.
	a := MustAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_")
	encoded := a.Encode(bytes.Repeat([]byte{0x5A}, 1024))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := a.Decode(encoded)
		if err != nil {
			b.Fatal(err)
		}
	}
}
