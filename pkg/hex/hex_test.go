package hex

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		name string
		src  []byte
		want string
	}{
		{name: "empty", src: nil, want: ""},
		{name: "single zero byte", src: []byte{0x00}, want: "00"},
		{name: "single high byte", src: []byte{0xFF}, want: "ff"},
		{name: "classic", src: []byte{0xDE, 0xAD, 0xBE, 0xEF}, want: "deadbeef"},
		{name: "ascii text", src: []byte("Go"), want: "476f"},
		{name: "all nibble values", src: []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}, want: "0123456789abcdef"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Encode(tc.src)
			if got != tc.want {
				t.Errorf("Encode mismatch: got %q, want %q", got, tc.want)
			}
			if len(got) != 2*len(tc.src) {
				t.Errorf("Encoded length mismatch: got %d, want %d", len(got), 2*len(tc.src))
			}
		})
	}
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want []byte
	}{
		{name: "empty", in: "", want: []byte{}},
		{name: "lowercase", in: "deadbeef", want: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{name: "uppercase", in: "DEADBEEF", want: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{name: "mixed case", in: "DeAdBeEf", want: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{name: "zeros", in: "0000", want: []byte{0x00, 0x00}},
		{name: "all digits", in: "0123456789abcdef", want: []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.in)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("Decode mismatch: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDecode_OddLength(t *testing.T) {
	for _, in := range []string{"a", "abc", "deadbee"} {
		if _, err := Decode(in); !errors.Is(err, ErrOddLength) {
			t.Errorf("Decode(%q): got %v, want ErrOddLength", in, err)
		}
	}
}

func TestDecode_InvalidByte(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		badByte byte
	}{
		{name: "letter past f", in: "gg", badByte: 'g'},
		{name: "space", in: "de ad", badByte: ' '},
		{name: "punctuation", in: "12:34", badByte: ':'},
		{name: "bad byte in second position", in: "0z", badByte: 'z'},
		{name: "high bit set", in: "ab\xffcd\xee", badByte: 0xFF},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.in)
			if err == nil {
				t.Fatal("Expected decode to fail, got nil error")
			}

			var invErr InvalidByteError
			if !errors.As(err, &invErr) {
				t.Fatalf("Expected InvalidByteError, got %T: %v", err, err)
			}
			if byte(invErr) != tc.badByte {
				t.Errorf("Reported byte mismatch: got %q, want %q", byte(invErr), tc.badByte)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		{0xFF, 0x00, 0xFF},
		[]byte("the quick brown fox"),
		bytes.Repeat([]byte{0xA5}, 1024),
	}

	for _, src := range inputs {
		encoded := Encode(src)
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", encoded, err)
		}
		if !bytes.Equal(decoded, src) {
			t.Errorf("Round trip mismatch: got %v, want %v", decoded, src)
		}
	}
}

func TestEncodeRange(t *testing.T) {
	src := []byte{0x11, 0xDE, 0xAD, 0xBE, 0xEF, 0x22}

	t.Run("interior window", func(t *testing.T) {
		got, err := EncodeRange(src, 1, 4)
		if err != nil {
			t.Fatalf("EncodeRange failed: %v", err)
		}
		if got != "deadbeef" {
			t.Errorf("EncodeRange mismatch: got %q, want %q", got, "deadbeef")
		}
	})

	t.Run("empty window at end", func(t *testing.T) {
		got, err := EncodeRange(src, len(src), 0)
		if err != nil {
			t.Fatalf("EncodeRange failed: %v", err)
		}
		if got != "" {
			t.Errorf("EncodeRange mismatch: got %q, want empty", got)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		rangeCases := []struct {
			name string
			off  int
			n    int
		}{
			{name: "negative offset", off: -1, n: 2},
			{name: "negative length", off: 0, n: -1},
			{name: "window past end", off: 4, n: 4},
			{name: "offset past end", off: 7, n: 0},
		}

		for _, rc := range rangeCases {
			t.Run(rc.name, func(t *testing.T) {
				_, err := EncodeRange(src, rc.off, rc.n)
				if err == nil {
					t.Fatal("Expected range error, got nil")
				}

				var rangeErr *RangeError
				if !errors.As(err, &rangeErr) {
					t.Errorf("Expected *RangeError, got %T: %v", err, err)
				}
			})
		}
	})
}

func TestDecodeRange(t *testing.T) {
	t.Run("window skips surrounding garbage", func(t *testing.T) {
		// Bytes outside the window never get validated.
		got, err := DecodeRange("!!deadbeef!!", 2, 8)
		if err != nil {
			t.Fatalf("DecodeRange failed: %v", err)
		}
		if !bytes.Equal(got, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
			t.Errorf("DecodeRange mismatch: got %v", got)
		}
	})

	t.Run("odd window length", func(t *testing.T) {
		if _, err := DecodeRange("deadbeef", 0, 7); !errors.Is(err, ErrOddLength) {
			t.Errorf("Expected ErrOddLength, got %v", err)
		}
	})

	t.Run("window out of range", func(t *testing.T) {
		_, err := DecodeRange("dead", 2, 4)
		if err == nil {
			t.Fatal("Expected range error, got nil")
		}

		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("Expected *RangeError, got %T: %v", err, err)
		}
	})
}
