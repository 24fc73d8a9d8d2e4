package byteconv

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCopyOf(t *testing.T) {
	testCases := []struct {
		name string
		src  []byte
		n    int
		want []byte
	}{
		{
			name: "exact length",
			src:  []byte{1, 2, 3},
			n:    3,
			want: []byte{1, 2, 3},
		},
		{
			name: "truncate",
			src:  []byte{1, 2, 3, 4, 5},
			n:    2,
			want: []byte{1, 2},
		},
		{
			name: "grow with zero fill",
			src:  []byte{1, 2},
			n:    5,
			want: []byte{1, 2, 0, 0, 0},
		},
		{
			name: "zero length",
			src:  []byte{1, 2, 3},
			n:    0,
			want: []byte{},
		},
		{
			name: "empty source grows to zeros",
			src:  nil,
			n:    4,
			want: []byte{0, 0, 0, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CopyOf(tc.src, tc.n)
			if err != nil {
				t.Fatalf("CopyOf failed: %v", err)
			}
			if len(got) != tc.n {
				t.Fatalf("Length mismatch: got %d, want %d", len(got), tc.n)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("Content mismatch: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCopyOf_NegativeLength(t *testing.T) {
	_, err := CopyOf([]byte{1, 2, 3}, -1)
	if err == nil {
		t.Fatal("Expected range error for negative length, got nil")
	}

	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Expected *RangeError, got %T: %v", err, err)
	}
}

func TestCopyOf_DoesNotAliasSource(t *testing.T) {
	src := []byte{1, 2, 3, 4}

	dst, err := CopyOf(src, 4)
	if err != nil {
		t.Fatalf("CopyOf failed: %v", err)
	}

	dst[0] = 0xFF
	if src[0] != 1 {
		t.Errorf("Mutating the copy changed the source: %v", src)
	}

	src[1] = 0xEE
	if dst[1] != 2 {
		t.Errorf("Mutating the source changed the copy: %v", dst)
	}
}

func TestRangeError_Message(t *testing.T) {
	err := &RangeError{Off: 6, Need: 4, Size: 8}

	msg := err.Error()
	for _, part := range []string{"byteconv", "[6, 10)", "8-byte"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error message %q missing %q", msg, part)
		}
	}
}
