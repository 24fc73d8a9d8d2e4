package base64

import (
	"fmt"
	"sync"
)

// Alphabet maps six-bit values to characters and back. Construct with
// NewAlphabet or MustAlphabet; the zero value is not usable.
type Alphabet struct {
	symbols string // 64 data symbols, plus the pad symbol when padded
	padded  bool
	pad     byte
}

// AlphabetError reports an alphabet definition that breaks the construction
// rules.
type AlphabetError struct {
	Symbols string
	Reason  string
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("base64: invalid alphabet %q: %s", e.Symbols, e.Reason)
}

// Std is the RFC 4648 standard alphabet with = padding. The package-level
// Encode and Decode functions use it.
var Std = MustAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/=")

// NewAlphabet builds an Alphabet from its symbol string: 64 data symbols in
// value order, optionally followed by a 65th pad symbol. All symbols must be
// distinct ASCII characters.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) != 64 && len(symbols) != 65 {
		return nil, &AlphabetError{Symbols: symbols, Reason: fmt.Sprintf("got %d symbols, want 64 or 65", len(symbols))}
	}

	var seen [128]bool
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c >= 0x80 {
			return nil, &AlphabetError{Symbols: symbols, Reason: fmt.Sprintf("symbol %#U is not ASCII", rune(c))}
		}
		if seen[c] {
			return nil, &AlphabetError{Symbols: symbols, Reason: fmt.Sprintf("symbol %q appears twice", c)}
		}
		seen[c] = true
	}

	a := &Alphabet{symbols: symbols, padded: len(symbols) == 65}
	if a.padded {
		a.pad = symbols[64]
	}
	return a, nil
}

// MustAlphabet is NewAlphabet for program-literal definitions; it panics on an
// invalid one.
func MustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the symbol string the Alphabet was built from.
func (a *Alphabet) String() string {
	return a.symbols
}

// Padded reports whether the Alphabet carries a pad symbol.
func (a *Alphabet) Padded() bool {
	return a.padded
}

// tables caches decode tables process-wide, keyed by the full symbol string.
// Identical alphabets constructed independently share one table.
var tables sync.Map // string -> *[128]int8

func (a *Alphabet) table() *[128]int8 {
	if v, ok := tables.Load(a.symbols); ok {
		return v.(*[128]int8)
	}

	// Losing the LoadOrStore race is fine: every builder of this key
	// produces an identical table.
	v, _ := tables.LoadOrStore(a.symbols, buildTable(a.symbols))
	return v.(*[128]int8)
}

// buildTable maps the 64 data symbols to their six-bit values, -1 everywhere
// else. The pad symbol stays -1 so it only decodes where the trailing-group
// rules explicitly allow it.
func buildTable(symbols string) *[128]int8 {
	var t [128]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < 64; i++ {
		t[symbols[i]] = int8(i)
	}
	return &t
}
