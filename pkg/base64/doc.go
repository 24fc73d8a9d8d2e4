// Package base64 implements base64 encoding and decoding over pluggable
// alphabets. The standard RFC 4648 alphabet is built in; callers that speak
// dialects (URL-safe, IMAP mailbox names, crypt-style hashes) construct their
// own Alphabet once and reuse it everywhere.
//
// # Alphabets
//
// An Alphabet is an ordered string of 64 or 65 distinct ASCII characters. The
// first 64 are the data symbols, in value order: position i encodes the six-bit
// value i. A 65th character, when present, is the pad symbol:
//
//	std := base64.Std // A..Z a..z 0..9 + / with = padding
//
//	imap, err := base64.NewAlphabet(
//	    "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+,")
//
// Construction validates the definition up front. After that an Alphabet is
// immutable and safe to share.
//
// # Padding
//
// A 65-symbol alphabet always completes the final 4-character group with pad
// symbols on encode, and on decode requires the input length to be a multiple
// of four, reading the trailing byte count out of the pad positions. A
// 64-symbol alphabet emits no padding; its decoder derives the trailing byte
// count from input length mod 4 (2 -> one byte, 3 -> two bytes, 1 -> invalid).
//
// # Decoding Strictness
//
// Every consumed character must belong to the alphabet. Anything else, the pad
// symbol in a position the rules above do not allow for it included, fails with
// CorruptInputError carrying the offending input offset. Decoding never guesses
// and never returns partial output.
//
// # Decode Tables
//
// Decoding resolves characters through a 128-entry reverse table built from the
// alphabet. Tables are built on first use and cached process-wide, keyed by the
// alphabet's full symbol string, so constructing the same alphabet in many
// places still builds one table. Concurrent first uses may build duplicates;
// all duplicates are identical and one wins the cache slot.
//
// # Thread Safety
//
// All operations on a constructed Alphabet are read-only and safe for
// unbounded concurrent use.
package base64
