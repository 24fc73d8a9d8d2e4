// Package byteconv converts primitive numeric values to and from fixed-width
// byte sequences. This is the foundation for Bifrost's wire and storage codecs.
//
// # Layout
//
// Every multi-byte value is laid out big-endian (most significant byte first):
//
//	int16   -> 2 bytes
//	int32   -> 4 bytes
//	int64   -> 8 bytes
//	float32 -> 4 bytes (IEEE-754 bit pattern)
//	float64 -> 8 bytes (IEEE-754 bit pattern)
//
// Floats are encoded by reinterpreting the IEEE-754 bit pattern as an unsigned
// integer of the same width and encoding that integer big-endian. No rounding
// or conversion is involved at any point.
//
// # Reconstruction Semantics
//
// Decoding reconstructs integers by loading the unsigned big-endian value and
// reinterpreting it as two's complement, so the top byte carries the sign and
// negative values survive the round trip. Float decoding hands the unsigned
// load to math.Float32frombits / math.Float64frombits unchanged: every byte is
// raw pattern, none is a sign byte. The two paths are intentionally different —
// integers need sign extension, bit patterns must not get it.
//
// # Usage
//
// Each value kind has four forms: allocate-and-encode, encode at an offset into
// a caller-owned buffer, decode from the start of a buffer, and decode at an
// offset:
//
//	b := byteconv.EncodeInt32(-559038737)
//
//	buf := make([]byte, 16)
//	if err := byteconv.PutInt32(buf, 4, -559038737); err != nil {
//	    return err
//	}
//
//	v, err := byteconv.Int32At(buf, 4)
//	if err != nil {
//	    return err
//	}
//
// # Error Handling
//
// The only failure mode is an offset/width pair that does not fit the buffer,
// reported as *RangeError before anything is written or read. Encode forms that
// allocate cannot fail and return the buffer directly.
//
// # Thread Safety
//
// All functions are pure and safe for unbounded concurrent use on independent
// buffers.
package byteconv
