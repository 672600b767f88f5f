package numcast

// Bitwise reinterprets the bit pattern of v as a D, ignoring its
// mathematical value. For example the bits of int8(-1) read as uint8 are 255.
//
// When D is narrower than v only the low bits are kept; when it is wider the
// high bits are zero. Floats contribute their IEEE 754 encoding. Bitwise
// never fails, which is why D cannot be a [NonZero] type.
func Bitwise[D Primitive, S Numeric](v S) D {
	return fromBits[D](numberOf(v).pattern)
}
