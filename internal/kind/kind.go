// Package kind classifies numeric types into the families the cast engine
// dispatches on, and answers range questions about them.
package kind

import "math"

// Kind is a numeric type family.
type Kind uint8

const (
	// Invalid is the zero Kind. No supported type reports it.
	Invalid Kind = iota
	// Signed is a two's complement integer.
	Signed
	// Unsigned is an unsigned integer.
	Unsigned
	// Float is an IEEE 754 binary floating point number.
	Float
	// NonZeroSigned is a signed integer that never holds zero.
	NonZeroSigned
	// NonZeroUnsigned is an unsigned integer that never holds zero.
	NonZeroUnsigned
)

var names = [...]string{
	Invalid:         "invalid",
	Signed:          "signed",
	Unsigned:        "unsigned",
	Float:           "float",
	NonZeroSigned:   "nonzero signed",
	NonZeroUnsigned: "nonzero unsigned",
}

func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}

	return "invalid"
}

// Base strips the non-zero constraint.
func (k Kind) Base() Kind {
	switch k {
	case NonZeroSigned:
		return Signed
	case NonZeroUnsigned:
		return Unsigned
	default:
		return k
	}
}

// NonZero returns the non-zero counterpart of an integer Kind. Other kinds
// are returned unchanged.
func (k Kind) NonZero() Kind {
	switch k {
	case Signed:
		return NonZeroSigned
	case Unsigned:
		return NonZeroUnsigned
	default:
		return k
	}
}

// IsNonZero reports whether k forbids zero.
func (k Kind) IsNonZero() bool {
	return k == NonZeroSigned || k == NonZeroUnsigned
}

// IsInteger reports whether k is an integer family.
func (k Kind) IsInteger() bool {
	switch k.Base() {
	case Signed, Unsigned:
		return true
	default:
		return false
	}
}

// IsSigned reports whether k can hold negative values.
func (k Kind) IsSigned() bool {
	switch k.Base() {
	case Signed, Float:
		return true
	default:
		return false
	}
}

// Info describes a concrete numeric type.
type Info struct {
	Kind Kind
	Bits int
}

// Valid reports whether i describes a supported type.
func (i Info) Valid() bool {
	if i.Kind == Invalid || i.Kind > NonZeroUnsigned {
		return false
	}

	if i.Kind == Float {
		return i.Bits == 32 || i.Bits == 64
	}

	switch i.Bits {
	case 8, 16, 32, 64:
		return true
	default:
		return false
	}
}

// Mask returns the bit mask covering the type's width.
func (i Info) Mask() uint64 {
	if i.Bits >= 64 {
		return math.MaxUint64
	}

	return 1<<uint(i.Bits) - 1
}

// Truncate keeps the low Bits bits of b.
func (i Info) Truncate(b uint64) uint64 {
	return b & i.Mask()
}

// MinInt returns the smallest value of an integer type. It is zero for
// unsigned kinds.
func (i Info) MinInt() int64 {
	if i.Kind.Base() != Signed {
		return 0
	}

	return -1 << uint(i.Bits-1)
}

// MaxInt returns the largest value of a signed integer type.
func (i Info) MaxInt() int64 {
	return 1<<uint(i.Bits-1) - 1
}

// MaxUint returns the largest value of an unsigned integer type.
func (i Info) MaxUint() uint64 {
	return i.Mask()
}

// MaxBits returns the largest value of an integer type as a sign-extended
// bit pattern.
func (i Info) MaxBits() uint64 {
	if i.Kind.Base() == Signed {
		return uint64(i.MaxInt())
	}

	return i.MaxUint()
}

// MinBits returns the smallest value of an integer type as a
// sign-extended bit pattern.
func (i Info) MinBits() uint64 {
	return uint64(i.MinInt())
}

// Bounds returns the integer range of the type as floats: lo is inclusive,
// hi is exclusive. Both are powers of two (or zero) and therefore exact.
func (i Info) Bounds() (lo, hi float64) {
	if i.Kind.Base() == Signed {
		hi = math.Ldexp(1, i.Bits-1)
		return -hi, hi
	}

	return 0, math.Ldexp(1, i.Bits)
}
