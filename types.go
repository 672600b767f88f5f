package numcast

import (
	"golang.org/x/exp/constraints"

	"go.dw1.io/numcast/internal/kind"
)

// Signed is an alias for [constraints.Signed].
type Signed = constraints.Signed

// Unsigned is an alias for [constraints.Unsigned].
type Unsigned = constraints.Unsigned

// Integer is an alias for [constraints.Integer].
type Integer = constraints.Integer

// Float is an alias for [constraints.Float].
type Float = constraints.Float

// Primitive is a constraint that matches every built-in integer and floating
// point type, including defined types over them.
type Primitive interface {
	Integer | Float
}

// Numeric is a constraint that matches every type [Cast] accepts: the
// [Primitive] types and the [NonZero] wrappers of the built-in integers.
type Numeric interface {
	Primitive |
		NonZero[int] | NonZero[int8] | NonZero[int16] | NonZero[int32] | NonZero[int64] |
		NonZero[uint] | NonZero[uint8] | NonZero[uint16] | NonZero[uint32] | NonZero[uint64] |
		NonZero[uintptr]
}

// Kind is the numeric family of a type.
type Kind = kind.Kind

// Numeric families reported by [InfoOf].
const (
	KindSigned          = kind.Signed
	KindUnsigned        = kind.Unsigned
	KindFloat           = kind.Float
	KindNonZeroSigned   = kind.NonZeroSigned
	KindNonZeroUnsigned = kind.NonZeroUnsigned
)

// Info describes the family and bit width of a numeric type.
type Info = kind.Info
