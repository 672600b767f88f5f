package numcast

import (
	"fmt"

	"go.dw1.io/numcast/internal/kind"
)

// NonZero is an integer that is never zero.
//
// The zero NonZero is not a valid value; obtain one from [NewNonZero],
// [MustNonZero] or a cast.
type NonZero[T Integer] struct {
	n T
}

// NewNonZero wraps v. It reports false when v is zero.
func NewNonZero[T Integer](v T) (NonZero[T], bool) {
	if v == 0 {
		return NonZero[T]{}, false
	}

	return NonZero[T]{n: v}, true
}

// MustNonZero wraps v and panics when v is zero.
func MustNonZero[T Integer](v T) NonZero[T] {
	z, ok := NewNonZero(v)
	if !ok {
		panic(fmt.Sprintf("numcast: zero value for %T", z))
	}

	return z
}

// Get returns the wrapped integer.
func (z NonZero[T]) Get() T {
	return z.n
}

// String formats the wrapped integer in base 10.
func (z NonZero[T]) String() string {
	return formatValue(z.n)
}

func (z NonZero[T]) number() number {
	return numberOf(z.n)
}

func (NonZero[T]) info() kind.Info {
	info := InfoOf[T]()
	info.Kind = info.Kind.NonZero()

	return info
}

func (NonZero[T]) withBits(b uint64) any {
	return NonZero[T]{n: T(b)}
}
