package numcast

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
)

// LossKind describes why a cast did not preserve the source value.
//
// Every LossKind other than [Exact] is also an error, so it can be matched
// with [errors.Is] against errors returned by this package.
type LossKind uint8

const (
	// Exact means the cast preserved the mathematical value.
	Exact LossKind = iota
	// Overflow means the value is above the destination's maximum. NaN
	// into an integer type is reported as Overflow as well.
	Overflow
	// Underflow means the value is below the destination's minimum.
	Underflow
	// FractionalTruncation means precision was dropped: the fractional part
	// of a float cast to an integer, or low-order digits rounded away when
	// the destination is a narrower float.
	FractionalTruncation
	// SignChange means a negative value was cast to an unsigned type.
	SignChange
	// NonZeroViolation means zero was cast to a [NonZero] type.
	NonZeroViolation
)

var lossKindNames = [...]string{
	Exact:                "exact",
	Overflow:             "overflow",
	Underflow:            "underflow",
	FractionalTruncation: "fractional truncation",
	SignChange:           "sign change",
	NonZeroViolation:     "nonzero violation",
}

func (k LossKind) String() string {
	if int(k) < len(lossKindNames) {
		return lossKindNames[k]
	}

	return fmt.Sprintf("LossKind(%d)", uint8(k))
}

func (k LossKind) Error() string {
	return "numcast: " + k.String()
}

// ErrLossy matches every error reporting a lossy cast.
var ErrLossy = errors.New("numcast: lossy cast")

// ErrUnsupported indicates that a dynamic value has no numeric meaning.
//
// It is wrapped by [To], [ToMust] and [CastAny].
var ErrUnsupported = errors.New("numcast: unsupported value")

// LossyError is implemented by every [LossyCastError] instantiation. It lets
// error handling code inspect a lossy cast without knowing its types.
type LossyError interface {
	error
	LossKind() LossKind
	Source() any
	Attempted() any
}

// LossyCastError reports a cast that did not preserve the source value.
//
// To holds the attempted value, which is what [Outcome.Lossy] returns.
type LossyCastError[S any, D Numeric] struct {
	From S
	To   D
	Kind LossKind
}

func (e *LossyCastError[S, D]) Error() string {
	return fmt.Sprintf("numcast: lossy cast (%s) [%s (%T) -> %s (%T)]",
		e.Kind.String(), formatValue(e.From), e.From, formatValue(e.To), e.To)
}

// Is matches [ErrLossy] and the error's own [LossKind].
func (e *LossyCastError[S, D]) Is(target error) bool {
	if target == ErrLossy {
		return true
	}

	k, ok := target.(LossKind)

	return ok && k == e.Kind
}

// LossKind returns e.Kind.
func (e *LossyCastError[S, D]) LossKind() LossKind {
	return e.Kind
}

// Source returns e.From.
func (e *LossyCastError[S, D]) Source() any {
	return e.From
}

// Attempted returns e.To.
func (e *LossyCastError[S, D]) Attempted() any {
	return e.To
}

// formatValue renders a number the way strconv would, falling back to fmt for
// types spf13/cast does not know (uintptr, for one).
func formatValue(v any) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return s
}
