package numcast

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// To converts v to D.
//
// v may be any numeric value (including defined types and [NonZero]
// wrappers), a pointer to one, a numeric string or [encoding/json.Number],
// or a bool. Strings and bools are normalized with [cast]. A lossy
// conversion returns the attempted value with a *[LossyCastError]. Inputs
// without numeric meaning, nil and empty strings included, return an error
// wrapping [ErrUnsupported].
func To[D Numeric](v any) (D, error) {
	out, err := CastAny[D](v)
	if err != nil {
		var zero D
		return zero, err
	}

	return out.Value()
}

// ToMust converts v to D and panics on error.
func ToMust[D Numeric](v any) D {
	to, err := To[D](v)
	if err != nil {
		panic(err)
	}

	return to
}

// CastAny is the dynamic counterpart of [Cast]: it returns the full
// [Outcome] of converting v to D. The error is non-nil only when v has no
// numeric meaning.
func CastAny[D Numeric](v any) (Outcome[any, D], error) {
	n, err := numberOfAny(v)
	if err != nil {
		return Outcome[any, D]{}, err
	}

	return newOutcome[any, D](v, evaluate(n, InfoOf[D]())), nil
}

// numberOfAny extracts the mathematical value of a dynamically typed input.
func numberOfAny(v any) (number, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	if !rv.IsValid() || rv.Kind() == reflect.Pointer {
		return number{}, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}

	if z, ok := rv.Interface().(nonZeroValue); ok {
		return z.number(), nil
	}

	if n, ok := reflectNumber(rv); ok {
		return n, nil
	}

	switch rv.Kind() {
	case reflect.String:
		return parseNumber(rv.String())
	case reflect.Bool:
		i, err := cast.ToInt64E(rv.Bool())
		if err != nil {
			return number{}, fmt.Errorf("%w: %w", ErrUnsupported, err)
		}

		return signedNumber(i, 64), nil
	default:
		return number{}, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// parseNumber reads integer literals (any base strconv accepts) as exact
// 64-bit integers and everything else as a float64.
func parseNumber(s string) (number, error) {
	if strings.TrimSpace(s) == "" {
		return number{}, fmt.Errorf("%w: empty string", ErrUnsupported)
	}

	if !strings.Contains(s, ".") {
		if i, err := cast.ToInt64E(s); err == nil {
			return signedNumber(i, 64), nil
		}

		if u, err := cast.ToUint64E(s); err == nil {
			return unsignedNumber(u, 64), nil
		}
	}

	f, err := cast.ToFloat64E(s)
	if err != nil {
		return number{}, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	return float64Number(f), nil
}
