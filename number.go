package numcast

import (
	"math"
	"reflect"
	"strconv"

	"go.dw1.io/numcast/internal/kind"
)

const uintptrBits = 32 << (^uintptr(0) >> 63)

// number is the mathematical value of an operand together with its bit
// pattern. Exactly one of i, u and f is meaningful, selected by info.Kind,
// which is always a base (Signed, Unsigned or Float) family.
type number struct {
	info    kind.Info
	i       int64
	u       uint64
	f       float64
	pattern uint64
}

func signedNumber(v int64, bits int) number {
	info := kind.Info{Kind: kind.Signed, Bits: bits}
	return number{info: info, i: v, pattern: info.Truncate(uint64(v))}
}

func unsignedNumber(v uint64, bits int) number {
	return number{info: kind.Info{Kind: kind.Unsigned, Bits: bits}, u: v, pattern: v}
}

func float32Number(v float32) number {
	return number{
		info:    kind.Info{Kind: kind.Float, Bits: 32},
		f:       float64(v),
		pattern: uint64(math.Float32bits(v)),
	}
}

func float64Number(v float64) number {
	return number{
		info:    kind.Info{Kind: kind.Float, Bits: 64},
		f:       v,
		pattern: math.Float64bits(v),
	}
}

// negative reports whether an integer number is below zero.
func (n number) negative() bool {
	return n.info.Kind == kind.Signed && n.i < 0
}

// wide returns an integer number sign-extended to 64 bits.
func (n number) wide() uint64 {
	if n.info.Kind == kind.Signed {
		return uint64(n.i)
	}

	return n.u
}

// nonZeroValue is implemented by every [NonZero] instantiation. It lets the
// engine reach the wrapped integer without knowing its type.
type nonZeroValue interface {
	number() number
	info() kind.Info
	withBits(b uint64) any
}

// InfoOf reports the numeric family and bit width of T.
func InfoOf[T Numeric]() Info {
	var zero T

	switch z := any(zero).(type) {
	case int:
		return kind.Info{Kind: kind.Signed, Bits: strconv.IntSize}
	case int8:
		return kind.Info{Kind: kind.Signed, Bits: 8}
	case int16:
		return kind.Info{Kind: kind.Signed, Bits: 16}
	case int32:
		return kind.Info{Kind: kind.Signed, Bits: 32}
	case int64:
		return kind.Info{Kind: kind.Signed, Bits: 64}
	case uint:
		return kind.Info{Kind: kind.Unsigned, Bits: strconv.IntSize}
	case uint8:
		return kind.Info{Kind: kind.Unsigned, Bits: 8}
	case uint16:
		return kind.Info{Kind: kind.Unsigned, Bits: 16}
	case uint32:
		return kind.Info{Kind: kind.Unsigned, Bits: 32}
	case uint64:
		return kind.Info{Kind: kind.Unsigned, Bits: 64}
	case uintptr:
		return kind.Info{Kind: kind.Unsigned, Bits: uintptrBits}
	case float32:
		return kind.Info{Kind: kind.Float, Bits: 32}
	case float64:
		return kind.Info{Kind: kind.Float, Bits: 64}
	case nonZeroValue:
		return z.info()
	}

	return reflectInfo(reflect.TypeFor[T]())
}

// reflectInfo classifies defined types such as `type Celsius float64`.
func reflectInfo(t reflect.Type) Info {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kind.Info{Kind: kind.Signed, Bits: t.Bits()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kind.Info{Kind: kind.Unsigned, Bits: t.Bits()}
	case reflect.Float32, reflect.Float64:
		return kind.Info{Kind: kind.Float, Bits: t.Bits()}
	default:
		return kind.Info{}
	}
}

// numberOf extracts the mathematical value of v.
func numberOf[T Numeric](v T) number {
	switch x := any(v).(type) {
	case int:
		return signedNumber(int64(x), strconv.IntSize)
	case int8:
		return signedNumber(int64(x), 8)
	case int16:
		return signedNumber(int64(x), 16)
	case int32:
		return signedNumber(int64(x), 32)
	case int64:
		return signedNumber(x, 64)
	case uint:
		return unsignedNumber(uint64(x), strconv.IntSize)
	case uint8:
		return unsignedNumber(uint64(x), 8)
	case uint16:
		return unsignedNumber(uint64(x), 16)
	case uint32:
		return unsignedNumber(uint64(x), 32)
	case uint64:
		return unsignedNumber(x, 64)
	case uintptr:
		return unsignedNumber(uint64(x), uintptrBits)
	case float32:
		return float32Number(x)
	case float64:
		return float64Number(x)
	case nonZeroValue:
		return x.number()
	}

	n, _ := reflectNumber(reflect.ValueOf(v))

	return n
}

// reflectNumber extracts the value of a defined numeric type. It reports
// false when rv is not numeric.
func reflectNumber(rv reflect.Value) (number, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedNumber(rv.Int(), rv.Type().Bits()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedNumber(rv.Uint(), rv.Type().Bits()), true
	case reflect.Float32:
		return float32Number(float32(rv.Float())), true
	case reflect.Float64:
		return float64Number(rv.Float()), true
	default:
		return number{}, false
	}
}

// fromBits builds a D from a bit pattern in D's own encoding: two's
// complement for integers (truncated to D's width) and IEEE 754 for floats.
func fromBits[D Numeric](b uint64) D {
	var zero D
	var v any

	switch z := any(zero).(type) {
	case int:
		v = int(int64(b))
	case int8:
		v = int8(b)
	case int16:
		v = int16(b)
	case int32:
		v = int32(b)
	case int64:
		v = int64(b)
	case uint:
		v = uint(b)
	case uint8:
		v = uint8(b)
	case uint16:
		v = uint16(b)
	case uint32:
		v = uint32(b)
	case uint64:
		v = b
	case uintptr:
		v = uintptr(b)
	case float32:
		v = math.Float32frombits(uint32(b))
	case float64:
		v = math.Float64frombits(b)
	case nonZeroValue:
		v = z.withBits(b)
	default:
		rv := reflect.New(reflect.TypeFor[D]()).Elem()

		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			rv.SetInt(int64(b))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			rv.SetUint(b)
		case reflect.Float32:
			rv.SetFloat(float64(math.Float32frombits(uint32(b))))
		case reflect.Float64:
			rv.SetFloat(math.Float64frombits(b))
		}

		return rv.Interface().(D)
	}

	return v.(D)
}
