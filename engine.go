package numcast

import (
	"math"

	"go.dw1.io/safemath"

	"go.dw1.io/numcast/internal/kind"
)

const (
	two63 = 0x1p63
	two64 = 0x1p64

	// float32Overflow is the smallest float64 magnitude that rounds to
	// infinity when converted to float32: MaxFloat32 plus half an ulp.
	float32Overflow = 0x1.ffffffp127
)

// result is the engine's verdict, with every value encoded as a bit pattern
// of the destination type (see fromBits).
type result struct {
	kind    LossKind
	value   uint64 // exact or attempted value
	closest uint64
	raw     uint64 // what a plain conversion produces
}

func exact(b uint64) result {
	return result{kind: Exact, value: b, closest: b, raw: b}
}

func saturated(k LossKind, b uint64) result {
	return result{kind: k, value: b, closest: b, raw: b}
}

// Cast converts v to D and reports whether the conversion was exact.
//
// The returned [Outcome] always holds a usable value; its adapters decide
// what to do when the cast was lossy.
func Cast[D Numeric, S Numeric](v S) Outcome[S, D] {
	return newOutcome[S, D](v, evaluate(numberOf(v), InfoOf[D]()))
}

func evaluate(n number, dst kind.Info) result {
	switch {
	case dst.Kind == kind.Float && n.info.Kind == kind.Float:
		return floatToFloat(n, dst)
	case dst.Kind == kind.Float:
		return integerToFloat(n, dst)
	case n.info.Kind == kind.Float:
		return floatToInteger(n.f, dst)
	default:
		return integerToInteger(n, dst)
	}
}

func integerToInteger(n number, dst kind.Info) result {
	raw := n.wide()

	if fitsInteger(n, dst) {
		if dst.Kind.IsNonZero() && raw == 0 {
			return nonZeroViolation(dst, false)
		}

		return exact(raw)
	}

	var r result

	switch {
	case n.negative() && dst.Kind.Base() == kind.Unsigned:
		r.kind, r.closest = SignChange, 0
	case n.negative():
		r.kind, r.closest = Underflow, dst.MinBits()
	default:
		r.kind, r.closest = Overflow, dst.MaxBits()
	}

	r.closest = avoidZero(dst, r.closest, false)
	r.value = r.closest
	r.raw = raw

	if dst.Kind.IsNonZero() && dst.Truncate(raw) == 0 {
		r.raw = r.closest
	}

	return r
}

// fitsInteger reports whether an integer number is representable in dst.
// The range check is delegated to safemath, keyed by width and signedness
// so that defined types and non-zero wrappers share it.
func fitsInteger(n number, dst kind.Info) bool {
	var v any = n.u
	if n.info.Kind == kind.Signed {
		v = n.i
	}

	if dst.Kind.Base() == kind.Signed {
		switch dst.Bits {
		case 8:
			return converts[int8](v)
		case 16:
			return converts[int16](v)
		case 32:
			return converts[int32](v)
		default:
			return converts[int64](v)
		}
	}

	switch dst.Bits {
	case 8:
		return converts[uint8](v)
	case 16:
		return converts[uint16](v)
	case 32:
		return converts[uint32](v)
	default:
		return converts[uint64](v)
	}
}

func converts[I safemath.Integer](v any) bool {
	_, err := safemath.ConvertAny[I](v)
	return err == nil
}

func floatToInteger(f float64, dst kind.Info) result {
	if math.IsNaN(f) {
		return saturated(Overflow, avoidZero(dst, 0, false))
	}

	lo, hi := dst.Bounds()
	t := math.Trunc(f)

	switch {
	case t >= hi:
		return saturated(Overflow, dst.MaxBits())
	case t < lo && dst.Kind.Base() == kind.Unsigned:
		return saturated(SignChange, avoidZero(dst, 0, false))
	case t < lo:
		return saturated(Underflow, dst.MinBits())
	}

	raw := integerBits(t, dst)

	if dst.Kind.IsNonZero() && raw == 0 {
		return nonZeroViolation(dst, math.Signbit(f))
	}

	if t != f {
		return result{
			kind:    FractionalTruncation,
			value:   raw,
			closest: roundedBits(f, dst),
			raw:     raw,
		}
	}

	return exact(raw)
}

// roundedBits rounds f half away from zero and saturates it into dst.
func roundedBits(f float64, dst kind.Info) uint64 {
	lo, hi := dst.Bounds()
	r := math.Round(f)

	var b uint64

	switch {
	case r >= hi:
		b = dst.MaxBits()
	case r < lo:
		b = dst.MinBits()
	default:
		b = integerBits(r, dst)
	}

	return avoidZero(dst, b, math.Signbit(f))
}

// integerBits converts an integral float already known to be in dst's range.
func integerBits(t float64, dst kind.Info) uint64 {
	if dst.Kind.Base() == kind.Signed {
		return uint64(int64(t))
	}

	return uint64(t)
}

// nonZeroViolation handles a zero headed for a non-zero type. The closest
// non-zero value follows the sign of the source, and is +1 when the source
// has no sign or the destination cannot be negative.
func nonZeroViolation(dst kind.Info, negative bool) result {
	return saturated(NonZeroViolation, avoidZero(dst, 0, negative))
}

// avoidZero replaces a zero bound for a non-zero destination with the
// nearest non-zero value.
func avoidZero(dst kind.Info, b uint64, negative bool) uint64 {
	if !dst.Kind.IsNonZero() || dst.Truncate(b) != 0 {
		return b
	}

	if negative && dst.Kind.Base() == kind.Signed {
		return math.MaxUint64 // -1
	}

	return 1
}

func integerToFloat(n number, dst kind.Info) result {
	var f float64

	switch {
	case dst.Bits == 32 && n.info.Kind == kind.Signed:
		f = float64(float32(n.i))
	case dst.Bits == 32:
		f = float64(float32(n.u))
	case n.info.Kind == kind.Signed:
		f = float64(n.i)
	default:
		f = float64(n.u)
	}

	b := floatBits(f, dst)

	if integerEquals(n, f) {
		return exact(b)
	}

	return saturated(FractionalTruncation, b)
}

// integerEquals reports whether f is mathematically equal to the integer n.
// Both bounds are checked first because converting an out-of-range float to
// an integer is implementation-defined.
func integerEquals(n number, f float64) bool {
	if n.info.Kind == kind.Signed {
		return f >= -two63 && f < two63 && int64(f) == n.i
	}

	return f >= 0 && f < two64 && uint64(f) == n.u
}

func floatToFloat(n number, dst kind.Info) result {
	f := n.f

	switch {
	case dst.Bits == n.info.Bits:
		return exact(n.pattern)
	case dst.Bits == 64:
		return exact(floatBits(f, dst))
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return exact(floatBits(f, dst))
	}

	if math.Abs(f) > math.MaxFloat32 {
		k := Overflow
		if f < 0 {
			k = Underflow
		}

		r := saturated(k, floatBits(math.Copysign(math.MaxFloat32, f), dst))
		if math.Abs(f) >= float32Overflow {
			r.raw = floatBits(math.Inf(int(math.Copysign(1, f))), dst)
		}

		return r
	}

	g := float64(float32(f))
	b := floatBits(g, dst)

	if g == f {
		return exact(b)
	}

	return saturated(FractionalTruncation, b)
}

// floatBits encodes a float64 already rounded to dst's precision.
func floatBits(f float64, dst kind.Info) uint64 {
	if dst.Bits == 32 {
		return uint64(math.Float32bits(float32(f)))
	}

	return math.Float64bits(f)
}
