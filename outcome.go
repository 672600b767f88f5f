package numcast

// Outcome is the result of a checked cast from S to D.
//
// An Outcome is either exact, in which case every accessor returns the same
// value, or lossy, in which case [Outcome.Kind] says why and the accessors
// apply their own policy. A lossy Outcome always carries a best-effort
// value; nothing is silently discarded.
type Outcome[S any, D Numeric] struct {
	from    S
	value   D
	closest D
	raw     D
	kind    LossKind
}

func newOutcome[S any, D Numeric](from S, r result) Outcome[S, D] {
	return Outcome[S, D]{
		from:    from,
		value:   fromBits[D](r.value),
		closest: fromBits[D](r.closest),
		raw:     fromBits[D](r.raw),
		kind:    r.kind,
	}
}

// Source returns the value that was cast.
func (o Outcome[S, D]) Source() S {
	return o.from
}

// Kind returns [Exact] or the reason the cast was lossy.
func (o Outcome[S, D]) Kind() LossKind {
	return o.kind
}

// IsExact reports whether the cast preserved the source value.
func (o Outcome[S, D]) IsExact() bool {
	return o.kind == Exact
}

// Value returns the converted value and a nil error when the cast was exact.
// Otherwise it returns the attempted value (see [Outcome.Lossy]) together
// with a *[LossyCastError].
func (o Outcome[S, D]) Value() (D, error) {
	return o.value, o.Err()
}

// Err returns nil for an exact cast and a *[LossyCastError] otherwise.
func (o Outcome[S, D]) Err() error {
	if o.kind == Exact {
		return nil
	}

	return o.lossyError()
}

func (o Outcome[S, D]) lossyError() *LossyCastError[S, D] {
	return &LossyCastError[S, D]{From: o.from, To: o.value, Kind: o.kind}
}

// Closest returns the representable value nearest to the source.
//
// Out-of-range values saturate to the destination's minimum or maximum,
// NaN becomes zero, and floats are rounded to the nearest integer with
// halves rounded away from zero. For [NonZero] destinations a zero result
// becomes -1 when the source was negative (including -0.0) and the
// destination is signed, and +1 otherwise.
func (o Outcome[S, D]) Closest() D {
	return o.closest
}

// Lossy returns the attempted value regardless of exactness.
//
// For out-of-range sources and non-zero violations the attempted value is
// the same as [Outcome.Closest]. For fractional floats cast to integers it
// is the value truncated toward zero.
func (o Outcome[S, D]) Lossy() D {
	return o.value
}

// AssumedLossless returns the value of a cast the caller asserts is exact.
//
// In [Debug] mode a lossy cast panics with its *[LossyCastError]. In
// [Release] mode the check is skipped and the plain conversion result is
// returned, the same as [Outcome.UnwrapUnchecked]. The mode defaults to
// [DefaultMode] and can be overridden with [WithMode].
func (o Outcome[S, D]) AssumedLossless(opts ...Option) D {
	if o.kind == Exact {
		return o.value
	}

	cfg := newOptions(opts)
	if cfg.mode == Debug {
		panic(o.lossyError())
	}

	if cfg.logger != nil {
		cfg.logger.Debug("numcast: accepted lossy cast",
			"kind", o.kind.String(),
			"from", formatValue(o.from),
			"to", formatValue(o.raw),
		)
	}

	return o.raw
}

// UnwrapUnchecked returns the plain conversion result without checking
// exactness. The caller must have proven the cast lossless; otherwise the
// result is unspecified.
//
// Integers wrap to the destination's width, floats saturate when cast to
// integers, and a zero that would land in a [NonZero] is replaced by the
// closest non-zero value.
func (o Outcome[S, D]) UnwrapUnchecked() D {
	return o.raw
}
