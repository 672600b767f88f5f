package numcast

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWithIntegerInputs(t *testing.T) {
	t.Run("withinRange", func(t *testing.T) {
		got, err := To[int8](int64(math.MaxInt8))
		require.NoError(t, err)
		assert.Equal(t, int8(math.MaxInt8), got)
	})

	t.Run("overflow", func(t *testing.T) {
		got, err := To[int8](int64(math.MaxInt8) + 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLossy)
		assert.ErrorIs(t, err, Overflow)
		assert.Equal(t, int8(math.MaxInt8), got)
	})

	t.Run("pointer", func(t *testing.T) {
		v := int64(-7)

		got, err := To[uint16](&v)
		assert.ErrorIs(t, err, SignChange)
		assert.Equal(t, uint16(0), got)
	})

	t.Run("nonZero", func(t *testing.T) {
		z := MustNonZero(int16(-5))

		got, err := To[int8](z)
		require.NoError(t, err)
		assert.Equal(t, int8(-5), got)

		got, err = To[int8](&z)
		require.NoError(t, err)
		assert.Equal(t, int8(-5), got)
	})

	t.Run("definedType", func(t *testing.T) {
		got, err := To[NonZero[uint32]](port(443))
		require.NoError(t, err)
		assert.Equal(t, uint32(443), got.Get())
	})
}

func TestToWithNonIntegerInputs(t *testing.T) {
	t.Run("stringNumber", func(t *testing.T) {
		got, err := To[int]("42")
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("hexString", func(t *testing.T) {
		got, err := To[uint8]("0x1F")
		require.NoError(t, err)
		assert.Equal(t, uint8(31), got)
	})

	t.Run("fractionalString", func(t *testing.T) {
		got, err := To[int8]("-4.6")
		assert.ErrorIs(t, err, FractionalTruncation)
		assert.Equal(t, int8(-4), got)
	})

	t.Run("largeUnsignedString", func(t *testing.T) {
		got, err := To[uint64]("18446744073709551615")
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64), got)
	})

	t.Run("exponentString", func(t *testing.T) {
		got, err := To[int16]("1e3")
		require.NoError(t, err)
		assert.Equal(t, int16(1000), got)
	})

	t.Run("jsonNumber", func(t *testing.T) {
		got, err := To[uint8](json.Number("300"))
		assert.ErrorIs(t, err, Overflow)
		assert.Equal(t, uint8(255), got)
	})

	t.Run("bool", func(t *testing.T) {
		got, err := To[float32](true)
		require.NoError(t, err)
		assert.Equal(t, float32(1), got)
	})

	t.Run("unsupported", func(t *testing.T) {
		var nilPtr *int

		for name, v := range map[string]any{
			"invalidString": "forty-two",
			"emptyString":   "",
			"blankString":   "  ",
			"nil":           nil,
			"nilPointer":    nilPtr,
			"struct":        struct{}{},
			"slice":         []int{1},
		} {
			t.Run(name, func(t *testing.T) {
				got, err := To[int](v)
				assert.ErrorIs(t, err, ErrUnsupported)
				assert.NotErrorIs(t, err, ErrLossy)
				assert.Zero(t, got)
			})
		}
	})
}

func TestToMust(t *testing.T) {
	t.Run("returns", func(t *testing.T) {
		assert.Equal(t, int64(-12), ToMust[int64]("-12"))
	})

	t.Run("panicsOnLoss", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = ToMust[uint8](-1)
		})
	})

	t.Run("panicsOnUnsupported", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = ToMust[uint8]("nope")
		})
	})
}

func TestCastAny(t *testing.T) {
	out, err := CastAny[int16](celsius(-4.5))
	require.NoError(t, err)

	assert.Equal(t, celsius(-4.5), out.Source())
	assert.Equal(t, FractionalTruncation, out.Kind())
	assert.Equal(t, int16(-4), out.Lossy())
	assert.Equal(t, int16(-5), out.Closest())

	_, err = CastAny[int16](map[string]int{})
	assert.ErrorIs(t, err, ErrUnsupported)
}
