package kind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFamilies(t *testing.T) {
	t.Run("base", func(t *testing.T) {
		assert.Equal(t, Signed, NonZeroSigned.Base())
		assert.Equal(t, Unsigned, NonZeroUnsigned.Base())
		assert.Equal(t, Float, Float.Base())
	})

	t.Run("nonZero", func(t *testing.T) {
		assert.Equal(t, NonZeroSigned, Signed.NonZero())
		assert.Equal(t, NonZeroUnsigned, Unsigned.NonZero())
		assert.Equal(t, Float, Float.NonZero())
		assert.True(t, NonZeroUnsigned.IsNonZero())
		assert.False(t, Unsigned.IsNonZero())
	})

	t.Run("predicates", func(t *testing.T) {
		assert.True(t, NonZeroSigned.IsInteger())
		assert.False(t, Float.IsInteger())
		assert.True(t, Float.IsSigned())
		assert.False(t, NonZeroUnsigned.IsSigned())
	})

	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "nonzero unsigned", NonZeroUnsigned.String())
		assert.Equal(t, "invalid", Kind(200).String())
	})
}

func TestInfoLimits(t *testing.T) {
	t.Run("signed", func(t *testing.T) {
		i8 := Info{Kind: Signed, Bits: 8}
		assert.Equal(t, int64(math.MinInt8), i8.MinInt())
		assert.Equal(t, int64(math.MaxInt8), i8.MaxInt())
		assert.Equal(t, uint64(0x7f), i8.MaxBits())
		assert.Equal(t, uint64(0x80), i8.Truncate(i8.MinBits()))

		i64 := Info{Kind: NonZeroSigned, Bits: 64}
		assert.Equal(t, int64(math.MinInt64), i64.MinInt())
		assert.Equal(t, uint64(math.MaxInt64), i64.MaxBits())
	})

	t.Run("unsigned", func(t *testing.T) {
		u16 := Info{Kind: Unsigned, Bits: 16}
		assert.Equal(t, int64(0), u16.MinInt())
		assert.Equal(t, uint64(math.MaxUint16), u16.MaxBits())
		assert.Equal(t, uint64(0), u16.MinBits())

		u64 := Info{Kind: Unsigned, Bits: 64}
		assert.Equal(t, uint64(math.MaxUint64), u64.MaxUint())
	})

	t.Run("bounds", func(t *testing.T) {
		lo, hi := Info{Kind: Signed, Bits: 16}.Bounds()
		assert.Equal(t, float64(math.MinInt16), lo)
		assert.Equal(t, float64(math.MaxInt16)+1, hi)

		lo, hi = Info{Kind: Unsigned, Bits: 64}.Bounds()
		assert.Equal(t, 0.0, lo)
		assert.Equal(t, 0x1p64, hi)
	})

	t.Run("valid", func(t *testing.T) {
		require.True(t, Info{Kind: Float, Bits: 32}.Valid())
		require.False(t, Info{Kind: Float, Bits: 16}.Valid())
		require.False(t, Info{Kind: Signed, Bits: 12}.Valid())
		require.False(t, Info{}.Valid())
	})
}
