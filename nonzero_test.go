package numcast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNonZero(t *testing.T) {
	t.Run("rejectsZero", func(t *testing.T) {
		_, ok := NewNonZero(uint32(0))
		assert.False(t, ok)
	})

	t.Run("wraps", func(t *testing.T) {
		z, ok := NewNonZero(int16(-3))
		require.True(t, ok)
		assert.Equal(t, int16(-3), z.Get())
	})

	t.Run("mustPanicsOnZero", func(t *testing.T) {
		assert.PanicsWithValue(t, "numcast: zero value for numcast.NonZero[uint8]", func() {
			_ = MustNonZero(uint8(0))
		})
	})
}

func TestNonZeroString(t *testing.T) {
	assert.Equal(t, "-42", MustNonZero(int64(-42)).String())
	assert.Equal(t, "18446744073709551615", MustNonZero(uint64(math.MaxUint64)).String())
	assert.Equal(t, "7", MustNonZero(uintptr(7)).String())
}
