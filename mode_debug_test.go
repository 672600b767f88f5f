//go:build !numcast_release

package numcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultModeDebug(t *testing.T) {
	assert.Equal(t, Debug, DefaultMode)

	assert.Panics(t, func() {
		_ = Cast[int8](int16(200)).AssumedLossless()
	})
}
