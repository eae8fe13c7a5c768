package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint32(t *testing.T) {
	v, err := IntToUint32(42)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)

	v, err = IntToUint32(math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), v)

	_, err = IntToUint32(-1)
	assert.ErrorContains(t, err, "negative")

	if math.MaxInt > math.MaxUint32 {
		_, err = IntToUint32(math.MaxUint32 + 1)
		assert.ErrorContains(t, err, "too large")
	}
}

func TestIntToUint16(t *testing.T) {
	v, err := IntToUint16(65535)
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), v)

	_, err = IntToUint16(65536)
	assert.Error(t, err)
	_, err = IntToUint16(-3)
	assert.Error(t, err)
}
