package particle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWidthToLifetime(t *testing.T) {
	tau, err := WidthToLifetime(2.5284e-14)
	require.NoError(t, err)
	assert.InDelta(t, 26.03, tau, 0.05)

	tau, err = WidthToLifetime(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(tau, 1))

	_, err = WidthToLifetime(-1)
	assert.Error(t, err)
}

func TestLifetimeToWidth(t *testing.T) {
	w, err := LifetimeToWidth(26.033)
	require.NoError(t, err)
	assert.InDelta(t, 2.5284e-14, w, 1e-17)

	w, err = LifetimeToWidth(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(w, 1))

	_, err = LifetimeToWidth(-0.5)
	assert.Error(t, err)
}

func TestWidthLifetimeRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := rapid.Float64Range(1e-20, 1e3).Draw(rt, "width")
		tau, err := WidthToLifetime(w)
		require.NoError(rt, err)
		back, err := LifetimeToWidth(tau)
		require.NoError(rt, err)
		assert.InEpsilon(rt, w, back, 1e-12)
	})
}
