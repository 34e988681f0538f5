package coordproj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEllipsoid(t *testing.T) {
	e, err := NewEllipsoid(6378137, 1/298.257223563)
	require.NoError(t, err)
	assert.InDelta(t, 0.00669437999014, e.Es, 1e-14)
	assert.InDelta(t, 1, e.OneEs*e.ROneEs, 1e-15)
	assert.False(t, e.Spherical)

	s, err := NewSphere(6370997)
	require.NoError(t, err)
	assert.True(t, s.Spherical)
	assert.Equal(t, 1.0, s.OneEs)

	for _, bad := range [][2]float64{{0, 0}, {-1, 0}, {math.Inf(1), 0}, {math.NaN(), 0}, {1, -0.1}, {1, 1}, {1, math.NaN()}} {
		_, err := NewEllipsoid(bad[0], bad[1])
		require.ErrorIs(t, err, ErrInvalidParameter, "a=%g f=%g", bad[0], bad[1])
	}
}

func TestNormalizeLongitude(t *testing.T) {
	assert.Equal(t, math.Pi, normalizeLongitude(math.Pi))
	assert.Equal(t, -math.Pi, normalizeLongitude(-math.Pi))
	assert.Equal(t, 0.5, normalizeLongitude(0.5))
	assert.InDelta(t, -math.Pi/2, normalizeLongitude(3*math.Pi/2), 1e-15)
	assert.InDelta(t, 0.25, normalizeLongitude(0.25+4*math.Pi), 1e-14)
}

func TestGeodeticToCoreKeepsNonFinite(t *testing.T) {
	p := Parameters{CentralMeridian: 1}
	assert.True(t, math.IsNaN(geodeticToCore(&p, math.NaN())))
	assert.True(t, math.IsInf(geodeticToCore(&p, math.Inf(1)), 1))
	assert.InDelta(t, -0.5, geodeticToCore(&p, 0.5), 1e-15)
}

func TestCoreToGeodeticClamps(t *testing.T) {
	p := Parameters{}
	assert.Equal(t, math.Pi, coreToGeodetic(&p, 4))
	assert.Equal(t, -math.Pi, coreToGeodetic(&p, -4))

	p.CentralMeridian = 3
	assert.InDelta(t, 3.5-2*math.Pi, coreToGeodetic(&p, 0.5), 1e-15)
}

func TestHashCanonicalizesZero(t *testing.T) {
	a := newHasher("k").float(0).sum()
	b := newHasher("k").float(math.Copysign(0, -1)).sum()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, newHasher("other").float(0).sum())
}
