package coordproj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestETMercReferenceConstants(t *testing.T) {
	p, err := NewExtendedTransverseMercator(GRS80, Parameters{ScaleFactor: 1})
	require.NoError(t, err)

	// Rectifying radius of GRS80 is 6367449.1458 m.
	assert.InEpsilon(t, 0.9983242984230422, p.qn, 1e-12)
	assert.InDelta(t, 6367449.1458, p.qn*GRS80.A, 1e-4)
	assert.Equal(t, 0.0, p.zb)

	want := series{
		8.377318247285513e-04,
		7.608527848149473e-07,
		1.1976455209422669e-09,
		2.4291706548410117e-12,
		5.711757817902031e-15,
		1.4911177751870794e-17,
	}
	for i := range want {
		assert.InEpsilon(t, want[i], p.gtu[i], 1e-12, "gtu[%d]", i)
	}
}

func TestETMercOriginLatitude(t *testing.T) {
	p, err := NewExtendedTransverseMercator(GRS80, Parameters{
		OriginLatitude: 49 * math.Pi / 180,
		ScaleFactor:    1,
	})
	require.NoError(t, err)

	// Zb is minus the meridian arc from the equator to the origin latitude.
	assert.InDelta(t, -5429627.632129, p.zb*GRS80.A, 1e-5)

	// The origin maps to the false origin.
	x, y, err := p.Forward(0, 49*math.Pi/180)
	require.NoError(t, err)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-8)
}

func TestETMercCloneIndependence(t *testing.T) {
	p, err := NewExtendedTransverseMercator(WGS84, Parameters{ScaleFactor: 0.9996})
	require.NoError(t, err)
	orig := p.cbg

	c := p.Clone()
	c.cbg[0] = 42
	c.gtu[5] = -1
	assert.Equal(t, orig, p.cbg)
	assert.NotEqual(t, 42.0, p.cbg[0])
	assert.NotEqual(t, -1.0, p.gtu[5])

	require.NoError(t, c.Initialize(GRS80, Parameters{ScaleFactor: 1}))
	assert.Equal(t, orig, p.cbg)
	assert.NotEqual(t, p.qn, c.qn)
}

func TestETMercSphereLeavesUninitialized(t *testing.T) {
	p, err := NewExtendedTransverseMercator(WGS84, Parameters{ScaleFactor: 1})
	require.NoError(t, err)

	sphere, err := NewSphere(6378137)
	require.NoError(t, err)
	require.ErrorIs(t, p.Initialize(sphere, Parameters{ScaleFactor: 1}), ErrEllipsoidRequired)

	assert.False(t, p.initialized)
	assert.Equal(t, 0.0, p.qn)
	assert.Equal(t, series{}, p.cbg)
}
