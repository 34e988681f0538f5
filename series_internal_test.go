package coordproj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog1py(t *testing.T) {
	// Below half an ulp of 1, 1+x rounds to 1 and x is returned unchanged.
	assert.Equal(t, 1e-20, log1py(1e-20))
	assert.Equal(t, 0.0, log1py(0))

	for _, x := range []float64{1e-12, 1e-8, 1e-3, 0.5, 1, 10, 1e6} {
		assert.InEpsilon(t, math.Log1p(x), log1py(x), 1e-15, "x=%g", x)
	}
}

func TestAsinhy(t *testing.T) {
	for _, x := range []float64{1e-300, 1e-9, 0.25, 1, 3.5, 100, 1e10} {
		assert.InEpsilon(t, math.Asinh(x), asinhy(x), 1e-14, "x=%g", x)
		assert.Equal(t, -asinhy(x), asinhy(-x), "odd parity at x=%g", x)
	}
	assert.Equal(t, 0.0, asinhy(0))
}

func TestClensZeroArgument(t *testing.T) {
	s := series{0.3, -0.2, 0.1, 1e-3, -1e-5, 1e-7}
	assert.Equal(t, 0.0, clens(&s, 0))
	assert.Equal(t, 0.0, gatg(&s, 0))

	single := series{1}
	assert.Equal(t, 0.0, clens(&single, 0))
}

func TestClensMatchesDirectSum(t *testing.T) {
	s := series{0.3, -0.2, 0.1, 1e-3, -1e-5, 1e-7}
	for _, arg := range []float64{-2.5, -1, 0.1, 0.7, 1.9, 3} {
		want := 0.0
		for k, c := range s {
			want += c * math.Sin(float64(k+1)*arg)
		}
		assert.InDelta(t, want, clens(&s, arg), 1e-15, "arg=%g", arg)
	}
}

func TestClenSComplex(t *testing.T) {
	s := series{0.3, -0.2, 0.1, 1e-3, -1e-5, 1e-7}

	// On the real axis the complex sum reduces to the real one.
	for _, arg := range []float64{-1.2, 0.4, 2.2} {
		re, im := clenS(&s, arg, 0)
		assert.InDelta(t, clens(&s, arg), re, 1e-17)
		assert.InDelta(t, 0, im, 1e-17)
	}

	// sum c_k sin(k z) for complex z.
	argR, argI := 0.6, 0.35
	var wantRe, wantIm float64
	for k, c := range s {
		kr := float64(k+1) * argR
		ki := float64(k+1) * argI
		wantRe += c * math.Sin(kr) * math.Cosh(ki)
		wantIm += c * math.Cos(kr) * math.Sinh(ki)
	}
	re, im := clenS(&s, argR, argI)
	assert.InDelta(t, wantRe, re, 1e-15)
	assert.InDelta(t, wantIm, im, 1e-15)
}

func TestGaussianLatitudeRoundTrip(t *testing.T) {
	p, err := NewExtendedTransverseMercator(WGS84, Parameters{ScaleFactor: 1})
	require.NoError(t, err)

	for deg := -90.0; deg <= 90; deg += 2.5 {
		b := deg * math.Pi / 180
		g := gatg(&p.cbg, b)
		assert.InDelta(t, b, gatg(&p.cgb, g), 1e-14, "lat=%g", deg)
	}
}
