package coordproj

import "math"

// seriesOrder is the fixed order of the Gauss and Krueger trig series.
const seriesOrder = 6

type series [seriesOrder]float64

// log1py computes log(1+x) accurately for small x.
func log1py(x float64) float64 {
	// y = 1 + z exactly and z approximates x, so log(y)/z is close to the
	// true log(1+x)/x.
	y := 1 + x
	z := y - 1
	if z == 0 {
		return x
	}
	return x * math.Log(y) / z
}

// asinhy computes asinh(x) accurately, with exact odd parity.
func asinhy(x float64) float64 {
	y := math.Abs(x)
	y = log1py(y * (1 + y/(math.Hypot(1, y)+1)))
	if x < 0 {
		return -y
	}
	return y
}

// gatg evaluates the latitude series p at b by Clenshaw summation over
// cos(2b) and returns b + h*sin(2b).
func gatg(p *series, b float64) float64 {
	var h, h2 float64
	cos2B := 2 * math.Cos(2*b)

	i := len(p) - 1
	h1 := p[i]
	for i > 0 {
		i--
		h = -h2 + cos2B*h1 + p[i]
		h2 = h1
		h1 = h
	}
	return b + h*math.Sin(2*b)
}

// clens is the real Clenshaw summation of a at argR.
func clens(a *series, argR float64) float64 {
	r := 2 * math.Cos(argR)

	i := len(a) - 1
	hr := a[i]
	var hr1, hr2 float64
	for i > 0 {
		i--
		hr2 = hr1
		hr1 = hr
		hr = -hr2 + r*hr1 + a[i]
	}
	return math.Sin(argR) * hr
}

// clenS is the Clenshaw summation of a at the complex argument
// argR + i*argI. It returns the real and imaginary parts of the sum.
func clenS(a *series, argR, argI float64) (re, im float64) {
	sinR := math.Sin(argR)
	cosR := math.Cos(argR)
	sinhI := math.Sinh(argI)
	coshI := math.Cosh(argI)
	r := 2 * cosR * coshI
	i := -2 * sinR * sinhI

	k := len(a) - 1
	hr := a[k]
	var hr1, hr2, hi, hi1, hi2 float64
	for k > 0 {
		k--
		hr2 = hr1
		hi2 = hi1
		hr1 = hr
		hi1 = hi
		hr = -hr2 + r*hr1 - i*hi1 + a[k]
		hi = -hi2 + i*hr1 + r*hi1
	}

	r = sinR * coshI
	i = cosR * sinhI
	return r*hr - i*hi, r*hi + i*hr
}
