package coordproj

import "math"

// Ellipsoid holds the earth model parameters read by the projections.
type Ellipsoid struct {
	A         float64 // Semi-major axis
	Es        float64 // Eccentricity squared
	OneEs     float64 // 1 - Es
	ROneEs    float64 // 1 / (1 - Es)
	Spherical bool    // Es == 0
}

// NewEllipsoid constructs an Ellipsoid from its semi-major axis and
// flattening. A flattening of zero yields a sphere.
func NewEllipsoid(semiMajorAxis, flattening float64) (Ellipsoid, error) {
	if !(semiMajorAxis > 0) || math.IsInf(semiMajorAxis, 0) {
		return Ellipsoid{}, invalidParameterf("semi-major axis must be greater than zero")
	}
	if !(flattening >= 0 && flattening < 1) {
		return Ellipsoid{}, invalidParameterf("flattening %g out of range", flattening)
	}
	return Ellipsoid{A: semiMajorAxis, Es: 2*flattening - flattening*flattening}.derived()
}

// NewSphere constructs a spherical earth model of the given radius.
func NewSphere(radius float64) (Ellipsoid, error) {
	return NewEllipsoid(radius, 0)
}

// derived validates A and Es and recomputes OneEs, ROneEs and Spherical
// from Es, so a hand-built Ellipsoid is read the same way as one returned
// by NewEllipsoid.
func (e Ellipsoid) derived() (Ellipsoid, error) {
	if !(e.A > 0) || math.IsInf(e.A, 0) {
		return Ellipsoid{}, invalidParameterf("semi-major axis must be greater than zero")
	}
	if !(e.Es >= 0 && e.Es < 1) {
		return Ellipsoid{}, invalidParameterf("eccentricity squared %g out of range", e.Es)
	}
	return Ellipsoid{
		A:         e.A,
		Es:        e.Es,
		OneEs:     1 - e.Es,
		ROneEs:    1 / (1 - e.Es),
		Spherical: e.Es == 0,
	}, nil
}
