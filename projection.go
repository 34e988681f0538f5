// Package coordproj implements forward (geodetic to projected) and inverse
// (projected to geodetic) mappings for the geostationary satellite view
// projection and the extended transverse Mercator projection.
//
// Angles are in radians. Projected coordinates are in the units of the
// ellipsoid's semi-major axis.
package coordproj

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"go.uber.org/zap"
)

// Projection is the capability shared by every projection in this package.
//
// Forward and Inverse may be called concurrently on one instance.
// Initialize must not run concurrently with either of them.
type Projection interface {
	Name() string
	// Forward maps geodetic longitude and latitude to easting and northing.
	// A point the projection cannot represent yields a non-finite
	// coordinate and a nil error.
	Forward(lon, lat float64) (x, y float64, err error)
	// Inverse maps easting and northing back to longitude and latitude.
	Inverse(x, y float64) (lon, lat float64, err error)
	HasInverse() bool
	IsEqualArea() bool
	Equal(other Projection) bool
	Hash() uint64

	ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error)
	ConvertToGeodetic(mapCoordinates MapCoords) (s2.LatLng, error)
}

// MapCoords is a projected coordinate.
type MapCoords struct {
	Easting  float64
	Northing float64
}

// Parameters is the projection parameter block shared by all projections.
type Parameters struct {
	CentralMeridian float64 // Longitude of origin in radians
	OriginLatitude  float64 // Latitude of origin in radians
	ScaleFactor     float64
	FalseEasting    float64
	FalseNorthing   float64
}

// Option configures the ambient collaborators of a projection.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used to report initialization.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// normalizeLongitude wraps a finite angle into [-Pi, Pi].
func normalizeLongitude(angle float64) float64 {
	if angle < -math.Pi || angle > math.Pi {
		angle = math.Remainder(angle, 2*math.Pi)
	}
	return angle
}

// validateOffsets rejects a non-finite central meridian or false origin.
func (p *Parameters) validateOffsets() error {
	switch {
	case !finite(p.CentralMeridian):
		return invalidParameterf("central meridian %g out of range", p.CentralMeridian)
	case !finite(p.FalseEasting) || !finite(p.FalseNorthing):
		return invalidParameterf("false origin (%g, %g) out of range", p.FalseEasting, p.FalseNorthing)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// geodeticToCore reduces a geodetic longitude by the central meridian.
func geodeticToCore(p *Parameters, lon float64) float64 {
	if !finite(lon) {
		return lon
	}
	return normalizeLongitude(lon - p.CentralMeridian)
}

// coreToMap scales a normalized projected coordinate by the semi-major axis
// and applies the false origin.
func coreToMap(e *Ellipsoid, p *Parameters, x, y float64) (float64, float64) {
	return e.A*x + p.FalseEasting, e.A*y + p.FalseNorthing
}

func mapToCore(e *Ellipsoid, p *Parameters, x, y float64) (float64, float64) {
	return (x - p.FalseEasting) / e.A, (y - p.FalseNorthing) / e.A
}

// coreToGeodetic clamps a core longitude into [-Pi, Pi] and restores the
// central meridian.
func coreToGeodetic(p *Parameters, lon float64) float64 {
	if !finite(lon) {
		return lon
	}
	if lon < -math.Pi {
		lon = -math.Pi
	} else if lon > math.Pi {
		lon = math.Pi
	}
	return normalizeLongitude(lon + p.CentralMeridian)
}

func fromGeodetic(p Projection, geodeticCoordinates s2.LatLng) (MapCoords, error) {
	x, y, err := p.Forward(geodeticCoordinates.Lng.Radians(), geodeticCoordinates.Lat.Radians())
	if err != nil {
		return MapCoords{}, err
	}
	return MapCoords{Easting: x, Northing: y}, nil
}

func toGeodetic(p Projection, mapCoordinates MapCoords) (s2.LatLng, error) {
	lon, lat, err := p.Inverse(mapCoordinates.Easting, mapCoordinates.Northing)
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLng{Lat: s1.Angle(lat), Lng: s1.Angle(lon)}, nil
}

// hasher accumulates the bits of float64 values into an xxhash digest.
// Zeros are canonicalized so that values equal under == hash identically.
type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newHasher(kind string) *hasher {
	h := &hasher{d: xxhash.New()}
	_, _ = h.d.WriteString(kind)
	return h
}

func (h *hasher) float(v float64) *hasher {
	if v == 0 {
		v = 0
	}
	binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(v))
	_, _ = h.d.Write(h.buf[:])
	return h
}

func (h *hasher) base(e *Ellipsoid, p *Parameters) *hasher {
	return h.float(e.A).float(e.Es).
		float(p.CentralMeridian).float(p.OriginLatitude).float(p.ScaleFactor).
		float(p.FalseEasting).float(p.FalseNorthing)
}

func (h *hasher) sum() uint64 {
	return h.d.Sum64()
}
