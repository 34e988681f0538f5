package coordproj

import (
	"math"

	"github.com/golang/geo/s2"
	"go.uber.org/zap"
)

// DefaultHeightOfOrbit is the height of a geostationary orbit above the
// equator, in meters.
const DefaultHeightOfOrbit = 35785831.0

const geostationaryName = "Geostationary Satellite"

// Geostationary is the view of the earth from a geostationary satellite
// above the central meridian. Points outside the visible disk project to
// (NaN, NaN).
//
// The zero value is uninitialized; use NewGeostationary or Initialize.
type Geostationary struct {
	ellipsoid     Ellipsoid
	params        Parameters
	heightOfOrbit float64
	initialized   bool

	radiusP     float64 // sqrt(1 - es)
	radiusP2    float64 // 1 - es
	radiusPInv2 float64 // 1 / (1 - es)
	radiusG     float64 // 1 + radiusG1
	radiusG1    float64 // heightOfOrbit / a
	c           float64 // radiusG^2 - 1

	logger *zap.Logger
}

var _ Projection = (*Geostationary)(nil)

// NewGeostationary constructs an initialized geostationary projection.
func NewGeostationary(ellipsoid Ellipsoid, params Parameters, heightOfOrbit float64,
	opts ...Option) (*Geostationary, error) {
	o := buildOptions(opts)
	g := &Geostationary{logger: o.logger}
	if err := g.Initialize(ellipsoid, params, heightOfOrbit); err != nil {
		return nil, err
	}
	return g, nil
}

// Initialize recomputes all derived state. On error the projection is left
// uninitialized.
func (g *Geostationary) Initialize(ellipsoid Ellipsoid, params Parameters, heightOfOrbit float64) error {
	logger := g.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	*g = Geostationary{logger: logger}

	ellipsoid, err := ellipsoid.derived()
	if err == nil {
		err = params.validateOffsets()
	}
	if err == nil && (!(heightOfOrbit > 0) || math.IsInf(heightOfOrbit, 0)) {
		err = invalidParameterf("height of orbit %g out of range", heightOfOrbit)
	}
	if err != nil {
		logger.Debug("geostationary initialization failed", zap.Error(err))
		return err
	}

	g.ellipsoid = ellipsoid
	g.params = params
	g.heightOfOrbit = heightOfOrbit

	g.radiusG1 = heightOfOrbit / ellipsoid.A
	g.radiusG = 1 + g.radiusG1
	g.c = g.radiusG*g.radiusG - 1
	if ellipsoid.Spherical {
		g.radiusP, g.radiusP2, g.radiusPInv2 = 1, 1, 1
	} else {
		g.radiusP = math.Sqrt(ellipsoid.OneEs)
		g.radiusP2 = ellipsoid.OneEs
		g.radiusPInv2 = ellipsoid.ROneEs
	}
	g.initialized = true

	logger.Debug("geostationary initialized",
		zap.Float64("height_of_orbit", heightOfOrbit),
		zap.Float64("radius_g", g.radiusG),
		zap.Float64("c", g.c),
		zap.Bool("spherical", ellipsoid.Spherical))
	return nil
}

// HeightOfOrbit returns the satellite height above the semi-major axis.
func (g *Geostationary) HeightOfOrbit() float64 {
	return g.heightOfOrbit
}

// SetHeightOfOrbit changes the satellite height and re-initializes.
func (g *Geostationary) SetHeightOfOrbit(heightOfOrbit float64) error {
	if !g.initialized {
		return ErrNotInitialized
	}
	return g.Initialize(g.ellipsoid, g.params, heightOfOrbit)
}

// Clone returns an independent copy.
func (g *Geostationary) Clone() *Geostationary {
	c := *g
	return &c
}

// Forward projects geodetic longitude and latitude in radians.
func (g *Geostationary) Forward(lon, lat float64) (x, y float64, err error) {
	if !g.initialized {
		return 0, 0, ErrNotInitialized
	}
	lam := geodeticToCore(&g.params, lon)
	if g.ellipsoid.Spherical {
		x, y = g.forwardSpherical(lam, lat)
	} else {
		x, y = g.forwardEllipsoidal(lam, lat)
	}
	x, y = coreToMap(&g.ellipsoid, &g.params, x, y)
	return x, y, nil
}

func (g *Geostationary) forwardSpherical(lam, phi float64) (float64, float64) {
	// Vector from the earth center to the point (lam, phi).
	tmp := math.Cos(phi)
	vx := math.Cos(lam) * tmp
	vy := math.Sin(lam) * tmp
	vz := math.Sin(phi)

	// Far side of the visible disk.
	if (g.radiusG-vx)*vx-vy*vy-vz*vz < 0 {
		return math.NaN(), math.NaN()
	}

	tmp = g.radiusG - vx
	return g.radiusG1 * math.Atan(vy/tmp), g.radiusG1 * math.Atan(vz/math.Hypot(vy, tmp))
}

func (g *Geostationary) forwardEllipsoidal(lam, phi float64) (float64, float64) {
	// Geocentric latitude.
	phi = math.Atan(g.radiusP2 * math.Tan(phi))

	r := g.radiusP / math.Hypot(g.radiusP*math.Cos(phi), math.Sin(phi))
	vx := r * math.Cos(lam) * math.Cos(phi)
	vy := r * math.Sin(lam) * math.Cos(phi)
	vz := r * math.Sin(phi)

	if (g.radiusG-vx)*vx-vy*vy-vz*vz*g.radiusPInv2 < 0 {
		return math.NaN(), math.NaN()
	}

	tmp := g.radiusG - vx
	return g.radiusG1 * math.Atan(vy/tmp), g.radiusG1 * math.Atan(vz/math.Hypot(vy, tmp))
}

// Inverse unprojects an easting and northing. A view ray that misses the
// earth model returns a *DomainError.
func (g *Geostationary) Inverse(x, y float64) (lon, lat float64, err error) {
	if !g.initialized {
		return 0, 0, ErrNotInitialized
	}
	xn, yn := mapToCore(&g.ellipsoid, &g.params, x, y)
	var lam, phi float64
	var ok bool
	if g.ellipsoid.Spherical {
		lam, phi, ok = g.inverseSpherical(xn, yn)
	} else {
		lam, phi, ok = g.inverseEllipsoidal(xn, yn)
	}
	if !ok {
		return 0, 0, &DomainError{
			Projection: geostationaryName,
			X:          x,
			Y:          y,
			Reason:     "view ray does not intersect the earth",
		}
	}
	return coreToGeodetic(&g.params, lam), phi, nil
}

func (g *Geostationary) inverseSpherical(x, y float64) (lam, phi float64, ok bool) {
	// Direction of the view ray from the satellite.
	vx := -1.0
	vy := math.Tan(x / (g.radiusG - 1))
	vz := math.Tan(y/(g.radiusG-1)) * math.Sqrt(1+vy*vy)

	a := vy*vy + vz*vz + vx*vx
	b := 2 * g.radiusG * vx
	det := b*b - 4*a*g.c
	if det < 0 {
		return 0, 0, false
	}

	// Nearer of the two intersections.
	k := (-b - math.Sqrt(det)) / (2 * a)
	vx = g.radiusG + k*vx
	vy *= k
	vz *= k

	lam = math.Atan2(vy, vx)
	phi = math.Atan(vz * math.Cos(lam) / vx)
	return lam, phi, true
}

func (g *Geostationary) inverseEllipsoidal(x, y float64) (lam, phi float64, ok bool) {
	vx := -1.0
	vy := math.Tan(x / g.radiusG1)
	vz := math.Tan(y/g.radiusG1) * math.Hypot(1, vy)

	a := vz / g.radiusP
	a = vy*vy + a*a + vx*vx
	b := 2 * g.radiusG * vx
	det := b*b - 4*a*g.c
	if det < 0 {
		return 0, 0, false
	}

	k := (-b - math.Sqrt(det)) / (2 * a)
	vx = g.radiusG + k*vx
	vy *= k
	vz *= k

	lam = math.Atan2(vy, vx)
	phi = math.Atan(vz * math.Cos(lam) / vx)
	// Geocentric back to geodetic latitude.
	phi = math.Atan(g.radiusPInv2 * math.Tan(phi))
	return lam, phi, true
}

// ConvertFromGeodetic projects an s2.LatLng.
func (g *Geostationary) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error) {
	return fromGeodetic(g, geodeticCoordinates)
}

// ConvertToGeodetic unprojects map coordinates to an s2.LatLng.
func (g *Geostationary) ConvertToGeodetic(mapCoordinates MapCoords) (s2.LatLng, error) {
	return toGeodetic(g, mapCoordinates)
}

// Name returns "Geostationary Satellite".
func (g *Geostationary) Name() string { return geostationaryName }

// String returns the projection name.
func (g *Geostationary) String() string { return geostationaryName }

// HasInverse is always true.
func (g *Geostationary) HasInverse() bool { return true }

// IsEqualArea is always false.
func (g *Geostationary) IsEqualArea() bool { return false }

// Equal reports whether other is a geostationary projection with the same
// height of orbit, ellipsoid and projection parameters.
func (g *Geostationary) Equal(other Projection) bool {
	o, ok := other.(*Geostationary)
	if !ok || o == nil {
		return false
	}
	if g == o {
		return true
	}
	return g.heightOfOrbit == o.heightOfOrbit &&
		g.ellipsoid.A == o.ellipsoid.A && g.ellipsoid.Es == o.ellipsoid.Es &&
		g.params == o.params
}

// Hash is consistent with Equal.
func (g *Geostationary) Hash() uint64 {
	return newHasher(geostationaryName).base(&g.ellipsoid, &g.params).float(g.heightOfOrbit).sum()
}
