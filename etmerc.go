package coordproj

import (
	"math"

	"github.com/golang/geo/s2"
	"go.uber.org/zap"
)

const etmercName = "Extended Transverse Mercator"

// maxNormalizedEasting bounds |Ce|, about 150 degrees from the central
// meridian on the conformal sphere.
const maxNormalizedEasting = 2.623395162778

// ExtendedTransverseMercator is the Poder/Engsager transverse Mercator
// projection, accurate far from the central meridian. Points more than
// about 150 degrees from the central meridian map to (+Inf, +Inf) in both
// directions.
//
// The zero value is uninitialized; use NewExtendedTransverseMercator or
// Initialize. Copies made by Clone or plain assignment own their
// coefficient series.
type ExtendedTransverseMercator struct {
	ellipsoid   Ellipsoid
	params      Parameters
	initialized bool

	qn  float64 // Meridian quadrant, scaled to the projection
	zb  float64 // Origin northing offset
	cgb series  // Gauss -> geodetic latitude
	cbg series  // Geodetic -> Gauss latitude
	utg series  // Transverse Mercator -> geodetic
	gtu series  // Geodetic -> transverse Mercator

	logger *zap.Logger
}

var _ Projection = (*ExtendedTransverseMercator)(nil)

// NewExtendedTransverseMercator constructs an initialized projection. The
// ellipsoid must not be a sphere.
func NewExtendedTransverseMercator(ellipsoid Ellipsoid, params Parameters,
	opts ...Option) (*ExtendedTransverseMercator, error) {
	o := buildOptions(opts)
	t := &ExtendedTransverseMercator{logger: o.logger}
	if err := t.Initialize(ellipsoid, params); err != nil {
		return nil, err
	}
	return t, nil
}

// utmParameters returns the projection parameters of a UTM zone.
func utmParameters(zone int, south bool) (Parameters, error) {
	if zone < 1 || zone > 60 {
		return Parameters{}, invalidParameterf("zone %d out of range", zone)
	}
	p := Parameters{
		CentralMeridian: (float64(zone-1)+.5)*math.Pi/30 - math.Pi,
		ScaleFactor:     0.9996,
		FalseEasting:    500000,
	}
	if south {
		p.FalseNorthing = 10000000
	}
	return p, nil
}

// SetUTMZone re-initializes the projection for the given UTM zone (1 to 60)
// keeping the current ellipsoid.
func (t *ExtendedTransverseMercator) SetUTMZone(zone int, south bool) error {
	if !t.initialized {
		return ErrNotInitialized
	}
	params, err := utmParameters(zone, south)
	if err != nil {
		return err
	}
	return t.Initialize(t.ellipsoid, params)
}

// Initialize recomputes the coefficient series and origin constants. On
// error, including ErrEllipsoidRequired for a sphere, the projection is left
// uninitialized.
func (t *ExtendedTransverseMercator) Initialize(ellipsoid Ellipsoid, params Parameters) error {
	logger := t.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	*t = ExtendedTransverseMercator{logger: logger}

	ellipsoid, err := ellipsoid.derived()
	if err == nil {
		err = params.validateOffsets()
	}
	if err == nil {
		switch {
		case ellipsoid.Spherical:
			err = ErrEllipsoidRequired
		case !(params.ScaleFactor > 0) || math.IsInf(params.ScaleFactor, 0):
			err = invalidParameterf("scale factor %g out of range", params.ScaleFactor)
		case !(params.OriginLatitude >= -math.Pi/2 && params.OriginLatitude <= math.Pi/2):
			err = invalidParameterf("origin latitude %g out of range", params.OriginLatitude)
		}
	}
	if err != nil {
		logger.Debug("extended transverse mercator initialization failed", zap.Error(err))
		return err
	}

	t.ellipsoid = ellipsoid
	t.params = params

	es := ellipsoid.Es
	f := es / (1 + math.Sqrt(1-es)) // flattening
	n := f / (2 - f)                // third flattening
	np := n

	// Geodetic <-> Gaussian latitude, Engsager and Poder ICC2007.
	t.cgb[0] = n * (2 + n*(-2/3.0+n*(-2+n*(116/45.0+n*(26/45.0+
		n*(-2854/675.0))))))
	t.cbg[0] = n * (-2 + n*(2/3.0+n*(4/3.0+n*(-82/45.0+n*(32/45.0+
		n*(4642/4725.0))))))
	np *= n
	t.cgb[1] = np * (7/3.0 + n*(-8/5.0+n*(-227/45.0+n*(2704/315.0+
		n*(2323/945.0)))))
	t.cbg[1] = np * (5/3.0 + n*(-16/15.0+n*(-13/9.0+n*(904/315.0+
		n*(-1522/945.0)))))
	np *= n
	t.cgb[2] = np * (56/15.0 + n*(-136/35.0+n*(-1262/105.0+
		n*(73814/2835.0))))
	t.cbg[2] = np * (-26/15.0 + n*(34/21.0+n*(8/5.0+
		n*(-12686/2835.0))))
	np *= n
	t.cgb[3] = np * (4279/630.0 + n*(-332/35.0+n*(-399572/14175.0)))
	t.cbg[3] = np * (1237/630.0 + n*(-12/5.0+n*(-24832/14175.0)))
	np *= n
	t.cgb[4] = np * (4174/315.0 + n*(-144838/6237.0))
	t.cbg[4] = np * (-734/315.0 + n*(109598/31185.0))
	np *= n
	t.cgb[5] = np * (601676 / 22275.0)
	t.cbg[5] = np * (444337 / 155925.0)

	// Normalized meridian quadrant, Krueger and Wollstein.
	np = n * n
	t.qn = params.ScaleFactor / (1 + n) * (1 + np*(1/4.0+np*(1/64.0+np/256.0)))

	// Ellipsoidal <-> spherical northing and easting.
	t.utg[0] = n * (-0.5 + n*(2/3.0+n*(-37/96.0+n*(1/360.0+
		n*(81/512.0+n*(-96199/604800.0))))))
	t.gtu[0] = n * (0.5 + n*(-2/3.0+n*(5/16.0+n*(41/180.0+
		n*(-127/288.0+n*(7891/37800.0))))))
	t.utg[1] = np * (-1/48.0 + n*(-1/15.0+n*(437/1440.0+n*(-46/105.0+
		n*(1118711/3870720.0)))))
	t.gtu[1] = np * (13/48.0 + n*(-3/5.0+n*(557/1440.0+n*(281/630.0+
		n*(-1983433/1935360.0)))))
	np *= n
	t.utg[2] = np * (-17/480.0 + n*(37/840.0+n*(209/4480.0+
		n*(-5569/90720.0))))
	t.gtu[2] = np * (61/240.0 + n*(-103/140.0+n*(15061/26880.0+
		n*(167603/181440.0))))
	np *= n
	t.utg[3] = np * (-4397/161280.0 + n*(11/504.0+n*(830251/7257600.0)))
	t.gtu[3] = np * (49561/161280.0 + n*(-179/168.0+n*(6601661/7257600.0)))
	np *= n
	t.utg[4] = np * (-4583/161280.0 + n*(108847/3991680.0))
	t.gtu[4] = np * (34729/80640.0 + n*(-3418889/1995840.0))
	np *= n
	t.utg[5] = np * (-20648693 / 638668800.0)
	t.gtu[5] = np * (212378941 / 319334400.0)

	// Origin northing minus true northing at the origin latitude.
	z := gatg(&t.cbg, params.OriginLatitude)
	t.zb = -t.qn * (z + clens(&t.gtu, 2*z))
	t.initialized = true

	logger.Debug("extended transverse mercator initialized",
		zap.Float64("central_meridian", params.CentralMeridian),
		zap.Float64("qn", t.qn),
		zap.Float64("zb", t.zb))
	return nil
}

// Clone returns an independent copy.
func (t *ExtendedTransverseMercator) Clone() *ExtendedTransverseMercator {
	c := *t
	return &c
}

// Forward projects geodetic longitude and latitude in radians.
func (t *ExtendedTransverseMercator) Forward(lon, lat float64) (x, y float64, err error) {
	if !t.initialized {
		return 0, 0, ErrNotInitialized
	}
	x, y = t.forward(geodeticToCore(&t.params, lon), lat)
	if !finite(x) {
		return x, y, nil
	}
	x, y = coreToMap(&t.ellipsoid, &t.params, x, y)
	return x, y, nil
}

func (t *ExtendedTransverseMercator) forward(lam, phi float64) (float64, float64) {
	// Ellipsoidal latitude -> Gaussian latitude.
	cn := gatg(&t.cbg, phi)
	ce := lam

	// Gaussian -> complementary spherical latitude.
	sinCn := math.Sin(cn)
	cosCn := math.Cos(cn)
	sinCe := math.Sin(ce)
	cosCe := math.Cos(ce)
	cn = math.Atan2(sinCn, cosCe*cosCn)
	ce = math.Atan2(sinCe*cosCn, math.Hypot(sinCn, cosCn*cosCe))

	// Spherical -> ellipsoidal normalized northing and easting.
	ce = asinhy(math.Tan(ce))
	dCn, dCe := clenS(&t.gtu, 2*cn, 2*ce)
	cn += dCn
	ce += dCe
	if !(math.Abs(ce) <= maxNormalizedEasting) {
		return math.Inf(1), math.Inf(1)
	}
	return t.qn * ce, t.qn*cn + t.zb
}

// Inverse unprojects an easting and northing.
func (t *ExtendedTransverseMercator) Inverse(x, y float64) (lon, lat float64, err error) {
	if !t.initialized {
		return 0, 0, ErrNotInitialized
	}
	xn, yn := mapToCore(&t.ellipsoid, &t.params, x, y)
	lam, phi := t.inverse(xn, yn)
	return coreToGeodetic(&t.params, lam), phi, nil
}

func (t *ExtendedTransverseMercator) inverse(x, y float64) (float64, float64) {
	cn := (y - t.zb) / t.qn
	ce := x / t.qn
	if !(math.Abs(ce) <= maxNormalizedEasting) {
		return math.Inf(1), math.Inf(1)
	}

	// Normalized northing and easting -> complementary spherical.
	dCn, dCe := clenS(&t.utg, 2*cn, 2*ce)
	cn += dCn
	ce += dCe
	ce = math.Atan(math.Sinh(ce))

	// Complementary spherical -> Gaussian latitude and longitude.
	sinCn := math.Sin(cn)
	cosCn := math.Cos(cn)
	sinCe := math.Sin(ce)
	cosCe := math.Cos(ce)
	ce = math.Atan2(sinCe, cosCe*cosCn)
	cn = math.Atan2(sinCn*cosCe, math.Hypot(sinCe, cosCe*cosCn))

	// Gaussian -> ellipsoidal latitude.
	return ce, gatg(&t.cgb, cn)
}

// ConvertFromGeodetic projects an s2.LatLng.
func (t *ExtendedTransverseMercator) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) (MapCoords, error) {
	return fromGeodetic(t, geodeticCoordinates)
}

// ConvertToGeodetic unprojects map coordinates to an s2.LatLng.
func (t *ExtendedTransverseMercator) ConvertToGeodetic(mapCoordinates MapCoords) (s2.LatLng, error) {
	return toGeodetic(t, mapCoordinates)
}

// Name returns "Extended Transverse Mercator".
func (t *ExtendedTransverseMercator) Name() string { return etmercName }

// String returns the projection name.
func (t *ExtendedTransverseMercator) String() string { return etmercName }

// HasInverse is always true.
func (t *ExtendedTransverseMercator) HasInverse() bool { return true }

// IsEqualArea is always false.
func (t *ExtendedTransverseMercator) IsEqualArea() bool { return false }

// Equal reports whether other is an extended transverse Mercator projection
// with the same ellipsoid and projection parameters.
func (t *ExtendedTransverseMercator) Equal(other Projection) bool {
	o, ok := other.(*ExtendedTransverseMercator)
	if !ok || o == nil {
		return false
	}
	if t == o {
		return true
	}
	return t.ellipsoid.A == o.ellipsoid.A && t.ellipsoid.Es == o.ellipsoid.Es &&
		t.params == o.params
}

// Hash is consistent with Equal.
func (t *ExtendedTransverseMercator) Hash() uint64 {
	return newHasher(etmercName).base(&t.ellipsoid, &t.params).sum()
}
