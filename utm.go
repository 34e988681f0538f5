package coordproj

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"go.uber.org/zap"
)

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

// UTMCoord is a UTM coordinate
type UTMCoord struct {
	Zone       int
	Hemisphere Hemisphere
	Easting    float64
	Northing   float64
}

// UTM is a UTM coordinate converter backed by one extended transverse
// Mercator projection per zone.
type UTM struct {
	ellipsoid   Ellipsoid
	utmOverride int
	zones       [61]*ExtendedTransverseMercator
	logger      *zap.Logger
}

const epsilonRadians = 1.75e-7 // approx 1.0e-5 degrees (~1 meter) in radians

const (
	utmMinLat      = -80.5 * s1.Degree
	utmMaxLat      = 84.5 * s1.Degree
	utmMinEasting  = 100000.0
	utmMaxEasting  = 900000.0
	utmMinNorthing = 0.0
	utmMaxNorthing = 10000000.0
	utmSouthOffset = 10000000.0
)

// NewUTM constructs a new UTM converter for the WGS84 ellipsoid
func NewUTM(opts ...Option) (*UTM, error) {
	return NewUTM2(WGS84, 0, opts...)
}

// NewUTM2 constructs a UTM converter for the given ellipsoid. override is a
// UTM zone used in place of the computed zone when it is within one zone of
// it; 0 indicates no override.
func NewUTM2(ellipsoid Ellipsoid, override int, opts ...Option) (*UTM, error) {
	if override < 0 || override > 60 {
		return nil, invalidParameterf("zone override %d out of range", override)
	}
	o := buildOptions(opts)
	u := &UTM{
		ellipsoid:   ellipsoid,
		utmOverride: override,
		logger:      o.logger,
	}
	for zone := 1; zone <= 60; zone++ {
		params, err := utmParameters(zone, false)
		if err != nil {
			return nil, err
		}
		u.zones[zone], err = NewExtendedTransverseMercator(ellipsoid, params, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "zone %d", zone)
		}
	}
	return u, nil
}

// Ellipsoid returns the ellipsoid of every zone projection.
func (u *UTM) Ellipsoid() Ellipsoid {
	return u.ellipsoid
}

// Projection returns a copy of the northern hemisphere projection of zone.
// Changes to the copy do not affect the converter.
func (u *UTM) Projection(zone int) (*ExtendedTransverseMercator, error) {
	if zone < 1 || zone > 60 {
		return nil, invalidParameterf("zone %d out of range", zone)
	}
	return u.zones[zone].Clone(), nil
}

// zoneFor computes the zone of a point. longitude is in [0, 2*Pi).
func zoneFor(longitude float64) int {
	var zone int
	if longitude < math.Pi {
		zone = int(31 + ((longitude+1.0e-10)*180/math.Pi)/6)
	} else {
		zone = int(((longitude+1.0e-10)*180/math.Pi)/6 - 29)
	}
	if zone > 60 {
		zone = 1
	}
	return zone
}

// specialZone applies the southern Norway and Svalbard exceptions.
func specialZone(latitude, longitude float64, zone int) int {
	latDegrees := int(latitude * 180 / math.Pi)
	lonDegrees := int(longitude * 180 / math.Pi)
	switch {
	case latDegrees > 55 && latDegrees < 64 && lonDegrees > -1 && lonDegrees < 3:
		return 31
	case latDegrees > 55 && latDegrees < 64 && lonDegrees > 2 && lonDegrees < 12:
		return 32
	case latDegrees > 71 && lonDegrees > -1 && lonDegrees < 9:
		return 31
	case latDegrees > 71 && lonDegrees > 8 && lonDegrees < 21:
		return 33
	case latDegrees > 71 && lonDegrees > 20 && lonDegrees < 33:
		return 35
	case latDegrees > 71 && lonDegrees > 32 && lonDegrees < 42:
		return 37
	}
	return zone
}

// applyOverride allows an override of up to one zone from zone, wrapping
// between zones 1 and 60.
func applyOverride(zone, override int) (int, error) {
	switch {
	case zone == 1 && override == 60, zone == 60 && override == 1:
		return override, nil
	case zone-1 <= override && override <= zone+1:
		return override, nil
	}
	return 0, invalidParameterf("zone override %d out of range for zone %d", override, zone)
}

// ConvertFromGeodetic converts geodetic coordinates to UTM coordinates.
// utmZoneOverride, when not 0, takes precedence over the converter's
// override.
func (u *UTM) ConvertFromGeodetic(geodeticCoordinates s2.LatLng, utmZoneOverride int) (UTMCoord, error) {
	longitude := geodeticCoordinates.Lng.Radians()
	latitude := geodeticCoordinates.Lat.Radians()
	if latitude < utmMinLat.Radians()-epsilonRadians || latitude >= utmMaxLat.Radians()+epsilonRadians {
		return UTMCoord{}, invalidParameterf("latitude out of range")
	}
	if longitude < -math.Pi-epsilonRadians || longitude > 2*math.Pi+epsilonRadians {
		return UTMCoord{}, invalidParameterf("longitude out of range")
	}
	if latitude > -1.0e-9 && latitude < 0 {
		latitude = 0
	}
	if longitude < 0 {
		longitude += 2 * math.Pi
	}

	zone := zoneFor(longitude)
	override := utmZoneOverride
	if override == 0 {
		override = u.utmOverride
	}
	if override == 0 {
		zone = specialZone(latitude, longitude, zone)
	} else {
		overridden, err := applyOverride(zone, override)
		if err != nil {
			return UTMCoord{}, err
		}
		if overridden != zone {
			u.logger.Debug("utm zone override applied",
				zap.Int("computed_zone", zone), zap.Int("zone", overridden))
		}
		zone = overridden
	}

	hemisphere := HemisphereNorth
	if latitude < 0 {
		hemisphere = HemisphereSouth
	}

	easting, northing, err := u.zones[zone].Forward(longitude, latitude)
	if err != nil {
		return UTMCoord{}, err
	}
	if hemisphere == HemisphereSouth {
		northing += utmSouthOffset
	}
	if !(easting >= utmMinEasting && easting <= utmMaxEasting) {
		return UTMCoord{}, invalidParameterf("easting out of range")
	}
	if !(northing >= utmMinNorthing && northing <= utmMaxNorthing) {
		return UTMCoord{}, invalidParameterf("northing out of range")
	}

	return UTMCoord{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    easting,
		Northing:   northing,
	}, nil
}

// ConvertToGeodetic converts UTM coordinates to geodetic coordinates.
func (u *UTM) ConvertToGeodetic(utmCoordinates UTMCoord) (s2.LatLng, error) {
	if utmCoordinates.Zone < 1 || utmCoordinates.Zone > 60 {
		return s2.LatLng{}, invalidParameterf("zone out of range")
	}
	if utmCoordinates.Hemisphere != HemisphereNorth && utmCoordinates.Hemisphere != HemisphereSouth {
		return s2.LatLng{}, invalidParameterf("hemisphere out of range")
	}
	easting := utmCoordinates.Easting
	northing := utmCoordinates.Northing
	if !(easting >= utmMinEasting && easting <= utmMaxEasting) {
		return s2.LatLng{}, invalidParameterf("easting out of range")
	}
	if !(northing >= utmMinNorthing && northing <= utmMaxNorthing) {
		return s2.LatLng{}, invalidParameterf("northing out of range")
	}
	if utmCoordinates.Hemisphere == HemisphereSouth {
		northing -= utmSouthOffset
	}

	geodeticCoordinates, err := u.zones[utmCoordinates.Zone].ConvertToGeodetic(
		MapCoords{Easting: easting, Northing: northing})
	if err != nil {
		return s2.LatLng{}, err
	}
	latitude := geodeticCoordinates.Lat.Radians()
	if latitude < utmMinLat.Radians()-epsilonRadians || latitude >= utmMaxLat.Radians()+epsilonRadians {
		return s2.LatLng{}, invalidParameterf("latitude out of range")
	}
	return geodeticCoordinates, nil
}
