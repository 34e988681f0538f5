package coordproj

import "fmt"

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 Ellipsoid

// GRS80 is the Geodetic Reference System 1980 ellipsoid.
var GRS80 Ellipsoid

// DefaultUTMConverter is a WGS84 ellipsoid based UTM converter.
var DefaultUTMConverter *UTM

func init() {
	const semiMajorAxis = 6378137
	var err error
	WGS84, err = NewEllipsoid(semiMajorAxis, 1/298.257223563)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 ellipsoid: %s", err))
	}
	GRS80, err = NewEllipsoid(semiMajorAxis, 1/298.257222101)
	if err != nil {
		panic(fmt.Sprintf("error constructing GRS80 ellipsoid: %s", err))
	}
	DefaultUTMConverter, err = NewUTM()
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UTM converter: %s", err))
	}
}
