package coordproj_test

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/tzneal/coordproj"
)

func ExampleUTM_ConvertFromGeodetic() {
	utm, _ := coordproj.DefaultUTMConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(40, -75), 0)
	fmt.Printf("%d %.3f %.3f\n", utm.Zone, utm.Easting, utm.Northing)
	// Output: 18 500000.000 4427757.219
}

func ExampleGeostationary_Forward() {
	geos, _ := coordproj.NewGeostationary(coordproj.WGS84, coordproj.Parameters{}, coordproj.DefaultHeightOfOrbit)
	s2LatLng := s2.LatLngFromDegrees(20, 10)
	x, y, _ := geos.Forward(s2LatLng.Lng.Radians(), s2LatLng.Lat.Radians())
	fmt.Printf("%.3f %.3f\n", x, y)
	// Output: 1027290.592 2135974.287
}

func ExampleGeostationary_Inverse() {
	geos, _ := coordproj.NewGeostationary(coordproj.WGS84, coordproj.Parameters{}, coordproj.DefaultHeightOfOrbit)
	_, _, err := geos.Inverse(6e6, 0)
	fmt.Println(err)
	// Output: Geostationary Satellite: (6e+06, 0): view ray does not intersect the earth
}
