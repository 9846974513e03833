package geo

import (
	"lintang/windcanvas/pkg/datastructure"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// DegToRad satu-satunya konversi derajat -> radian yang dipakai projection & distortion.
func DegToRad(d float64) float64 {
	return (s1.Angle(d) * s1.Degree).Radians()
}

// RadToDeg kebalikan dari DegToRad.
func RadToDeg(r float64) float64 {
	return s1.Angle(r).Degrees()
}

// LatLng konversi ke s2.LatLng (radian).
func LatLng(c datastructure.GeoCoordinate) s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lng)
}

func FromLatLng(ll s2.LatLng) datastructure.GeoCoordinate {
	return datastructure.GeoCoordinate{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()}
}
