package projection

import (
	"lintang/windcanvas/pkg/datastructure"
	"lintang/windcanvas/pkg/server"
	"math"
)

func isFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ValidateCoordinate lat harus di (-90, 90) dan lat/lng harus finite.
func ValidateCoordinate(c datastructure.GeoCoordinate) error {
	if !isFinite(c.Lat, c.Lng) {
		return server.WrapErrorf(nil, server.ErrInvalidCoordinate, "coordinate (%v, %v) is not finite", c.Lat, c.Lng)
	}
	if math.Abs(c.Lat) >= 90 {
		return server.WrapErrorf(nil, server.ErrInvalidCoordinate, "latitude %v is outside (-90, 90)", c.Lat)
	}
	return nil
}

func ValidateCanvasPoint(p datastructure.CanvasPoint) error {
	if !isFinite(p.X, p.Y) {
		return server.WrapErrorf(nil, server.ErrInvalidCoordinate, "canvas point (%v, %v) is not finite", p.X, p.Y)
	}
	return nil
}

func ValidateGeoBound(b datastructure.GeoBound) error {
	if !isFinite(b.North, b.West, b.South, b.East) {
		return server.WrapErrorf(nil, server.ErrDegenerateBound, "geo bound %+v is not finite", b)
	}
	if b.North <= b.South {
		return server.WrapErrorf(nil, server.ErrDegenerateBound, "geo bound north %v must be greater than south %v", b.North, b.South)
	}
	if b.North >= 90 || b.South <= -90 {
		return server.WrapErrorf(nil, server.ErrDegenerateBound, "geo bound north/south must be inside (-90, 90), got %v/%v", b.North, b.South)
	}
	if b.Width() == 0 {
		return server.WrapErrorf(nil, server.ErrDegenerateBound, "geo bound width is zero")
	}
	return nil
}

func ValidateCanvasBound(b datastructure.CanvasBound) error {
	if !isFinite(b.XMin, b.YMin, b.XMax, b.YMax) {
		return server.WrapErrorf(nil, server.ErrDegenerateBound, "canvas bound %+v is not finite", b)
	}
	if b.Width() == 0 {
		return server.WrapErrorf(nil, server.ErrDegenerateBound, "canvas bound width is zero")
	}
	if b.Height() == 0 {
		return server.WrapErrorf(nil, server.ErrDegenerateBound, "canvas bound height is zero")
	}
	return nil
}

// ValidateBounds validasi geo bound lalu canvas bound.
func ValidateBounds(geoBound datastructure.GeoBound, canvasBound datastructure.CanvasBound) error {
	if err := ValidateGeoBound(geoBound); err != nil {
		return err
	}
	return ValidateCanvasBound(canvasBound)
}

// GeoToCanvasChecked sama dengan GeoToCanvas tapi menolak input di luar domain.
func GeoToCanvasChecked(latLng datastructure.GeoCoordinate, geoBound datastructure.GeoBound,
	canvasBound datastructure.CanvasBound) (datastructure.CanvasPoint, error) {
	if err := ValidateBounds(geoBound, canvasBound); err != nil {
		return datastructure.CanvasPoint{}, err
	}
	if err := ValidateCoordinate(latLng); err != nil {
		return datastructure.CanvasPoint{}, err
	}
	return GeoToCanvas(latLng, geoBound, canvasBound), nil
}

func CanvasToGeoChecked(xy datastructure.CanvasPoint, geoBound datastructure.GeoBound,
	canvasBound datastructure.CanvasBound) (datastructure.GeoCoordinate, error) {
	if err := ValidateBounds(geoBound, canvasBound); err != nil {
		return datastructure.GeoCoordinate{}, err
	}
	if err := ValidateCanvasPoint(xy); err != nil {
		return datastructure.GeoCoordinate{}, err
	}
	return CanvasToGeo(xy, geoBound, canvasBound), nil
}
