// Package projection memetakan koordinat geografis ke pixel canvas (dan sebaliknya) pakai proyeksi mercator
// yang di remap linear supaya mengisi CanvasBound.
//
// Semua fungsi di sini total dan tidak melakukan validasi input: latitude ±90 atau bound dengan lebar/tinggi nol
// menghasilkan NaN/Inf. Pakai varian *Checked kalau input belum divalidasi.
//
// Origin canvas (XMin, YMin) ikut dihitung: forward menambahkan offset, inverse menguranginya. Ini sengaja
// berbeda dari rumus lama yang selalu mengasumsikan origin (0,0); hasilnya sama persis kalau origin (0,0).
package projection

import (
	"lintang/windcanvas/pkg/datastructure"
	"lintang/windcanvas/pkg/geo"
	"math"
)

// MercatorY ln(tan(φ/2 + π/4)), φ dalam radian. Tidak terdefinisi di φ = ±π/2.
// https://en.wikipedia.org/wiki/Mercator_projection#Derivation
func MercatorY(phi float64) float64 {
	return math.Log(math.Tan(phi/2 + math.Pi/4))
}

// ScaleFactors mengembalikan faktor skala x (pixel per radian longitude), faktor skala y (pixel per satuan
// mercator y), dan mercator y dari sisi selatan bound.
func ScaleFactors(geoBound datastructure.GeoBound, canvasBound datastructure.CanvasBound) (xFactor, yFactor, yMin float64) {
	yMin = MercatorY(geo.DegToRad(geoBound.South))
	yMax := MercatorY(geo.DegToRad(geoBound.North))

	xFactor = canvasBound.Width() / geo.DegToRad(geoBound.Width())
	yFactor = canvasBound.Height() / (yMax - yMin)
	return
}

// GeoToCanvas proyeksi titik geografis ke pixel canvas.
//
//	φ is latitude, λ is longitude
//	x = xMin + (λ - λwest) * xFactor
//	y = yMin + (mercatorY(φ) - mercatorY(φsouth)) * yFactor
func GeoToCanvas(latLng datastructure.GeoCoordinate, geoBound datastructure.GeoBound,
	canvasBound datastructure.CanvasBound) datastructure.CanvasPoint {
	xFactor, yFactor, yMin := ScaleFactors(geoBound, canvasBound)

	x := (geo.DegToRad(latLng.Lng) - geo.DegToRad(geoBound.West)) * xFactor
	y := (MercatorY(geo.DegToRad(latLng.Lat)) - yMin) * yFactor

	return datastructure.NewCanvasPoint(canvasBound.XMin+x, canvasBound.YMin+y)
}

// CanvasToGeo kebalikan dari GeoToCanvas. atan(sinh(.)) terdefinisi untuk semua bilangan real.
func CanvasToGeo(xy datastructure.CanvasPoint, geoBound datastructure.GeoBound,
	canvasBound datastructure.CanvasBound) datastructure.GeoCoordinate {
	xFactor, yFactor, yMin := ScaleFactors(geoBound, canvasBound)

	latRad := math.Atan(math.Sinh((xy.Y-canvasBound.YMin)/yFactor + yMin))
	lngRad := (xy.X-canvasBound.XMin)/xFactor + geo.DegToRad(geoBound.West)

	return datastructure.NewGeoCoordinate(geo.RadToDeg(latRad), geo.RadToDeg(lngRad))
}
