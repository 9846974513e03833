// Package distortion mengoreksi vektor (misal angin u/v) terhadap distorsi lokal proyeksi canvas.
package distortion

import (
	"lintang/windcanvas/pkg/datastructure"
	"lintang/windcanvas/pkg/geo"
	"lintang/windcanvas/pkg/projection"
	"math"
)

// H besar langkah finite difference dalam derajat (10^-5.2).
var H = math.Pow(10, -5.2)

// probeStep -H untuk koordinat >= 0, +H untuk koordinat negatif. Probe selalu mengarah ke nol.
func probeStep(deg float64) float64 {
	if deg < 0 {
		return H
	}
	return -H
}

// Distortion estimasi jacobian lokal GeoToCanvas di latLng (xy = proyeksi latLng) pakai finite difference
// satu sisi. Turunan terhadap longitude dibagi meridian scale factor k = cos φ
// (Snyder, Map Projections: A Working Manual, eq. 4-3, R = 1), tanpa itu vektor "menjepit" di kutub.
//
// Di lat = ±90, k = 0 dan hasilnya tidak finite.
func Distortion(latLng datastructure.GeoCoordinate, xy datastructure.CanvasPoint, geoBound datastructure.GeoBound,
	canvasBound datastructure.CanvasBound) datastructure.DistortionTensor {
	hLng := probeStep(latLng.Lng)
	hLat := probeStep(latLng.Lat)

	pLng := projection.GeoToCanvas(datastructure.NewGeoCoordinate(latLng.Lat, latLng.Lng+hLng), geoBound, canvasBound)
	pLat := projection.GeoToCanvas(datastructure.NewGeoCoordinate(latLng.Lat+hLat, latLng.Lng), geoBound, canvasBound)

	k := math.Cos(geo.DegToRad(latLng.Lat))

	return datastructure.DistortionTensor{
		(pLng.X - xy.X) / hLng / k,
		(pLng.Y - xy.Y) / hLng / k,
		(pLat.X - xy.X) / hLat,
		(pLat.Y - xy.Y) / hLat,
	}
}

// AnalyticDistortion turunan closed form dari GeoToCanvas, dengan skala yang sama seperti Distortion:
//
//	∂x/∂λ = xFactor * π/180,  ∂y/∂φ = yFactor * π/180 / cos φ,  ∂x/∂φ = ∂y/∂λ = 0
//
// Hasilnya sedikit berbeda dengan Distortion (error finite difference), makanya tidak dipakai oleh
// DistortAtGeo / DistortAtCanvas.
func AnalyticDistortion(latLng datastructure.GeoCoordinate, geoBound datastructure.GeoBound,
	canvasBound datastructure.CanvasBound) datastructure.DistortionTensor {
	xFactor, yFactor, _ := projection.ScaleFactors(geoBound, canvasBound)

	perDegree := geo.DegToRad(1)
	k := math.Cos(geo.DegToRad(latLng.Lat))

	return datastructure.DistortionTensor{
		xFactor * perDegree / k,
		0,
		0,
		yFactor * perDegree / k,
	}
}
