package distortion

import (
	"lintang/windcanvas/pkg/datastructure"
	"lintang/windcanvas/pkg/projection"
)

// DistortAtGeo hitung distorsi vektor wind akibat bentuk proyeksi di titik xy (= proyeksi latLng).
// wind dikali scale dulu, lalu dikalikan tensor Distortion. wind tidak diubah, hasilnya vektor baru.
func DistortAtGeo(latLng datastructure.GeoCoordinate, xy datastructure.CanvasPoint, scale float64,
	wind datastructure.VectorSample, geoBound datastructure.GeoBound, canvasBound datastructure.CanvasBound) datastructure.VectorSample {
	d := Distortion(latLng, xy, geoBound, canvasBound)
	return d.Apply(wind.Scale(scale))
}

// DistortAtCanvas entry point per titik grid canvas: xy di inverse ke lat/lng lalu DistortAtGeo dengan scale 1.
func DistortAtCanvas(xy datastructure.CanvasPoint, wind datastructure.VectorSample, geoBound datastructure.GeoBound,
	canvasBound datastructure.CanvasBound) datastructure.VectorSample {
	latLng := projection.CanvasToGeo(xy, geoBound, canvasBound)
	return DistortAtGeo(latLng, xy, 1, wind, geoBound, canvasBound)
}

// DistortAtCanvasChecked sama dengan DistortAtCanvas, tapi bound, xy, dan hasil inverse nya divalidasi dulu.
func DistortAtCanvasChecked(xy datastructure.CanvasPoint, wind datastructure.VectorSample, geoBound datastructure.GeoBound,
	canvasBound datastructure.CanvasBound) (datastructure.VectorSample, error) {
	latLng, err := projection.CanvasToGeoChecked(xy, geoBound, canvasBound)
	if err != nil {
		return datastructure.VectorSample{}, err
	}
	if err := projection.ValidateCoordinate(latLng); err != nil {
		return datastructure.VectorSample{}, err
	}
	return DistortAtGeo(latLng, xy, 1, wind, geoBound, canvasBound), nil
}

// DistortAtGeoChecked versi tervalidasi dari DistortAtGeo.
func DistortAtGeoChecked(latLng datastructure.GeoCoordinate, xy datastructure.CanvasPoint, scale float64,
	wind datastructure.VectorSample, geoBound datastructure.GeoBound, canvasBound datastructure.CanvasBound) (datastructure.VectorSample, error) {
	if err := projection.ValidateBounds(geoBound, canvasBound); err != nil {
		return datastructure.VectorSample{}, err
	}
	if err := projection.ValidateCoordinate(latLng); err != nil {
		return datastructure.VectorSample{}, err
	}
	if err := projection.ValidateCanvasPoint(xy); err != nil {
		return datastructure.VectorSample{}, err
	}
	return DistortAtGeo(latLng, xy, scale, wind, geoBound, canvasBound), nil
}
