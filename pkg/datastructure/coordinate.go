package datastructure

// GeoCoordinate titik geografis dalam derajat. Tidak di clamp ke [-90,90] / [-180,180].
type GeoCoordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func NewGeoCoordinate(lat, lng float64) GeoCoordinate {
	return GeoCoordinate{Lat: lat, Lng: lng}
}

// CanvasPoint koordinat pixel di canvas.
type CanvasPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewCanvasPoint(x, y float64) CanvasPoint {
	return CanvasPoint{X: x, Y: y}
}

// GeoBound window geografis (derajat) yang dipetakan ke canvas.
// North harus > South dan Width() tidak boleh 0.
type GeoBound struct {
	North float64 `json:"north"`
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
}

func NewGeoBound(north, west, south, east float64) GeoBound {
	return GeoBound{North: north, West: west, South: south, East: east}
}

// Width lebar bound dalam derajat.
func (b GeoBound) Width() float64 {
	return b.East - b.West
}

// CanvasBound rectangle pixel tempat GeoBound diproyeksikan.
type CanvasBound struct {
	XMin float64 `json:"x_min"`
	YMin float64 `json:"y_min"`
	XMax float64 `json:"x_max"`
	YMax float64 `json:"y_max"`
}

func NewCanvasBound(xMin, yMin, xMax, yMax float64) CanvasBound {
	return CanvasBound{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
}

func (b CanvasBound) Width() float64 {
	return b.XMax - b.XMin
}

func (b CanvasBound) Height() float64 {
	return b.YMax - b.YMin
}

// VectorSample vektor 2 komponen di satu titik, misal angin (u = ke timur, v = ke utara).
type VectorSample struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

func NewVectorSample(u, v float64) VectorSample {
	return VectorSample{U: u, V: v}
}

// Scale mengalikan kedua komponen dengan f.
func (s VectorSample) Scale(f float64) VectorSample {
	return VectorSample{U: s.U * f, V: s.V * f}
}

// DistortionTensor [∂x/∂λ', ∂y/∂λ', ∂x/∂φ', ∂y/∂φ'].
type DistortionTensor [4]float64

// Apply menerapkan tensor ke vektor: u = a*u + c*v, v = b*u + d*v.
func (d DistortionTensor) Apply(s VectorSample) VectorSample {
	return VectorSample{
		U: d[0]*s.U + d[2]*s.V,
		V: d[1]*s.U + d[3]*s.V,
	}
}
