package projection

import (
	"lintang/windcanvas/pkg/datastructure"
	"lintang/windcanvas/pkg/geo"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
)

var _ s2.Projection = (*CanvasProjection)(nil)

// CanvasProjection GeoToCanvas/CanvasToGeo untuk satu pasangan bound, dalam bentuk s2.Projection.
// Bisa dipakai langsung oleh s2.EdgeTessellator dll.
//
// s2.Projection punya method unexported, jadi interface nya hanya bisa dipenuhi lewat embed projection
// bawaan s2. Semua method publik di override di bawah.
type CanvasProjection struct {
	s2.Projection
	Geo    datastructure.GeoBound
	Canvas datastructure.CanvasBound
}

func NewCanvasProjection(geoBound datastructure.GeoBound, canvasBound datastructure.CanvasBound) *CanvasProjection {
	p := &CanvasProjection{Geo: geoBound, Canvas: canvasBound}
	// mercator s2 dengan lebar wrap yang sama, x di ±maxLng untuk lng ±180.
	p.Projection = s2.NewMercatorProjection(p.WrapDistance().X / 2)
	return p
}

// Project converts a point on the sphere to a canvas point.
func (p *CanvasProjection) Project(pt s2.Point) r2.Point {
	return p.FromLatLng(s2.LatLngFromPoint(pt))
}

// Unproject converts a canvas point to a point on the sphere.
func (p *CanvasProjection) Unproject(pt r2.Point) s2.Point {
	return s2.PointFromLatLng(p.ToLatLng(pt))
}

func (p *CanvasProjection) FromLatLng(ll s2.LatLng) r2.Point {
	xy := GeoToCanvas(geo.FromLatLng(ll), p.Geo, p.Canvas)
	return r2.Point{X: xy.X, Y: xy.Y}
}

func (p *CanvasProjection) ToLatLng(pt r2.Point) s2.LatLng {
	return geo.LatLng(CanvasToGeo(datastructure.NewCanvasPoint(pt.X, pt.Y), p.Geo, p.Canvas))
}

func (p *CanvasProjection) Interpolate(f float64, a, b r2.Point) r2.Point {
	return a.Mul(1 - f).Add(b.Mul(f))
}

// WrapDistance lebar canvas untuk 360 derajat longitude. Sumbu y tidak wrap.
func (p *CanvasProjection) WrapDistance() r2.Point {
	xFactor, _, _ := ScaleFactors(p.Geo, p.Canvas)
	return r2.Point{X: math.Abs(2 * math.Pi * xFactor), Y: 0}
}

// WrapDestination geser b sejauh kelipatan WrapDistance supaya sisi a->b tidak melintasi antimeridian.
func (p *CanvasProjection) WrapDestination(a, b r2.Point) r2.Point {
	wrap := p.WrapDistance()
	x := b.X
	if wrap.X > 0 {
		if x-a.X > 0.5*wrap.X {
			x -= wrap.X
		} else if a.X-x > 0.5*wrap.X {
			x += wrap.X
		}
	}
	return r2.Point{X: x, Y: b.Y}
}
