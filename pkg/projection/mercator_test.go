package projection_test

import (
	"errors"
	"lintang/windcanvas/pkg/datastructure"
	"lintang/windcanvas/pkg/projection"
	"lintang/windcanvas/pkg/server"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	worldGeo    = datastructure.NewGeoBound(85, -180, -85, 180)
	worldCanvas = datastructure.NewCanvasBound(0, 0, 360, 180)
)

func TestMercatorY(t *testing.T) {
	t.Run("equator is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, projection.MercatorY(0))
	})

	t.Run("odd function", func(t *testing.T) {
		for _, phi := range []float64{0.1, 0.5, 1.0, 1.4} {
			assert.InDelta(t, -projection.MercatorY(phi), projection.MercatorY(-phi), 1e-12)
		}
	})

	t.Run("south pole is not finite", func(t *testing.T) {
		assert.True(t, math.IsInf(projection.MercatorY(-math.Pi/2), -1))
	})
}

func TestGeoToCanvasBoundCorners(t *testing.T) {
	tests := []struct {
		name   string
		geo    datastructure.GeoCoordinate
		expect datastructure.CanvasPoint
	}{
		{"south west", datastructure.NewGeoCoordinate(-85, -180), datastructure.NewCanvasPoint(0, 0)},
		{"north east", datastructure.NewGeoCoordinate(85, 180), datastructure.NewCanvasPoint(360, 180)},
		// y naik ke utara, jadi north west ada di (XMin, YMax), bukan (XMin, YMin).
		{"north west", datastructure.NewGeoCoordinate(85, -180), datastructure.NewCanvasPoint(0, 180)},
		{"south east", datastructure.NewGeoCoordinate(-85, 180), datastructure.NewCanvasPoint(360, 0)},
		{"center", datastructure.NewGeoCoordinate(0, 0), datastructure.NewCanvasPoint(180, 90)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := projection.GeoToCanvas(tt.geo, worldGeo, worldCanvas)
			assert.InDelta(t, tt.expect.X, got.X, 1e-9)
			assert.InDelta(t, tt.expect.Y, got.Y, 1e-9)
		})
	}
}

func TestGeoToCanvasOffsetCanvas(t *testing.T) {
	t.Run("canvas origin is honoured", func(t *testing.T) {
		cb := datastructure.NewCanvasBound(100, 50, 460, 230)
		got := projection.GeoToCanvas(datastructure.NewGeoCoordinate(-85, -180), worldGeo, cb)
		assert.InDelta(t, 100, got.X, 1e-9)
		assert.InDelta(t, 50, got.Y, 1e-9)

		got = projection.GeoToCanvas(datastructure.NewGeoCoordinate(85, 180), worldGeo, cb)
		assert.InDelta(t, 460, got.X, 1e-9)
		assert.InDelta(t, 230, got.Y, 1e-9)
	})

	t.Run("longitude is linear in canvas x", func(t *testing.T) {
		a := projection.GeoToCanvas(datastructure.NewGeoCoordinate(10, -90), worldGeo, worldCanvas)
		b := projection.GeoToCanvas(datastructure.NewGeoCoordinate(10, 90), worldGeo, worldCanvas)
		assert.InDelta(t, 90, a.X, 1e-9)
		assert.InDelta(t, 270, b.X, 1e-9)
		assert.Equal(t, a.Y, b.Y)
	})
}

func TestRoundTrip(t *testing.T) {
	bounds := []struct {
		name   string
		geo    datastructure.GeoBound
		canvas datastructure.CanvasBound
	}{
		{"world", worldGeo, worldCanvas},
		{"java", datastructure.NewGeoBound(-5.8, 105.1, -8.8, 114.6), datastructure.NewCanvasBound(0, 0, 1024, 768)},
		{"offset canvas", datastructure.NewGeoBound(60, -30, 20, 40), datastructure.NewCanvasBound(-200, 40, 600, 640)},
	}

	for _, b := range bounds {
		t.Run(b.name, func(t *testing.T) {
			for i := 1; i < 10; i++ {
				for j := 1; j < 10; j++ {
					fi, fj := float64(i)/10, float64(j)/10
					g := datastructure.NewGeoCoordinate(
						b.geo.South+(b.geo.North-b.geo.South)*fi,
						b.geo.West+b.geo.Width()*fj,
					)

					back := projection.CanvasToGeo(projection.GeoToCanvas(g, b.geo, b.canvas), b.geo, b.canvas)
					assert.InDelta(t, g.Lat, back.Lat, 1e-9)
					assert.InDelta(t, g.Lng, back.Lng, 1e-9)
				}
			}
		})
	}
}

func TestCanvasToGeoIsTotal(t *testing.T) {
	t.Run("far outside the canvas still maps to a valid latitude", func(t *testing.T) {
		for _, y := range []float64{-1e6, -1e3, 0, 1e3, 1e6} {
			g := projection.CanvasToGeo(datastructure.NewCanvasPoint(0, y), worldGeo, worldCanvas)
			assert.False(t, math.IsNaN(g.Lat))
			assert.LessOrEqual(t, math.Abs(g.Lat), 90.0)
		}
	})
}

func TestDegenerateInputsAreNotFinite(t *testing.T) {
	t.Run("zero width canvas", func(t *testing.T) {
		cb := datastructure.NewCanvasBound(0, 0, 0, 180)
		g := projection.CanvasToGeo(datastructure.NewCanvasPoint(10, 10), worldGeo, cb)
		assert.True(t, math.IsInf(g.Lng, 0) || math.IsNaN(g.Lng))
	})

	t.Run("zero width geo bound", func(t *testing.T) {
		gb := datastructure.NewGeoBound(85, 10, -85, 10)
		p := projection.GeoToCanvas(datastructure.NewGeoCoordinate(0, 20), gb, worldCanvas)
		assert.True(t, math.IsInf(p.X, 0))
	})

	t.Run("south pole", func(t *testing.T) {
		p := projection.GeoToCanvas(datastructure.NewGeoCoordinate(-90, 0), worldGeo, worldCanvas)
		assert.Less(t, p.Y, -1000.0)
	})
}

func TestChecked(t *testing.T) {
	t.Run("valid input matches the unchecked path", func(t *testing.T) {
		g := datastructure.NewGeoCoordinate(12.5, -45)
		p, err := projection.GeoToCanvasChecked(g, worldGeo, worldCanvas)
		require.NoError(t, err)
		assert.Equal(t, projection.GeoToCanvas(g, worldGeo, worldCanvas), p)

		back, err := projection.CanvasToGeoChecked(p, worldGeo, worldCanvas)
		require.NoError(t, err)
		assert.Equal(t, projection.CanvasToGeo(p, worldGeo, worldCanvas), back)
	})

	tests := []struct {
		name   string
		geo    datastructure.GeoCoordinate
		gb     datastructure.GeoBound
		cb     datastructure.CanvasBound
		expect error
	}{
		{"north pole", datastructure.NewGeoCoordinate(90, 0), worldGeo, worldCanvas, server.ErrInvalidCoordinate},
		{"south pole", datastructure.NewGeoCoordinate(-90, 0), worldGeo, worldCanvas, server.ErrInvalidCoordinate},
		{"nan longitude", datastructure.NewGeoCoordinate(0, math.NaN()), worldGeo, worldCanvas, server.ErrInvalidCoordinate},
		{"north below south", datastructure.NewGeoCoordinate(0, 0), datastructure.NewGeoBound(-85, -180, 85, 180), worldCanvas, server.ErrDegenerateBound},
		{"zero geo width", datastructure.NewGeoCoordinate(0, 0), datastructure.NewGeoBound(85, 0, -85, 0), worldCanvas, server.ErrDegenerateBound},
		{"bound touches pole", datastructure.NewGeoCoordinate(0, 0), datastructure.NewGeoBound(90, -180, -85, 180), worldCanvas, server.ErrDegenerateBound},
		{"zero canvas width", datastructure.NewGeoCoordinate(0, 0), worldGeo, datastructure.NewCanvasBound(5, 0, 5, 180), server.ErrDegenerateBound},
		{"zero canvas height", datastructure.NewGeoCoordinate(0, 0), worldGeo, datastructure.NewCanvasBound(0, 7, 360, 7), server.ErrDegenerateBound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := projection.GeoToCanvasChecked(tt.geo, tt.gb, tt.cb)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expect))

			var ierr *server.Error
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, tt.expect, ierr.Code())
		})
	}

	t.Run("east may be less than west", func(t *testing.T) {
		gb := datastructure.NewGeoBound(60, 40, 20, -30)
		assert.NoError(t, projection.ValidateGeoBound(gb))
	})

	t.Run("infinite canvas point", func(t *testing.T) {
		_, err := projection.CanvasToGeoChecked(datastructure.NewCanvasPoint(math.Inf(1), 0), worldGeo, worldCanvas)
		assert.True(t, errors.Is(err, server.ErrInvalidCoordinate))
	})
}
