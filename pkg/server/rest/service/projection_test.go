package service_test

import (
	"context"
	"errors"
	"lintang/windcanvas/pkg/datastructure"
	"lintang/windcanvas/pkg/distortion"
	"lintang/windcanvas/pkg/projection"
	"lintang/windcanvas/pkg/server"
	"lintang/windcanvas/pkg/server/rest/service"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	worldGeo    = datastructure.NewGeoBound(85, -180, -85, 180)
	worldCanvas = datastructure.NewCanvasBound(0, 0, 360, 180)
)

func gridPoints(step float64) ([]datastructure.CanvasPoint, []datastructure.VectorSample) {
	points := []datastructure.CanvasPoint{}
	samples := []datastructure.VectorSample{}
	for y := worldCanvas.YMin; y < worldCanvas.YMax; y += step {
		for x := worldCanvas.XMin; x < worldCanvas.XMax; x += step {
			points = append(points, datastructure.NewCanvasPoint(x, y))
			samples = append(samples, datastructure.NewVectorSample(10, 10))
		}
	}
	return points, samples
}

func TestProjectionServiceRoundTrip(t *testing.T) {
	svc := service.NewProjectionService(2, 16, nil)
	coords := []datastructure.GeoCoordinate{
		datastructure.NewGeoCoordinate(-7.55, 110.8),
		datastructure.NewGeoCoordinate(51.5, -0.12),
		datastructure.NewGeoCoordinate(0, 0),
	}

	points, err := svc.GeoToCanvas(context.Background(), coords, worldGeo, worldCanvas)
	require.NoError(t, err)
	require.Len(t, points, 3)

	back, err := svc.CanvasToGeo(context.Background(), points, worldGeo, worldCanvas)
	require.NoError(t, err)
	for i := range coords {
		assert.InDelta(t, coords[i].Lat, back[i].Lat, 1e-9)
		assert.InDelta(t, coords[i].Lng, back[i].Lng, 1e-9)
	}
}

func TestProjectionServiceErrors(t *testing.T) {
	svc := service.NewProjectionService(2, 16, nil)

	t.Run("invalid coordinate reports its index", func(t *testing.T) {
		coords := []datastructure.GeoCoordinate{
			datastructure.NewGeoCoordinate(10, 10),
			datastructure.NewGeoCoordinate(90, 10),
		}
		_, err := svc.GeoToCanvas(context.Background(), coords, worldGeo, worldCanvas)
		require.Error(t, err)
		assert.True(t, errors.Is(err, server.ErrInvalidCoordinate))
		assert.Contains(t, err.Error(), "coordinates[1]")

		var ierr *server.Error
		require.True(t, errors.As(err, &ierr))
		assert.Equal(t, server.ErrInvalidCoordinate, ierr.Code())
	})

	t.Run("degenerate bound", func(t *testing.T) {
		_, err := svc.CanvasToGeo(context.Background(), []datastructure.CanvasPoint{{X: 1, Y: 1}}, worldGeo,
			datastructure.NewCanvasBound(0, 0, 0, 0))
		assert.True(t, errors.Is(err, server.ErrDegenerateBound))
	})

	t.Run("points and samples length mismatch", func(t *testing.T) {
		_, err := svc.Distort(context.Background(), []datastructure.CanvasPoint{{X: 1, Y: 1}}, nil, worldGeo, worldCanvas)
		assert.True(t, errors.Is(err, server.ErrBadParamInput))
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := svc.GeoToCanvas(ctx, []datastructure.GeoCoordinate{{Lat: 1, Lng: 1}}, worldGeo, worldCanvas)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestProjectionServiceDistort(t *testing.T) {
	points, samples := gridPoints(20)

	expected := make([]datastructure.VectorSample, len(points))
	for i := range points {
		expected[i] = distortion.DistortAtCanvas(points[i], samples[i], worldGeo, worldCanvas)
	}

	t.Run("sequential", func(t *testing.T) {
		svc := service.NewProjectionService(4, len(points), nil)
		got, err := svc.Distort(context.Background(), points, samples, worldGeo, worldCanvas)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("worker pool keeps input order", func(t *testing.T) {
		svc := service.NewProjectionService(4, 1, nil)
		got, err := svc.Distort(context.Background(), points, samples, worldGeo, worldCanvas)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("worker pool reports the lowest failing index", func(t *testing.T) {
		svc := service.NewProjectionService(4, 0, nil)
		pts := []datastructure.CanvasPoint{{X: 1, Y: 1}, {X: 1, Y: 1e6}, {X: 2, Y: 1e6}}
		smp := []datastructure.VectorSample{{U: 1, V: 1}, {U: 1, V: 1}, {U: 1, V: 1}}
		_, err := svc.Distort(context.Background(), pts, smp, worldGeo, worldCanvas)
		require.Error(t, err)
		assert.True(t, errors.Is(err, server.ErrInvalidCoordinate))
		assert.Contains(t, err.Error(), "points[1]")
	})
}

func TestProjectionServiceTensor(t *testing.T) {
	svc := service.NewProjectionService(1, 1, nil)
	g := datastructure.NewGeoCoordinate(45, 45)

	fd, xy, err := svc.Tensor(context.Background(), g, worldGeo, worldCanvas, false)
	require.NoError(t, err)
	assert.Equal(t, projection.GeoToCanvas(g, worldGeo, worldCanvas), xy)
	assert.Equal(t, distortion.Distortion(g, xy, worldGeo, worldCanvas), fd)

	an, _, err := svc.Tensor(context.Background(), g, worldGeo, worldCanvas, true)
	require.NoError(t, err)
	assert.InEpsilon(t, an[0], fd[0], 1e-4)
	assert.InEpsilon(t, an[3], fd[3], 1e-4)

	_, _, err = svc.Tensor(context.Background(), datastructure.NewGeoCoordinate(-90, 0), worldGeo, worldCanvas, false)
	assert.True(t, errors.Is(err, server.ErrInvalidCoordinate))
}
