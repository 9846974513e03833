package service

import (
	"context"
	"errors"
	"lintang/windcanvas/pkg/concurrent"
	"lintang/windcanvas/pkg/datastructure"
	"lintang/windcanvas/pkg/distortion"
	"lintang/windcanvas/pkg/projection"
	"lintang/windcanvas/pkg/server"
	"log/slog"
)

type ProjectionService struct {
	numWorkers     int
	batchThreshold int
	log            *slog.Logger
}

// NewProjectionService batch distort dengan titik > batchThreshold dikerjakan oleh numWorkers goroutine.
func NewProjectionService(numWorkers, batchThreshold int, log *slog.Logger) *ProjectionService {
	if log == nil {
		log = slog.Default()
	}
	return &ProjectionService{numWorkers: numWorkers, batchThreshold: batchThreshold, log: log}
}

// atIndex tambah index item batch ke pesan error, code nya tetap.
func atIndex(err error, field string, i int) error {
	code := server.ErrInternalServerError
	var ierr *server.Error
	if errors.As(err, &ierr) {
		code = ierr.Code()
	}
	return server.WrapErrorf(err, code, "%s[%d]", field, i)
}

func canceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return server.WrapErrorf(err, server.ErrInternalServerError, "request canceled")
	}
	return nil
}

func (uc *ProjectionService) GeoToCanvas(ctx context.Context, coords []datastructure.GeoCoordinate,
	geoBound datastructure.GeoBound, canvasBound datastructure.CanvasBound) ([]datastructure.CanvasPoint, error) {
	if err := projection.ValidateBounds(geoBound, canvasBound); err != nil {
		return nil, err
	}

	points := make([]datastructure.CanvasPoint, len(coords))
	for i, c := range coords {
		if err := canceled(ctx); err != nil {
			return nil, err
		}
		p, err := projection.GeoToCanvasChecked(c, geoBound, canvasBound)
		if err != nil {
			return nil, atIndex(err, "coordinates", i)
		}
		points[i] = p
	}
	return points, nil
}

func (uc *ProjectionService) CanvasToGeo(ctx context.Context, points []datastructure.CanvasPoint,
	geoBound datastructure.GeoBound, canvasBound datastructure.CanvasBound) ([]datastructure.GeoCoordinate, error) {
	if err := projection.ValidateBounds(geoBound, canvasBound); err != nil {
		return nil, err
	}

	coords := make([]datastructure.GeoCoordinate, len(points))
	for i, p := range points {
		if err := canceled(ctx); err != nil {
			return nil, err
		}
		c, err := projection.CanvasToGeoChecked(p, geoBound, canvasBound)
		if err != nil {
			return nil, atIndex(err, "points", i)
		}
		coords[i] = c
	}
	return coords, nil
}

// Distort koreksi samples[i] di points[i] (DistortAtCanvas). Urutan output = urutan input.
func (uc *ProjectionService) Distort(ctx context.Context, points []datastructure.CanvasPoint, samples []datastructure.VectorSample,
	geoBound datastructure.GeoBound, canvasBound datastructure.CanvasBound) ([]datastructure.VectorSample, error) {
	if len(points) != len(samples) {
		return nil, server.WrapErrorf(nil, server.ErrBadParamInput, "got %d points but %d samples", len(points), len(samples))
	}
	if err := projection.ValidateBounds(geoBound, canvasBound); err != nil {
		return nil, err
	}

	if len(points) <= uc.batchThreshold {
		out := make([]datastructure.VectorSample, len(points))
		for i := range points {
			if err := canceled(ctx); err != nil {
				return nil, err
			}
			s, err := distortion.DistortAtCanvasChecked(points[i], samples[i], geoBound, canvasBound)
			if err != nil {
				return nil, atIndex(err, "points", i)
			}
			out[i] = s
		}
		return out, nil
	}

	uc.log.Debug("distort batch with worker pool", "points", len(points), "workers", uc.numWorkers)
	return uc.distortWorkers(ctx, points, samples, geoBound, canvasBound)
}

func (uc *ProjectionService) distortWorkers(ctx context.Context, points []datastructure.CanvasPoint, samples []datastructure.VectorSample,
	geoBound datastructure.GeoBound, canvasBound datastructure.CanvasBound) ([]datastructure.VectorSample, error) {
	workers := concurrent.NewWorkerPool[concurrent.DistortJobItem, concurrent.DistortJobResult](uc.numWorkers, len(points))
	for i := range points {
		workers.AddJob(concurrent.DistortJobItem{Index: i, Point: points[i], Sample: samples[i]})
	}
	workers.Close()

	workers.Start(func(job concurrent.DistortJobItem) concurrent.DistortJobResult {
		if err := canceled(ctx); err != nil {
			return concurrent.DistortJobResult{Index: job.Index, Err: err}
		}
		s, err := distortion.DistortAtCanvasChecked(job.Point, job.Sample, geoBound, canvasBound)
		if err != nil {
			err = atIndex(err, "points", job.Index)
		}
		return concurrent.DistortJobResult{Index: job.Index, Sample: s, Err: err}
	})
	workers.Wait()

	out := make([]datastructure.VectorSample, len(points))
	firstErrIdx := -1
	var firstErr error
	for res := range workers.CollectResults() {
		if res.Err != nil {
			if firstErrIdx == -1 || res.Index < firstErrIdx {
				firstErrIdx, firstErr = res.Index, res.Err
			}
			continue
		}
		out[res.Index] = res.Sample
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// Tensor tensor distorsi di latLng. analytic = true pakai turunan closed form, bukan finite difference.
func (uc *ProjectionService) Tensor(ctx context.Context, latLng datastructure.GeoCoordinate, geoBound datastructure.GeoBound,
	canvasBound datastructure.CanvasBound, analytic bool) (datastructure.DistortionTensor, datastructure.CanvasPoint, error) {
	if err := canceled(ctx); err != nil {
		return datastructure.DistortionTensor{}, datastructure.CanvasPoint{}, err
	}
	xy, err := projection.GeoToCanvasChecked(latLng, geoBound, canvasBound)
	if err != nil {
		return datastructure.DistortionTensor{}, datastructure.CanvasPoint{}, err
	}
	if analytic {
		return distortion.AnalyticDistortion(latLng, geoBound, canvasBound), xy, nil
	}
	return distortion.Distortion(latLng, xy, geoBound, canvasBound), xy, nil
}
