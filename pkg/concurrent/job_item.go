package concurrent

import "lintang/windcanvas/pkg/datastructure"

// DistortJobItem satu titik canvas + vektor yang mau dikoreksi. Index = posisi di request batch.
type DistortJobItem struct {
	Index  int
	Point  datastructure.CanvasPoint
	Sample datastructure.VectorSample
}

type DistortJobResult struct {
	Index  int
	Sample datastructure.VectorSample
	Err    error
}

type JobI interface {
	DistortJobItem
}

type JobFunc[T JobI, G any] func(job T) G
