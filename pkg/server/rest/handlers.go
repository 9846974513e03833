package rest

import (
	"context"
	"errors"
	"fmt"
	"lintang/windcanvas/pkg/datastructure"
	"lintang/windcanvas/pkg/server"
	"lintang/windcanvas/pkg/util"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type ProjectionService interface {
	GeoToCanvas(ctx context.Context, coords []datastructure.GeoCoordinate, geoBound datastructure.GeoBound,
		canvasBound datastructure.CanvasBound) ([]datastructure.CanvasPoint, error)
	CanvasToGeo(ctx context.Context, points []datastructure.CanvasPoint, geoBound datastructure.GeoBound,
		canvasBound datastructure.CanvasBound) ([]datastructure.GeoCoordinate, error)
	Distort(ctx context.Context, points []datastructure.CanvasPoint, samples []datastructure.VectorSample,
		geoBound datastructure.GeoBound, canvasBound datastructure.CanvasBound) ([]datastructure.VectorSample, error)
	Tensor(ctx context.Context, latLng datastructure.GeoCoordinate, geoBound datastructure.GeoBound,
		canvasBound datastructure.CanvasBound, analytic bool) (datastructure.DistortionTensor, datastructure.CanvasPoint, error)
}

// DefaultBounds dipakai kalau request tidak mengirim geo_bound / canvas_bound.
type DefaultBounds struct {
	Geo    datastructure.GeoBound
	Canvas datastructure.CanvasBound
}

type ProjectionHandler struct {
	svc          ProjectionService
	promeMetrics *metrics
	defaults     DefaultBounds
	validate     *validator.Validate
	trans        ut.Translator
}

func ProjectionRouter(r *chi.Mux, svc ProjectionService, m *metrics, defaults DefaultBounds) {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	handler := &ProjectionHandler{svc, m, defaults, validate, trans}

	r.Group(func(r chi.Router) {
		r.Route("/api/projections", func(r chi.Router) {
			r.Post("/geo-to-canvas", handler.geoToCanvas)
			r.Post("/canvas-to-geo", handler.canvasToGeo)
			r.Post("/distort", handler.distort)
			r.Post("/tensor", handler.tensor)
			r.Get("/hello", handler.Hello)
		})
	})
}

// GeoBoundReq model info
//
//	@Description	window geografis (derajat) yang dipetakan ke canvas
type GeoBoundReq struct {
	North float64 `json:"north" validate:"gt=-90,lt=90,gtfield=South"`
	West  float64 `json:"west" validate:"gte=-360,lte=360"`
	South float64 `json:"south" validate:"gt=-90,lt=90"`
	East  float64 `json:"east" validate:"gte=-360,lte=360,nefield=West"`
}

// CanvasBoundReq model info
//
//	@Description	rectangle pixel tempat geo bound diproyeksikan
type CanvasBoundReq struct {
	XMin float64 `json:"x_min"`
	YMin float64 `json:"y_min"`
	XMax float64 `json:"x_max" validate:"nefield=XMin"`
	YMax float64 `json:"y_max" validate:"nefield=YMin"`
}

// BoundsReq bagian request yang sama untuk semua endpoint projection.
type BoundsReq struct {
	GeoBound    *GeoBoundReq    `json:"geo_bound,omitempty"`
	CanvasBound *CanvasBoundReq `json:"canvas_bound,omitempty"`
	Precision   *uint           `json:"precision,omitempty" validate:"omitempty,lte=15"`
}

func (b BoundsReq) bounds(defaults DefaultBounds) (datastructure.GeoBound, datastructure.CanvasBound) {
	gb, cb := defaults.Geo, defaults.Canvas
	if b.GeoBound != nil {
		gb = datastructure.NewGeoBound(b.GeoBound.North, b.GeoBound.West, b.GeoBound.South, b.GeoBound.East)
	}
	if b.CanvasBound != nil {
		cb = datastructure.NewCanvasBound(b.CanvasBound.XMin, b.CanvasBound.YMin, b.CanvasBound.XMax, b.CanvasBound.YMax)
	}
	return gb, cb
}

// round kalau precision dikirim, output dibulatkan ke precision digit di belakang koma.
func (b BoundsReq) round(v float64) float64 {
	if b.Precision == nil {
		return v
	}
	return util.RoundFloat(v, *b.Precision)
}

// Coord model info
//
//	@Description	model untuk koordinat
type Coord struct {
	Lat float64 `json:"lat" validate:"gt=-90,lt=90"`
	Lng float64 `json:"lng"`
}

// Point model info
//
//	@Description	model untuk titik pixel canvas
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GeoToCanvasRequest model info
//
//	@Description	request body untuk proyeksi koordinat ke pixel canvas
type GeoToCanvasRequest struct {
	BoundsReq
	Coordinates []Coord `json:"coordinates" validate:"required,min=1,dive"`
}

func (s *GeoToCanvasRequest) Bind(r *http.Request) error {
	if len(s.Coordinates) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// GeoToCanvasResponse model info
//
//	@Description	response body proyeksi koordinat ke pixel canvas
type GeoToCanvasResponse struct {
	Points []Point `json:"points"`
}

// geoToCanvas
//
//	@Summary		proyeksi koordinat geografis ke pixel canvas (mercator).
//	@Description	proyeksi koordinat geografis ke pixel canvas (mercator). geo_bound dan canvas_bound optional, default dari config.
//	@Tags			projections
//	@Param			body	body	GeoToCanvasRequest	true	"request body geo to canvas"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/projections/geo-to-canvas [post]
//	@Success		200	{object}	GeoToCanvasResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *ProjectionHandler) geoToCanvas(w http.ResponseWriter, r *http.Request) {
	data := &GeoToCanvasRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateRequest(w, r, data) {
		return
	}

	coords := make([]datastructure.GeoCoordinate, len(data.Coordinates))
	for i, c := range data.Coordinates {
		coords[i] = datastructure.NewGeoCoordinate(c.Lat, c.Lng)
	}

	h.promeMetrics.ProjectionQueryCount.WithLabelValues("geo_to_canvas").Inc()
	gb, cb := data.bounds(h.defaults)
	points, err := h.svc.GeoToCanvas(r.Context(), coords, gb, cb)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	resp := &GeoToCanvasResponse{Points: make([]Point, len(points))}
	for i, p := range points {
		resp.Points[i] = Point{X: data.round(p.X), Y: data.round(p.Y)}
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// CanvasToGeoRequest model info
//
//	@Description	request body untuk inverse proyeksi pixel canvas ke koordinat
type CanvasToGeoRequest struct {
	BoundsReq
	Points []Point `json:"points" validate:"required,min=1"`
}

func (s *CanvasToGeoRequest) Bind(r *http.Request) error {
	if len(s.Points) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// CanvasToGeoResponse model info
//
//	@Description	response body inverse proyeksi pixel canvas ke koordinat
type CanvasToGeoResponse struct {
	Coordinates []Coord `json:"coordinates"`
}

// canvasToGeo
//
//	@Summary		inverse proyeksi pixel canvas ke koordinat geografis.
//	@Description	inverse proyeksi pixel canvas ke koordinat geografis. geo_bound dan canvas_bound optional, default dari config.
//	@Tags			projections
//	@Param			body	body	CanvasToGeoRequest	true	"request body canvas to geo"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/projections/canvas-to-geo [post]
//	@Success		200	{object}	CanvasToGeoResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *ProjectionHandler) canvasToGeo(w http.ResponseWriter, r *http.Request) {
	data := &CanvasToGeoRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateRequest(w, r, data) {
		return
	}

	points := make([]datastructure.CanvasPoint, len(data.Points))
	for i, p := range data.Points {
		points[i] = datastructure.NewCanvasPoint(p.X, p.Y)
	}

	h.promeMetrics.ProjectionQueryCount.WithLabelValues("canvas_to_geo").Inc()
	gb, cb := data.bounds(h.defaults)
	coords, err := h.svc.CanvasToGeo(r.Context(), points, gb, cb)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	resp := &CanvasToGeoResponse{Coordinates: make([]Coord, len(coords))}
	for i, c := range coords {
		resp.Coordinates[i] = Coord{Lat: data.round(c.Lat), Lng: data.round(c.Lng)}
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// DistortPoint model info
//
//	@Description	titik pixel canvas + vektor (u ke timur, v ke utara)
type DistortPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// DistortRequest model info
//
//	@Description	request body untuk koreksi distorsi vektor di titik-titik canvas
type DistortRequest struct {
	BoundsReq
	Points []DistortPoint `json:"points" validate:"required,min=1"`
}

func (s *DistortRequest) Bind(r *http.Request) error {
	if len(s.Points) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// DistortResponse model info
//
//	@Description	response body vektor yang sudah dikoreksi, urutan sama dengan request
type DistortResponse struct {
	Vectors []DistortPoint `json:"vectors"`
}

// distort
//
//	@Summary		koreksi vektor (misal angin) terhadap distorsi proyeksi di titik canvas.
//	@Description	koreksi vektor (misal angin) terhadap distorsi proyeksi di titik canvas. Tiap titik di inverse ke lat/lng, lalu vektornya dikalikan jacobian lokal proyeksi.
//	@Tags			projections
//	@Param			body	body	DistortRequest	true	"request body distort"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/projections/distort [post]
//	@Success		200	{object}	DistortResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *ProjectionHandler) distort(w http.ResponseWriter, r *http.Request) {
	data := &DistortRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateRequest(w, r, data) {
		return
	}

	points := make([]datastructure.CanvasPoint, len(data.Points))
	samples := make([]datastructure.VectorSample, len(data.Points))
	for i, p := range data.Points {
		points[i] = datastructure.NewCanvasPoint(p.X, p.Y)
		samples[i] = datastructure.NewVectorSample(p.U, p.V)
	}

	h.promeMetrics.ProjectionQueryCount.WithLabelValues("distort").Inc()
	gb, cb := data.bounds(h.defaults)
	vectors, err := h.svc.Distort(r.Context(), points, samples, gb, cb)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	resp := &DistortResponse{Vectors: make([]DistortPoint, len(vectors))}
	for i, v := range vectors {
		resp.Vectors[i] = DistortPoint{X: points[i].X, Y: points[i].Y, U: data.round(v.U), V: data.round(v.V)}
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// TensorRequest model info
//
//	@Description	request body untuk tensor distorsi di satu koordinat
type TensorRequest struct {
	BoundsReq
	Lat      float64 `json:"lat" validate:"gt=-90,lt=90"`
	Lng      float64 `json:"lng"`
	Analytic bool    `json:"analytic"`
}

func (s *TensorRequest) Bind(r *http.Request) error {
	return nil
}

// TensorResponse model info
//
//	@Description	tensor [dx/dlng, dy/dlng, dx/dlat, dy/dlat] (turunan longitude sudah dibagi cos lat)
type TensorResponse struct {
	Tensor [4]float64 `json:"tensor"`
	Point  Point      `json:"point"`
	Method string     `json:"method"`
}

// tensor
//
//	@Summary		tensor distorsi proyeksi di satu koordinat.
//	@Description	tensor distorsi proyeksi di satu koordinat. Default finite difference, analytic=true pakai turunan closed form mercator.
//	@Tags			projections
//	@Param			body	body	TensorRequest	true	"request body tensor"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/projections/tensor [post]
//	@Success		200	{object}	TensorResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *ProjectionHandler) tensor(w http.ResponseWriter, r *http.Request) {
	data := &TensorRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateRequest(w, r, data) {
		return
	}

	h.promeMetrics.ProjectionQueryCount.WithLabelValues("tensor").Inc()
	gb, cb := data.bounds(h.defaults)
	d, xy, err := h.svc.Tensor(r.Context(), datastructure.NewGeoCoordinate(data.Lat, data.Lng), gb, cb, data.Analytic)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	method := "finite-difference"
	if data.Analytic {
		method = "analytic"
	}
	resp := &TensorResponse{
		Point:  Point{X: data.round(xy.X), Y: data.round(xy.Y)},
		Method: method,
	}
	for i := range d {
		resp.Tensor[i] = data.round(d[i])
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (h *ProjectionHandler) Hello(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, "Hello, World!")
}

func (h *ProjectionHandler) validateRequest(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	if err := h.validate.Struct(data); err != nil {
		vv := translateError(err, h.trans)
		render.Render(w, r, ErrValidation(err, vv))
		return false
	}
	return true
}

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 500,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusUnprocessableEntity:
		statusText = "Degenerate bound."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	} else {
		switch ierr.Code() {
		case server.ErrInternalServerError:
			return http.StatusInternalServerError
		case server.ErrBadParamInput, server.ErrInvalidCoordinate:
			return http.StatusBadRequest
		case server.ErrDegenerateBound:
			return http.StatusUnprocessableEntity
		default:
			return http.StatusInternalServerError
		}
	}

}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf("%s", e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
