package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fuelview/fuelview/internal/dataset"
	"github.com/fuelview/fuelview/internal/render"
	"github.com/fuelview/fuelview/internal/selector"
)

// Handler holds the dependencies of every HTTP handler.
type Handler struct {
	records *dataset.RecordSet
	opts    selector.Options
	logger  *zap.Logger
}

// NewHandler creates a handler over a loaded record set.
func NewHandler(records *dataset.RecordSet, opts selector.Options, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{records: records, opts: opts, logger: logger}
}

// Health reports liveness and how many records are loaded.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Records: h.records.Len(),
		Source:  h.records.Source(),
	})
}

// ListVehicles returns the distinct vehicle numbers.
// GET /api/vehicles
func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles := selector.Vehicles(h.records, h.opts.CaseInsensitive)
	if vehicles == nil {
		vehicles = []string{}
	}
	writeJSON(w, http.StatusOK, VehiclesResponse{Count: len(vehicles), Vehicles: vehicles})
}

// GetRecords returns the records of one vehicle. An unknown vehicle is an
// empty result, not an error.
// GET /api/vehicles/{id}/records
func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	vehicle := h.vehicleParam(r)
	records := selector.Query(h.records, vehicle, h.opts)

	writeJSON(w, http.StatusOK, RecordsResponse{
		Vehicle: vehicle,
		Count:   len(records),
		Summary: toSummaryDTO(selector.Summarize(records)),
		Records: toRecordDTOs(records),
	})
}

// GetChartPNG renders the chart of one vehicle as PNG.
// GET /api/vehicles/{id}/chart.png
func (h *Handler) GetChartPNG(w http.ResponseWriter, r *http.Request) {
	h.writeChart(w, r, render.PNG)
}

// GetChartSVG renders the chart of one vehicle as SVG.
// GET /api/vehicles/{id}/chart.svg
func (h *Handler) GetChartSVG(w http.ResponseWriter, r *http.Request) {
	h.writeChart(w, r, render.SVG)
}

func (h *Handler) writeChart(w http.ResponseWriter, r *http.Request, format render.Format) {
	vehicle := h.vehicleParam(r)
	records := selector.Query(h.records, vehicle, h.opts)
	if len(records) == 0 {
		writeError(w, http.StatusNotFound, noRecordsMessage(vehicle), nil)
		return
	}

	var buf bytes.Buffer
	err := render.Chart(&buf, records, render.ChartOptions{Title: render.ChartTitle(vehicle), Format: format})
	if err != nil {
		h.logger.Error("chart render failed", zap.String("vehicle", vehicle), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to render chart", err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) vehicleParam(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	// chi routes on RawPath when it is set, leaving the segment escaped.
	if r.URL.RawPath != "" {
		if v, err := url.PathUnescape(raw); err == nil {
			raw = v
		}
	}
	return selector.NormalizeInput(raw, h.opts.CaseInsensitive)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
