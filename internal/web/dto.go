package web

import (
	"time"

	"github.com/fuelview/fuelview/internal/model"
	"github.com/fuelview/fuelview/internal/selector"
)

// RecordDTO is a fuel record in API responses.
type RecordDTO struct {
	Row       int     `json:"row"`
	VehicleNo string  `json:"vehicle_no"`
	Kmpl      float64 `json:"kmpl"`
	Consumed  float64 `json:"consumed"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// SummaryDTO aggregates the records of a response.
type SummaryDTO struct {
	MinKmpl       float64 `json:"min_kmpl"`
	MaxKmpl       float64 `json:"max_kmpl"`
	MeanKmpl      float64 `json:"mean_kmpl"`
	TotalConsumed float64 `json:"total_consumed"`
	First         string  `json:"first,omitempty"`
	Last          string  `json:"last,omitempty"`
}

// RecordsResponse answers GET /api/vehicles/{id}/records.
type RecordsResponse struct {
	Vehicle string      `json:"vehicle"`
	Count   int         `json:"count"`
	Summary *SummaryDTO `json:"summary,omitempty"`
	Records []RecordDTO `json:"records"`
}

// VehiclesResponse answers GET /api/vehicles.
type VehiclesResponse struct {
	Count    int      `json:"count"`
	Vehicles []string `json:"vehicles"`
}

// HealthResponse answers GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
	Source  string `json:"source"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toRecordDTOs(records []model.FuelRecord) []RecordDTO {
	out := make([]RecordDTO, len(records))
	for i, r := range records {
		out[i] = RecordDTO{
			Row:       r.Row,
			VehicleNo: r.VehicleNo,
			Kmpl:      r.Kmpl.InexactFloat64(),
			Consumed:  r.Consumed.InexactFloat64(),
		}
		if r.HasCreatedAt() {
			out[i].CreatedAt = r.CreatedAt.Format(time.RFC3339)
		}
	}
	return out
}

func toSummaryDTO(s selector.Summary) *SummaryDTO {
	if s.Count == 0 {
		return nil
	}
	dto := &SummaryDTO{
		MinKmpl:       s.MinKmpl.InexactFloat64(),
		MaxKmpl:       s.MaxKmpl.InexactFloat64(),
		MeanKmpl:      s.MeanKmpl.Round(4).InexactFloat64(),
		TotalConsumed: s.TotalConsumed.InexactFloat64(),
	}
	if !s.First.IsZero() {
		dto.First = s.First.Format(time.RFC3339)
		dto.Last = s.Last.Format(time.RFC3339)
	}
	return dto
}
