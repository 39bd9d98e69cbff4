package selector

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fuelview/fuelview/internal/model"
)

// Summary aggregates a query result.
type Summary struct {
	Count         int
	MinKmpl       decimal.Decimal
	MaxKmpl       decimal.Decimal
	MeanKmpl      decimal.Decimal
	TotalConsumed decimal.Decimal
	First         time.Time // earliest timestamp, zero if none
	Last          time.Time
}

// Summarize computes a Summary. An empty input gives the zero Summary.
func Summarize(records []model.FuelRecord) Summary {
	var s Summary
	if len(records) == 0 {
		return s
	}

	sum := decimal.Zero
	s.MinKmpl = records[0].Kmpl
	s.MaxKmpl = records[0].Kmpl
	for _, r := range records {
		s.Count++
		sum = sum.Add(r.Kmpl)
		s.TotalConsumed = s.TotalConsumed.Add(r.Consumed)
		s.MinKmpl = decimal.Min(s.MinKmpl, r.Kmpl)
		s.MaxKmpl = decimal.Max(s.MaxKmpl, r.Kmpl)

		if !r.HasCreatedAt() {
			continue
		}
		if s.First.IsZero() || r.CreatedAt.Before(s.First) {
			s.First = r.CreatedAt
		}
		if r.CreatedAt.After(s.Last) {
			s.Last = r.CreatedAt
		}
	}
	s.MeanKmpl = sum.Div(decimal.NewFromInt(int64(s.Count)))
	return s
}
