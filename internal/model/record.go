package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelRecord is one row of vehicle fuel-transaction data.
type FuelRecord struct {
	Row       int             // 1-based line in the source, header included
	VehicleNo string          //nolint:revive // plain field name is clearest
	Kmpl      decimal.Decimal // km per liter of the last transaction
	Consumed  decimal.Decimal // estimated fuel consumed
	CreatedAt time.Time       // zero when the source has no usable timestamp
}

// HasCreatedAt reports whether the record carries a creation timestamp.
func (r FuelRecord) HasCreatedAt() bool {
	return !r.CreatedAt.IsZero()
}
