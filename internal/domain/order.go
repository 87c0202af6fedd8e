package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawRow is one spreadsheet row as fetched: id, order number, cost in USD,
// delivery date as dd.mm.yyyy.
type RawRow []string

// OrderRecord is a normalized order before persistence. CostLocal is fixed at
// ingest time from the rate in effect and is never recomputed later.
type OrderRecord struct {
	ID           int64
	OrderNumber  int64
	CostUSD      decimal.Decimal
	CostLocal    decimal.Decimal
	DeliveryDate time.Time
}

// PersistedOrder is the post-merge row returned by the store. Notified is
// monotone: once true it never reverts.
type PersistedOrder struct {
	OrderRecord
	Notified bool
}

// Overdue reports whether the delivery date is strictly before today.
// Both sides are compared as calendar dates.
func (o *PersistedOrder) Overdue(today time.Time) bool {
	y, m, d := today.Date()
	todayDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return o.DeliveryDate.Before(todayDate)
}
