package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors one imported sheet row. ID comes from the sheet, it is
// never generated here. Notified defaults to false and is only ever flipped
// to true by the expiration decision.
type OrderModel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement:false"`
	OrderNumber  int64           `gorm:"index:idx_order_number"`
	CostUSD      decimal.Decimal `gorm:"type:numeric(14,2)"`
	CostLocal    decimal.Decimal `gorm:"type:numeric(14,2)"`
	DeliveryDate time.Time       `gorm:"type:date"`
	Notified     bool            `gorm:"default:false"`
}
