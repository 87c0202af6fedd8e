package usecase

// Order lifecycle events published per processed row.
const (
	EventStatusImported = "IMPORTED"
	EventStatusOverdue  = "OVERDUE"
)

type OrderEvent struct {
	RunID        string `json:"run_id"`
	OrderID      int64  `json:"order_id"`
	OrderNumber  int64  `json:"order_number"`
	CostLocal    string `json:"cost_local"`
	DeliveryDate string `json:"delivery_date"`
	Status       string `json:"status"`
}
