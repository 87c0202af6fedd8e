package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m-orlov/sheet-order-service/internal/domain"
	"github.com/shopspring/decimal"
)

const deliveryDateLayout = "02.01.2006"

// NormalizeRow converts one raw sheet row into an OrderRecord using the rate
// in effect right now. CostLocal is rounded to 2 decimal places with
// decimal.Round (half away from zero); the rule is uniform and idempotent for
// already-rounded inputs. The function is pure and never sees the header row.
func NormalizeRow(row domain.RawRow, rate decimal.Decimal) (*domain.OrderRecord, error) {
	if len(row) < 4 {
		return nil, fmt.Errorf("%w: expected 4 fields, got %d", domain.ErrMalformedField, len(row))
	}

	id, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: id %q", domain.ErrMalformedField, row[0])
	}

	orderNumber, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: order number %q", domain.ErrMalformedField, row[1])
	}

	costUSD, err := decimal.NewFromString(strings.TrimSpace(row[2]))
	if err != nil {
		return nil, fmt.Errorf("%w: cost %q", domain.ErrMalformedField, row[2])
	}
	if costUSD.IsNegative() {
		return nil, fmt.Errorf("%w: negative cost %q", domain.ErrMalformedField, row[2])
	}

	deliveryDate, err := time.Parse(deliveryDateLayout, strings.TrimSpace(row[3]))
	if err != nil {
		return nil, fmt.Errorf("%w: delivery date %q", domain.ErrMalformedField, row[3])
	}

	return &domain.OrderRecord{
		ID:           id,
		OrderNumber:  orderNumber,
		CostUSD:      costUSD,
		CostLocal:    costUSD.Mul(rate).Round(2),
		DeliveryDate: deliveryDate,
	}, nil
}
