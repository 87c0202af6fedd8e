package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider supplies the current USD to local currency conversion rate.
type RateProvider interface {
	CurrentRate(ctx context.Context) (decimal.Decimal, error)
}
