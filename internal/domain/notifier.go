package domain

import (
	"context"
	"time"
)

// ExpirationNotifier delivers the one-time overdue message for an order.
// Delivery is at-least-once: the caller only marks the order notified after
// a successful call.
type ExpirationNotifier interface {
	NotifyExpired(ctx context.Context, orderID int64, deliveryDate time.Time) error
}
