package domain

import "context"

type OrderRepository interface {
	// UpsertOrder inserts the record or merges it into the existing row with
	// the same ID, preserving the persisted Notified flag. The returned row
	// reflects the committed state.
	UpsertOrder(ctx context.Context, record *OrderRecord) (*PersistedOrder, error)
	// MarkNotified sets Notified=true as a separate commit.
	MarkNotified(ctx context.Context, orderID int64) error
	GetOrderByID(ctx context.Context, orderID int64) (*PersistedOrder, error)
}
