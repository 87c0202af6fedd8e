package domain

import "context"

// SyncUsecase runs one reconciliation cycle: fetch rows and rate, normalize,
// upsert, and evaluate delivery expiration per row.
type SyncUsecase interface {
	RunCycle(ctx context.Context) error
}
