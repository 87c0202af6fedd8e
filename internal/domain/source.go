package domain

import "context"

// OrderSource supplies the raw order rows as of now. The first row is the
// sheet header and must be discarded by the caller.
type OrderSource interface {
	FetchRows(ctx context.Context) ([]RawRow, error)
}
