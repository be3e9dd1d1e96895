package ports

import (
	"context"

	"slviewer/domain/queue"
)

// TableSource provides read-only access to the work queue for the UI/API.
// LoadTable is called once per request and must not cache between calls.
// Implementations may return a nil table when nothing can be produced.
type TableSource interface {
	LoadTable(ctx context.Context) (*queue.Table, queue.Source)
}
