package photos

import "context"

// Repo defines record-store persistence for photo metadata. Implementations
// must return ErrNotFound from Get when no record exists for the id, and any
// other failure as-is so the service can classify it as a transient fault.
type Repo interface {
	Put(ctx context.Context, record PhotoRecord) error
	Get(ctx context.Context, id string) (PhotoRecord, error)
}
