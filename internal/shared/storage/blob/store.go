package blob

import (
	"context"
	"time"
)

// Store defines the contract for the binary blob backend.
//
// Delete is idempotent: deleting a key that does not exist is not an error,
// which keeps the ingestion compensation path safe to re-run.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}
