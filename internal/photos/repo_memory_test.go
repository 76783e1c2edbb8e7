package photos

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoPutGet(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	record := PhotoRecord{
		ID:              "photo-1",
		FileName:        "cat.png",
		UploadTimestamp: time.Now().UTC(),
		StorageKey:      "photos/photo-1/cat.png",
		ContentType:     "image/png",
		SizeBytes:       5,
	}
	if err := repo.Put(ctx, record); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, "photo-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != record {
		t.Fatalf("got %+v, want %+v", got, record)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
