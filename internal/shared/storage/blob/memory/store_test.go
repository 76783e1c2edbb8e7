package memory

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestPutGetDelete(t *testing.T) {
	store := New()
	ctx := context.Background()

	if err := store.Put(ctx, "photos/p1/cat.png", []byte("payload"), "image/png"); err != nil {
		t.Fatalf("put: %v", err)
	}

	data, contentType, ok := store.Get("photos/p1/cat.png")
	if !ok {
		t.Fatalf("expected object to exist")
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected payload %q", data)
	}
	if contentType != "image/png" {
		t.Fatalf("unexpected content type %q", contentType)
	}

	if err := store.Delete(ctx, "photos/p1/cat.png"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, ok := store.Get("photos/p1/cat.png"); ok {
		t.Fatalf("expected object to be gone")
	}

	// Deleting a missing key must not fail.
	if err := store.Delete(ctx, "photos/p1/cat.png"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestPresignGet(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, err := store.PresignGet(ctx, "photos/missing/x.png", time.Hour); err == nil {
		t.Fatalf("expected error for missing object")
	}

	if err := store.Put(ctx, "photos/p1/cat.png", []byte("x"), "image/png"); err != nil {
		t.Fatalf("put: %v", err)
	}

	url, err := store.PresignGet(ctx, "photos/p1/cat.png", time.Hour)
	if err != nil {
		t.Fatalf("presign: %v", err)
	}
	if url == "" || !strings.Contains(url, "expires=") {
		t.Fatalf("unexpected url %q", url)
	}
}
