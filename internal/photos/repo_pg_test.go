package photos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoPut(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	record := PhotoRecord{
		ID:              "photo-1",
		FileName:        "cat.png",
		UploadTimestamp: time.Now().UTC(),
		StorageKey:      "photos/photo-1/cat.png",
		ContentType:     "image/png",
		SizeBytes:       5,
	}

	mock.ExpectExec("INSERT INTO photos").
		WithArgs(
			record.ID,
			record.FileName,
			record.UploadTimestamp,
			record.StorageKey,
			record.ContentType,
			record.SizeBytes,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Put(context.Background(), record); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoPutDefaultsContentType(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	record := PhotoRecord{
		ID:              "photo-2",
		FileName:        "blob.bin",
		UploadTimestamp: time.Now().UTC(),
		StorageKey:      "photos/photo-2/blob.bin",
	}

	mock.ExpectExec("INSERT INTO photos").
		WithArgs(
			record.ID,
			record.FileName,
			record.UploadTimestamp,
			record.StorageKey,
			"application/octet-stream",
			record.SizeBytes,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Put(context.Background(), record); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	uploadedAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "file_name", "upload_timestamp", "storage_key", "content_type", "size_bytes"}).
		AddRow("photo-1", "cat.png", uploadedAt, "photos/photo-1/cat.png", "image/png", int64(5))
	mock.ExpectQuery("SELECT id, file_name, upload_timestamp, storage_key, content_type, size_bytes").
		WithArgs("photo-1").
		WillReturnRows(rows)

	record, err := repo.Get(context.Background(), "photo-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if record.FileName != "cat.png" || record.StorageKey != "photos/photo-1/cat.png" {
		t.Fatalf("unexpected record %+v", record)
	}
	if !record.UploadTimestamp.Equal(uploadedAt) {
		t.Fatalf("timestamp %v, want %v", record.UploadTimestamp, uploadedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	rows := sqlmock.NewRows([]string{"id", "file_name", "upload_timestamp", "storage_key", "content_type", "size_bytes"})
	mock.ExpectQuery("SELECT id, file_name, upload_timestamp, storage_key, content_type, size_bytes").
		WithArgs("missing").
		WillReturnRows(rows)

	_, err = repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
