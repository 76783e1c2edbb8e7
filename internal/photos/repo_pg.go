package photos

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Put inserts a new photo record.
func (r *PGRepo) Put(ctx context.Context, record PhotoRecord) error {
	const query = `
INSERT INTO photos (
    id,
    file_name,
    upload_timestamp,
    storage_key,
    content_type,
    size_bytes
) VALUES ($1, $2, $3, $4, $5, $6)`

	contentType := record.ContentType
	if contentType == "" {
		contentType = fallbackContentType
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		record.ID,
		record.FileName,
		record.UploadTimestamp,
		record.StorageKey,
		contentType,
		record.SizeBytes,
	)
	return err
}

// Get fetches a photo record by id.
func (r *PGRepo) Get(ctx context.Context, id string) (PhotoRecord, error) {
	const query = `
SELECT id, file_name, upload_timestamp, storage_key, content_type, size_bytes
FROM photos
WHERE id = $1
LIMIT 1`

	var record PhotoRecord
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.FileName,
		&record.UploadTimestamp,
		&record.StorageKey,
		&record.ContentType,
		&record.SizeBytes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PhotoRecord{}, ErrNotFound
		}
		return PhotoRecord{}, err
	}
	return record, nil
}

var _ Repo = (*PGRepo)(nil)
