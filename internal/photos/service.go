package photos

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"photo-backend/internal/queue"
	"photo-backend/internal/shared/storage/blob"
	"photo-backend/internal/shared/telemetry"
	"photo-backend/internal/shared/util"
)

// StorageKeyPrefix is the fixed leading segment of every photo storage key.
// Keys have the form "photos/<id>/<fileName>".
const StorageKeyPrefix = "photos"

const defaultURLExpiration = time.Hour

// Service implements the ingestion pipeline and the retrieval resolver.
// Both operations are stateless; all shared state lives in the two stores.
type Service struct {
	Blobs blob.Store
	Repo  Repo

	// Janitor receives best-effort notifications about blobs orphaned by a
	// failed compensating delete. May be nil.
	Janitor queue.Client

	// URLExpiration bounds the validity of signed download URLs.
	// Zero means the one hour default.
	URLExpiration time.Duration

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

// Ingest validates the request, writes the decoded payload to the blob
// store and then records the metadata. If the metadata write fails, the
// just-written blob is deleted so a visible record always has a blob behind
// it. The compensating delete is best-effort: its own failure is logged and
// reported to the janitor queue, never escalated.
func (s *Service) Ingest(ctx context.Context, fileName, encoded string) (PhotoRecord, error) {
	if s.Blobs == nil {
		return PhotoRecord{}, fmt.Errorf("%w: blob store is not configured", ErrValidation)
	}
	if strings.TrimSpace(fileName) == "" {
		return PhotoRecord{}, fmt.Errorf("%w: fileName is required", ErrValidation)
	}
	if strings.TrimSpace(encoded) == "" {
		return PhotoRecord{}, fmt.Errorf("%w: fileContent is required", ErrValidation)
	}

	data, err := decodePayload(encoded)
	if err != nil {
		return PhotoRecord{}, fmt.Errorf("%w: fileContent is not valid base64", ErrValidation)
	}

	keyName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return PhotoRecord{}, fmt.Errorf("%w: fileName is not a valid storage name", ErrValidation)
	}

	id := uuid.NewString()
	storageKey := StorageKeyPrefix + "/" + id + "/" + keyName
	contentType := ContentTypeFor(fileName)

	if err := s.Blobs.Put(ctx, storageKey, data, contentType); err != nil {
		telemetry.Error("photos.blob_write_failed", map[string]any{
			"photo_id":    id,
			"storage_key": storageKey,
			"error":       err.Error(),
		})
		return PhotoRecord{}, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	record := PhotoRecord{
		ID:              id,
		FileName:        fileName,
		UploadTimestamp: s.now().UTC(),
		StorageKey:      storageKey,
		ContentType:     contentType,
		SizeBytes:       int64(len(data)),
	}

	if err := s.Repo.Put(ctx, record); err != nil {
		s.compensate(ctx, record, err)
		return PhotoRecord{}, fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}

	telemetry.Info("photos.ingested", map[string]any{
		"photo_id":     id,
		"storage_key":  storageKey,
		"content_type": contentType,
		"size_bytes":   record.SizeBytes,
	})
	return record, nil
}

// Resolve looks up the record for id and issues a fresh signed download URL.
// Signing failure is a total failure; no partial metadata is returned.
func (s *Service) Resolve(ctx context.Context, id string) (PhotoRecord, string, error) {
	if strings.TrimSpace(id) == "" {
		return PhotoRecord{}, "", fmt.Errorf("%w: photoId is required", ErrValidation)
	}

	record, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return PhotoRecord{}, "", ErrNotFound
		}
		return PhotoRecord{}, "", fmt.Errorf("%w: %v", ErrMetadataRead, err)
	}

	ttl := s.URLExpiration
	if ttl <= 0 {
		ttl = defaultURLExpiration
	}

	url, err := s.Blobs.PresignGet(ctx, record.StorageKey, ttl)
	if err != nil {
		telemetry.Error("photos.presign_failed", map[string]any{
			"photo_id":    id,
			"storage_key": record.StorageKey,
			"error":       err.Error(),
		})
		return PhotoRecord{}, "", fmt.Errorf("%w: %v", ErrSigning, err)
	}

	return record, url, nil
}

// compensate deletes the blob written earlier in the same request. Exactly
// one delete is attempted; if it fails the key is recorded as leaked.
func (s *Service) compensate(ctx context.Context, record PhotoRecord, cause error) {
	if delErr := s.Blobs.Delete(ctx, record.StorageKey); delErr != nil {
		telemetry.Error("photos.blob_leaked", map[string]any{
			"photo_id":    record.ID,
			"storage_key": record.StorageKey,
			"error":       delErr.Error(),
			"cause":       cause.Error(),
		})
		s.notifyJanitor(ctx, record, delErr)
		return
	}
	telemetry.Warn("photos.metadata_write_compensated", map[string]any{
		"photo_id":    record.ID,
		"storage_key": record.StorageKey,
		"cause":       cause.Error(),
	})
}

func (s *Service) notifyJanitor(ctx context.Context, record PhotoRecord, cause error) {
	if s.Janitor == nil {
		return
	}
	msg := queue.Message{
		PhotoID:    record.ID,
		StorageKey: record.StorageKey,
		Reason:     cause.Error(),
		OccurredAt: s.now().UTC().Format(time.RFC3339),
		Version:    1,
	}
	if err := s.Janitor.Send(ctx, msg); err != nil {
		telemetry.Error("photos.janitor_notify_failed", map[string]any{
			"photo_id":    record.ID,
			"storage_key": record.StorageKey,
			"error":       err.Error(),
		})
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// decodePayload strips an optional data-URL prefix and decodes base64.
func decodePayload(encoded string) ([]byte, error) {
	raw := strings.TrimSpace(encoded)
	if strings.HasPrefix(raw, "data:") {
		idx := strings.Index(raw, ",")
		if idx < 0 {
			return nil, fmt.Errorf("malformed data url")
		}
		raw = raw[idx+1:]
	}
	return base64.StdEncoding.DecodeString(raw)
}
