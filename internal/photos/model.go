package photos

import "time"

// PhotoRecord is the durable metadata entity for one ingested photo.
// It is created exactly once by the ingestion pipeline and never mutated.
type PhotoRecord struct {
	ID              string
	FileName        string
	UploadTimestamp time.Time
	StorageKey      string
	ContentType     string
	SizeBytes       int64
}
