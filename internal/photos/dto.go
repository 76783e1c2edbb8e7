package photos

import "time"

// IngestResponse is the outward-facing representation of a created photo.
type IngestResponse struct {
	PhotoID         string `json:"photoId"`
	FileName        string `json:"fileName"`
	UploadTimestamp string `json:"uploadTimestamp"`
	S3Key           string `json:"s3Key"`
}

// ResolveResponse merges the record fields with the signed download URL.
type ResolveResponse struct {
	PhotoID         string `json:"photoId"`
	FileName        string `json:"fileName"`
	UploadTimestamp string `json:"uploadTimestamp"`
	DownloadURL     string `json:"downloadUrl"`
}

func toIngestResponse(record PhotoRecord) IngestResponse {
	return IngestResponse{
		PhotoID:         record.ID,
		FileName:        record.FileName,
		UploadTimestamp: record.UploadTimestamp.UTC().Format(time.RFC3339),
		S3Key:           record.StorageKey,
	}
}

func toResolveResponse(record PhotoRecord, downloadURL string) ResolveResponse {
	return ResolveResponse{
		PhotoID:         record.ID,
		FileName:        record.FileName,
		UploadTimestamp: record.UploadTimestamp.UTC().Format(time.RFC3339),
		DownloadURL:     downloadURL,
	}
}
