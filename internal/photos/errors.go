package photos

import "errors"

// Error taxonomy for the ingestion and retrieval pipelines. Every external
// store failure is converted to one of these at the point of call so callers
// can attribute the failure without inspecting store internals.
var (
	// ErrValidation marks malformed or missing input; a caller error.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks the absence of a record, not a fault.
	ErrNotFound = errors.New("photo not found")

	// ErrStorageWrite marks a failed blob write.
	ErrStorageWrite = errors.New("blob write failed")

	// ErrStorageDelete marks a failed compensating blob delete.
	ErrStorageDelete = errors.New("blob delete failed")

	// ErrSigning marks a failed signed-URL issuance.
	ErrSigning = errors.New("signed url issuance failed")

	// ErrMetadataRead marks a transient record-store read failure.
	ErrMetadataRead = errors.New("metadata read failed")

	// ErrMetadataWrite marks a failed record-store write.
	ErrMetadataWrite = errors.New("metadata write failed")
)
