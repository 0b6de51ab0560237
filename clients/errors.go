package clients

import "errors"

var (
	// ErrStorageUnavailable means the store could not be opened or is no
	// longer usable (closed or reset). Initialize again to recover.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrWriteFailed means a create or delete was not durably applied.
	// Nothing changed in memory.
	ErrWriteFailed = errors.New("write failed")

	ErrNotFound = errors.New("client not found")
)
