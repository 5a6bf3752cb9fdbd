// Package errors provides sentinel errors for catalog operations.
package errors

import "errors"

var (
	// ErrProductNotFound is returned when no product exists for an id.
	ErrProductNotFound = errors.New("product not found")

	// ErrStoreUnavailable is returned when the persistent store cannot be
	// reached. Distinct from validation and not-found so callers can tell
	// client-fixable errors from backend outages.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUploadFailed is returned when the remote image host rejected an
	// upload or was unreachable.
	ErrUploadFailed = errors.New("image upload failed")
)
