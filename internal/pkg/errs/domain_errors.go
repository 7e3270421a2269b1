package errs

import "errors"

// Category sentinels shared across layers. Domain and usecase errors are marked with one of
// these so boundary code can classify without knowing concrete types.
var (
	// Caller must re-read current state and retry with corrected input
	ErrConflict = errors.New("conflict")

	// Logically invalid request given current aggregate state
	ErrStateGuard = errors.New("state guard violated")

	// Malformed caller input
	ErrValidation = errors.New("validation failed")

	ErrUnauthorized = errors.New("missing permission")
	ErrNotFound     = errors.New("not found")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
