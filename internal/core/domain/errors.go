package domain

import "errors"

// Error taxonomy shared by every layer. The HTTP error handler is the single
// place where these sentinels become status codes; handler and service logic
// only ever wraps or matches them with errors.Is.
var (
	// ErrUnauthenticated covers a missing, malformed, expired or revoked
	// bearer token, including any failure to reach the auth service.
	ErrUnauthenticated = errors.New("missing or invalid credentials")

	// ErrForbidden means the identity is valid but lacks the required role,
	// including the case where no profile row exists for it.
	ErrForbidden = errors.New("insufficient privileges")

	ErrJournalNotFound = errors.New("journal not found")
	ErrUserNotFound    = errors.New("user not found")

	// ErrInvalidRole rejects role values outside {"user", "admin"} before any
	// database call is made.
	ErrInvalidRole = errors.New("invalid role")

	// ErrEmptyUpdate rejects a partial update that names no fields at all.
	ErrEmptyUpdate = errors.New("no fields to update")
)
