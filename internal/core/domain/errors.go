package domain

import "errors"

var (
	// ErrInvalidCredentials covers wrong email/password and any condition
	// that must be indistinguishable from it (no enumeration).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound means the presented token has no live session
	// record: never issued, or expired out of the store.
	ErrSessionNotFound = errors.New("session not found")

	// ErrStoreUnavailable marks an I/O failure talking to the session or
	// credential store. Distinct from auth failures so an outage is never
	// reported as a bad login.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrForbidden means the session is valid but does not own the
	// requested resource.
	ErrForbidden = errors.New("forbidden")

	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user already exists")
	ErrRecognitionFailed = errors.New("recognition failed")
)
