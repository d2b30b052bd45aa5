// Package common contains shared constants and sentinel errors used across
// SkillSwap client components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unreachable")

	// Coarse HTTP status mappings from the backend.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already processed")
	ErrValidation   = errors.New("invalid request")
	ErrServerFault  = errors.New("server fault")

	// Session errors.
	ErrSessionExpired = errors.New("session expired")
	ErrInvalidToken   = errors.New("invalid token")
	ErrNoSession      = errors.New("not logged in")

	// Login throttling (client-local, see session package).
	ErrLoginBlocked = errors.New("login temporarily blocked")
)
