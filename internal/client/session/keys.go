// Package session owns the client-side authentication state: the stored
// bearer token, unverified claim decoding, profile reconciliation, the
// published session state, and the local login throttle.
package session

// Storage keys. Token and cached-profile names are kept compatible with the
// web client so a shared backend sees consistent diagnostics.
const (
	keyToken         = "skillswap_token"
	keyCachedProfile = "currentUser"
	keyRememberEmail = "remember_email"

	// Per-email throttle keys; the normalized email is appended.
	keyAttemptsPrefix   = "login_attempts:"
	keyBlockUntilPrefix = "login_block_until:"
)
