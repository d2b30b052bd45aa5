package session

import "github.com/skillswap/skillswap-cli/internal/client/models"

// Reconcile merges the token-derived base identity with a previously cached
// full profile. The cached profile wins field-wise, but only when its
// identifier exactly matches the base identity — a cached profile left behind
// by a different account on the same machine must never bleed into this
// session, so on mismatch (or with no cache) the base identity is returned
// unchanged.
func Reconcile(base models.UserProfile, cached *models.UserProfile) models.UserProfile {
	if cached == nil || cached.ID != base.ID {
		return base
	}
	return base.MergeCached(*cached)
}
