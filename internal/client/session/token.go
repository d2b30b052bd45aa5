package session

import (
	"context"

	"github.com/skillswap/skillswap-cli/internal/client/storage"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

// TokenStore persists the opaque bearer token in the local store. All
// operations degrade gracefully: with no backing store every call is a no-op
// (Read returns ""), and storage errors are logged and treated as absence —
// a failed read never propagates, it just produces an unauthenticated state.
type TokenStore struct {
	store storage.Store
	log   logging.Logger
}

// NewTokenStore builds a TokenStore. store may be nil when no durable
// storage is available; the result is then a functional no-op.
func NewTokenStore(store storage.Store, log logging.Logger) *TokenStore {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &TokenStore{store: store, log: log}
}

// Save writes the token. Errors are swallowed and logged.
func (t *TokenStore) Save(ctx context.Context, token string) {
	if t.store == nil {
		return
	}
	if err := t.store.Set(ctx, keyToken, []byte(token)); err != nil {
		t.log.Error(ctx, "failed to save token", "error", err)
	}
}

// Read returns the stored token, or "" when absent or unreadable.
func (t *TokenStore) Read(ctx context.Context) string {
	if t.store == nil {
		return ""
	}
	v, err := t.store.Get(ctx, keyToken)
	if err != nil {
		t.log.Error(ctx, "failed to read token", "error", err)
		return ""
	}
	return string(v)
}

// Clear removes the stored token. Errors are swallowed and logged.
func (t *TokenStore) Clear(ctx context.Context) {
	if t.store == nil {
		return
	}
	if err := t.store.Delete(ctx, keyToken); err != nil {
		t.log.Error(ctx, "failed to clear token", "error", err)
	}
}
