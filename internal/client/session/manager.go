package session

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/client/storage"
	"github.com/skillswap/skillswap-cli/internal/common"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

// Manager reconciles the three sources of identity (decoded token, cached
// profile, live server responses) into the published session state. It owns
// the canonical State through its Publisher and is the only writer of the
// token and cached-profile storage keys.
//
// The web client historically carried two competing implementations of this
// logic; this is the unified superset of both.
type Manager struct {
	tokens *TokenStore
	store  storage.Store
	pub    *Publisher
	log    logging.Logger
}

// NewManager wires a Manager over the given store. store may be nil, in
// which case every durable operation degrades to a no-op and sessions only
// live in memory.
func NewManager(store storage.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Manager{
		tokens: NewTokenStore(store, log),
		store:  store,
		pub:    NewPublisher(),
		log:    log,
	}
}

// Tokens exposes the token store for direct readers (the HTTP transport
// reads it independently of the published state).
func (m *Manager) Tokens() *TokenStore { return m.tokens }

// Subscribe registers a session-state observer; the current state is
// replayed to it immediately.
func (m *Manager) Subscribe(fn func(State)) { m.pub.Subscribe(fn) }

// Current returns the last published session state.
func (m *Manager) Current() State { return m.pub.Current() }

// Initialize restores the session from the stored token at startup.
//
// No token: publish anonymous. Token that fails to decode: clear token and
// cached profile, publish anonymous. Otherwise: derive the base identity
// from the claims, overlay the cached profile when the identifiers match
// (discarding the cache when they do not), and publish authenticated.
func (m *Manager) Initialize(ctx context.Context) {
	token := m.tokens.Read(ctx)
	if token == "" {
		m.log.Debug(ctx, "no stored token, starting anonymous")
		m.pub.Transition(false, nil, false)
		return
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		m.log.Warn(ctx, "stored token is not decodable, resetting session", "error", err)
		m.tokens.Clear(ctx)
		m.clearCachedProfile(ctx)
		m.pub.Transition(false, nil, false)
		return
	}

	base := claims.BaseProfile()
	user := m.overlayCached(ctx, base)

	m.log.Info(ctx, "session restored", "user_id", user.ID, "mentor", user.IsMentor)
	m.pub.Transition(false, &user, true)
}

// EstablishSession applies a successful login/registration response:
// persists the token, reconciles the response profile with any cached one,
// and publishes the authenticated state. A response without a token is
// invalid and forces a logout.
func (m *Manager) EstablishSession(ctx context.Context, resp models.AuthResponse) error {
	if resp.Token == "" {
		m.Logout(ctx)
		return fmt.Errorf("auth response carries no token: %w", common.ErrInvalidToken)
	}

	m.tokens.Save(ctx, resp.Token)
	user := m.overlayCached(ctx, resp.User)
	m.pub.Transition(false, &user, true)
	return nil
}

// ApplyUser overwrites the session's user with a fresh profile (server
// response or local edit), after running the mentor normalization. The
// result is persisted as the cached profile and published; the
// authentication flag is unchanged.
func (m *Manager) ApplyUser(ctx context.Context, user models.UserProfile) models.UserProfile {
	normalized := user.Normalized()
	m.saveCachedProfile(ctx, normalized)

	cur := m.pub.Current()
	m.pub.Transition(cur.IsLoading, &normalized, cur.IsAuthenticated)
	return normalized
}

// BeginLoading marks an outstanding login/registration/refresh.
func (m *Manager) BeginLoading() {
	m.pub.Transition(true, nil, false)
}

// FailLoading resets to anonymous after a failed credential exchange.
func (m *Manager) FailLoading() {
	m.pub.Transition(false, nil, false)
}

// Logout clears the stored token and publishes the anonymous state. The
// cached profile is intentionally left in place, matching the observed
// behavior of the web client; Reconcile's identifier guard protects a later
// login by a different account.
func (m *Manager) Logout(ctx context.Context) {
	m.tokens.Clear(ctx)
	m.pub.Transition(false, nil, false)
}

// CurrentUser returns the published user, or nil when anonymous.
func (m *Manager) CurrentUser() *models.UserProfile {
	return m.pub.Current().User
}

// IsLoggedIn requires both a stored token and a published authenticated
// state. The two can transiently disagree (the token store is shared mutable
// state read directly by the transport); requiring both is the conservative
// answer.
func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	return m.tokens.Read(ctx) != "" && m.pub.Current().IsAuthenticated
}

// HasMentorAccess reports whether the current user may use mentor-only
// operations.
func (m *Manager) HasMentorAccess() bool {
	u := m.CurrentUser()
	return u != nil && u.HasMentorAccess()
}

// RememberEmail persists the login email after explicit opt-in.
func (m *Manager) RememberEmail(ctx context.Context, email string) {
	if m.store == nil {
		return
	}
	if err := m.store.Set(ctx, keyRememberEmail, []byte(email)); err != nil {
		m.log.Error(ctx, "failed to remember email", "error", err)
	}
}

// RememberedEmail returns the opted-in login email, or "".
func (m *Manager) RememberedEmail(ctx context.Context) string {
	if m.store == nil {
		return ""
	}
	v, err := m.store.Get(ctx, keyRememberEmail)
	if err != nil {
		m.log.Error(ctx, "failed to read remembered email", "error", err)
		return ""
	}
	return string(v)
}

// ForgetEmail clears the remembered login email after explicit opt-out.
func (m *Manager) ForgetEmail(ctx context.Context) {
	if m.store == nil {
		return
	}
	if err := m.store.Delete(ctx, keyRememberEmail); err != nil {
		m.log.Error(ctx, "failed to forget email", "error", err)
	}
}

// overlayCached merges the cached profile into base via Reconcile and, when
// the cache belonged to a different identity, deletes it to prevent identity
// bleed across accounts sharing this machine.
func (m *Manager) overlayCached(ctx context.Context, base models.UserProfile) models.UserProfile {
	cached := m.loadCachedProfile(ctx)
	if cached != nil && cached.ID != base.ID {
		m.log.Warn(ctx, "cached profile belongs to a different account, discarding",
			"cached_id", cached.ID, "session_id", base.ID)
		m.clearCachedProfile(ctx)
	}
	return Reconcile(base, cached)
}

func (m *Manager) loadCachedProfile(ctx context.Context) *models.UserProfile {
	if m.store == nil {
		return nil
	}
	raw, err := m.store.Get(ctx, keyCachedProfile)
	if err != nil {
		m.log.Error(ctx, "failed to load cached profile", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}
	var u models.UserProfile
	if err := json.Unmarshal(raw, &u); err != nil {
		m.log.Warn(ctx, "cached profile is not parseable, discarding", "error", err)
		m.clearCachedProfile(ctx)
		return nil
	}
	return &u
}

func (m *Manager) saveCachedProfile(ctx context.Context, u models.UserProfile) {
	if m.store == nil {
		return
	}
	raw, err := json.Marshal(u)
	if err != nil {
		m.log.Error(ctx, "failed to serialize profile", "error", err)
		return
	}
	if err := m.store.Set(ctx, keyCachedProfile, raw); err != nil {
		m.log.Error(ctx, "failed to save cached profile", "error", err)
	}
}

func (m *Manager) clearCachedProfile(ctx context.Context) {
	if m.store == nil {
		return
	}
	if err := m.store.Delete(ctx, keyCachedProfile); err != nil {
		m.log.Error(ctx, "failed to clear cached profile", "error", err)
	}
}
