package session

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/skillswap/skillswap-cli/internal/client/storage"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

const (
	// MaxLoginAttempts consecutive failures trigger a block.
	MaxLoginAttempts = 3
	// LockoutWindow is how long further attempts are refused locally.
	LockoutWindow = 15 * time.Minute
)

// Lockout is a client-local login throttle: after MaxLoginAttempts
// consecutive authentication failures for the same email, further attempts
// are refused for LockoutWindow without a network call.
//
// This is a UX throttle, not a security control: the counters live in local
// storage and are trivially reset by clearing it. Real rate limiting is the
// backend's job. Accordingly, storage failures here degrade to "not blocked".
type Lockout struct {
	store storage.Store
	log   logging.Logger
	now   func() time.Time
}

func NewLockout(store storage.Store, log logging.Logger) *Lockout {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Lockout{store: store, log: log, now: time.Now}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BlockedUntil reports whether login attempts for email are currently
// refused, and until when. An expired block is cleared on the way out.
func (l *Lockout) BlockedUntil(ctx context.Context, email string) (time.Time, bool) {
	if l.store == nil {
		return time.Time{}, false
	}
	email = normalizeEmail(email)

	raw, err := l.store.Get(ctx, keyBlockUntilPrefix+email)
	if err != nil {
		l.log.Error(ctx, "failed to read login block", "error", err)
		return time.Time{}, false
	}
	if raw == nil {
		return time.Time{}, false
	}

	until, err := time.Parse(time.RFC3339, string(raw))
	if err != nil {
		l.log.Warn(ctx, "malformed login block timestamp, resetting", "value", string(raw))
		l.Reset(ctx, email)
		return time.Time{}, false
	}

	if l.now().After(until) {
		l.Reset(ctx, email)
		return time.Time{}, false
	}
	return until, true
}

// RecordFailure increments the consecutive-failure counter for email and,
// at the threshold, writes the block timestamp. Returns the updated count
// and whether the email just became blocked.
func (l *Lockout) RecordFailure(ctx context.Context, email string) (int, bool) {
	if l.store == nil {
		return 0, false
	}
	email = normalizeEmail(email)

	count := l.attempts(ctx, email) + 1
	if count < MaxLoginAttempts {
		if err := l.store.Set(ctx, keyAttemptsPrefix+email, []byte(strconv.Itoa(count))); err != nil {
			l.log.Error(ctx, "failed to record login failure", "error", err)
		}
		return count, false
	}

	// Counter and block timestamp land together, so a crash in between can
	// not leave a tripped counter without its block.
	until := l.now().Add(LockoutWindow)
	err := l.store.SetMany(ctx, map[string][]byte{
		keyAttemptsPrefix+email:   []byte(strconv.Itoa(count)),
		keyBlockUntilPrefix+email: []byte(until.Format(time.RFC3339)),
	})
	if err != nil {
		l.log.Error(ctx, "failed to write login block", "error", err)
	}
	return count, true
}

// Reset clears the counter and block for email, on successful login or
// block-window expiry.
func (l *Lockout) Reset(ctx context.Context, email string) {
	if l.store == nil {
		return
	}
	email = normalizeEmail(email)

	if err := l.store.Delete(ctx, keyAttemptsPrefix+email); err != nil {
		l.log.Error(ctx, "failed to reset login attempts", "error", err)
	}
	if err := l.store.Delete(ctx, keyBlockUntilPrefix+email); err != nil {
		l.log.Error(ctx, "failed to reset login block", "error", err)
	}
}

func (l *Lockout) attempts(ctx context.Context, email string) int {
	raw, err := l.store.Get(ctx, keyAttemptsPrefix+email)
	if err != nil {
		l.log.Error(ctx, "failed to read login attempts", "error", err)
		return 0
	}
	if raw == nil {
		return 0
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0
	}
	return n
}
