package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/client/session"
	"github.com/skillswap/skillswap-cli/internal/common"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

// authAPI is the slice of the remote gateway the auth service needs.
type authAPI interface {
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)
	Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error)
	Profile(ctx context.Context) (models.UserProfile, error)
}

// AuthService defines the authentication operations exposed to the CLI.
//
// Contract:
//   - Login: throttle-check, authenticate, establish the session and refresh
//     the profile. Remembers the email locally when asked to.
//   - Register: create an account and log it in in one step.
//   - RefreshProfile: re-fetch the server profile for the active session.
//   - Logout: drop the token and publish the anonymous state.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials, remember bool) (*models.UserProfile, error)
	Register(ctx context.Context, reg models.Registration) (*models.UserProfile, error)
	RefreshProfile(ctx context.Context) (*models.UserProfile, error)
	Logout(ctx context.Context)
	RememberedEmail(ctx context.Context) string
}

type authService struct {
	api      authAPI
	sessions *session.Manager
	lockout  *session.Lockout
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given gateway and
// session manager.
func NewAuthService(api authAPI, sessions *session.Manager, lockout *session.Lockout, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &authService{api: api, sessions: sessions, lockout: lockout, log: log}
}

// Login authenticates against the server. Failed attempts count toward a
// per-email block; a blocked email is rejected locally without a network
// round trip. The block is a UX throttle, the server stays authoritative.
func (a *authService) Login(ctx context.Context, creds models.Credentials, remember bool) (*models.UserProfile, error) {
	creds.Email = strings.TrimSpace(strings.ToLower(creds.Email))
	if err := checkStruct(creds); err != nil {
		return nil, err
	}

	if until, blocked := a.lockout.BlockedUntil(ctx, creds.Email); blocked {
		return nil, fmt.Errorf("%w: intenta de nuevo en %s",
			common.ErrLoginBlocked, time.Until(until).Round(time.Second))
	}

	a.sessions.BeginLoading()

	resp, err := a.api.Login(ctx, creds)
	if err != nil {
		a.sessions.FailLoading()
		if errors.Is(err, common.ErrUnauthorized) {
			count, blocked := a.lockout.RecordFailure(ctx, creds.Email)
			if blocked {
				return nil, fmt.Errorf("%w: demasiados intentos fallidos", common.ErrLoginBlocked)
			}
			return nil, fmt.Errorf("%w: intento %d de %d", err, count, session.MaxLoginAttempts)
		}
		return nil, err
	}

	a.lockout.Reset(ctx, creds.Email)

	if err := a.sessions.EstablishSession(ctx, resp); err != nil {
		return nil, err
	}

	if remember {
		a.sessions.RememberEmail(ctx, creds.Email)
	} else {
		a.sessions.ForgetEmail(ctx)
	}

	// Best effort: the login payload can be partial, the profile endpoint
	// returns the full record.
	if full, perr := a.api.Profile(ctx); perr == nil {
		a.sessions.ApplyUser(ctx, full)
	} else {
		a.log.Debug(ctx, "profile refresh after login failed", "error", perr)
	}

	return a.sessions.CurrentUser(), nil
}

// Register creates the account and establishes the session from the same
// response, mirroring Login.
func (a *authService) Register(ctx context.Context, reg models.Registration) (*models.UserProfile, error) {
	reg.Email = strings.TrimSpace(strings.ToLower(reg.Email))
	if err := checkStruct(reg); err != nil {
		return nil, err
	}

	a.sessions.BeginLoading()

	resp, err := a.api.Register(ctx, reg)
	if err != nil {
		a.sessions.FailLoading()
		return nil, err
	}

	if err := a.sessions.EstablishSession(ctx, resp); err != nil {
		return nil, err
	}
	return a.sessions.CurrentUser(), nil
}

// RefreshProfile re-reads the authoritative profile and republishes it.
func (a *authService) RefreshProfile(ctx context.Context) (*models.UserProfile, error) {
	if !a.sessions.IsLoggedIn(ctx) {
		return nil, common.ErrNoSession
	}

	full, err := a.api.Profile(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			a.sessions.Logout(ctx)
			return nil, fmt.Errorf("%w: %w", common.ErrSessionExpired, err)
		}
		return nil, err
	}

	u := a.sessions.ApplyUser(ctx, full)
	return &u, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.sessions.Logout(ctx)
}

func (a *authService) RememberedEmail(ctx context.Context) string {
	return a.sessions.RememberedEmail(ctx)
}
