package services

import (
	"context"
	"sync"
	"time"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/client/session"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

type notificationAPI interface {
	ReceivedRequests(ctx context.Context) ([]models.SessionRequest, error)
}

// Notifier polls the received join requests and reports requests that turned
// pending since the previous poll. Polling only runs while a session is
// active; network failures are logged and retried on the next tick.
type Notifier struct {
	api      notificationAPI
	sessions *session.Manager
	log      logging.Logger

	mu   sync.Mutex
	seen map[string]struct{}
}

func NewNotifier(api notificationAPI, sessions *session.Manager, log logging.Logger) *Notifier {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Notifier{api: api, sessions: sessions, log: log, seen: map[string]struct{}{}}
}

// Start polls every interval until ctx is cancelled, invoking notify with
// each newly observed pending request. The first poll primes the seen set
// without notifying, so a fresh start does not replay old requests.
func (n *Notifier) Start(ctx context.Context, interval time.Duration, notify func(models.SessionRequest)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	primed := false

	for {
		select {
		case <-ticker.C:
			if !n.sessions.IsLoggedIn(ctx) || !n.sessions.HasMentorAccess() {
				n.resetSeen()
				primed = false
				continue
			}

			pollCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			fresh, err := n.Poll(pollCtx, !primed)
			cancel()
			if err != nil {
				n.log.Debug(ctx, "notification poll failed", "error", err)
				continue
			}
			primed = true

			for _, req := range fresh {
				notify(req)
			}

		case <-ctx.Done():
			return
		}
	}
}

// Poll fetches the received requests and returns the pending ones not seen
// before. With prime set, the seen set is filled but nothing is returned.
func (n *Notifier) Poll(ctx context.Context, prime bool) ([]models.SessionRequest, error) {
	reqs, err := n.api.ReceivedRequests(ctx)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	var fresh []models.SessionRequest
	for _, req := range reqs {
		if req.Status != models.RequestStatusPending {
			continue
		}
		if _, ok := n.seen[req.ID]; ok {
			continue
		}
		n.seen[req.ID] = struct{}{}
		if !prime {
			fresh = append(fresh, req)
		}
	}
	return fresh, nil
}

func (n *Notifier) resetSeen() {
	n.mu.Lock()
	n.seen = map[string]struct{}{}
	n.mu.Unlock()
}
