package session

import (
	"sync"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

// State is the authoritative runtime record of who is logged in.
// Invariant: IsAuthenticated implies User != nil.
type State struct {
	IsLoading       bool
	User            *models.UserProfile
	IsAuthenticated bool
}

// Publisher holds the current State and broadcasts every transition to all
// subscribers in registration order. Late subscribers immediately receive
// the most recent state (replay-last-value), not a historical stream.
//
// The publisher is owned by the Manager; components receive it by reference
// from the composition root, never through a package-level singleton.
type Publisher struct {
	mu    sync.RWMutex
	state State
	subs  []func(State)
}

// NewPublisher starts in the anonymous cold-start state.
func NewPublisher() *Publisher {
	return &Publisher{state: State{IsLoading: false, User: nil, IsAuthenticated: false}}
}

// Current returns the most recently published state.
func (p *Publisher) Current() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Subscribe registers fn and immediately replays the current state to it.
func (p *Publisher) Subscribe(fn func(State)) {
	p.mu.Lock()
	p.subs = append(p.subs, fn)
	last := p.state
	p.mu.Unlock()

	fn(last)
}

// Transition publishes a new state to every subscriber. When user is nil the
// authenticated flag is forced off to uphold the State invariant. Transitions
// apply in the order their triggering operations complete; with concurrent
// logins the last response to resolve wins.
func (p *Publisher) Transition(isLoading bool, user *models.UserProfile, isAuthenticated bool) {
	if user == nil {
		isAuthenticated = false
	}

	p.mu.Lock()
	p.state = State{IsLoading: isLoading, User: user, IsAuthenticated: isAuthenticated}
	next := p.state
	subs := make([]func(State), len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}
