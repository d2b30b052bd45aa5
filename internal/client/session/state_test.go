package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

func TestPublisher_ColdStartIsAnonymous(t *testing.T) {
	p := NewPublisher()
	require.Equal(t, State{IsLoading: false, User: nil, IsAuthenticated: false}, p.Current())
}

func TestPublisher_SubscribeReplaysLastValue(t *testing.T) {
	p := NewPublisher()
	u := &models.UserProfile{ID: "u1"}
	p.Transition(false, u, true)

	var got []State
	p.Subscribe(func(s State) { got = append(got, s) })

	require.Len(t, got, 1, "late subscriber gets exactly the latest state, not history")
	require.Equal(t, u, got[0].User)
	require.True(t, got[0].IsAuthenticated)
}

func TestPublisher_BroadcastInRegistrationOrder(t *testing.T) {
	p := NewPublisher()

	var order []string
	p.Subscribe(func(State) { order = append(order, "first") })
	p.Subscribe(func(State) { order = append(order, "second") })
	order = order[:0]

	p.Transition(true, nil, false)
	require.Equal(t, []string{"first", "second"}, order)
}

func TestPublisher_EveryTransitionBroadcast(t *testing.T) {
	p := NewPublisher()

	var states []State
	p.Subscribe(func(s State) { states = append(states, s) })

	u := &models.UserProfile{ID: "u1"}
	p.Transition(true, nil, false)  // loading
	p.Transition(false, u, true)    // authenticated
	p.Transition(false, u, true)    // profile refresh, flag unchanged
	p.Transition(false, nil, false) // logout

	require.Len(t, states, 5) // replay + 4 transitions
	require.True(t, states[1].IsLoading)
	require.True(t, states[2].IsAuthenticated)
	require.True(t, states[3].IsAuthenticated)
	require.False(t, states[4].IsAuthenticated)
	require.Nil(t, states[4].User)
}

func TestPublisher_NilUserForcesUnauthenticated(t *testing.T) {
	p := NewPublisher()
	p.Transition(false, nil, true)

	s := p.Current()
	require.False(t, s.IsAuthenticated, "authenticated implies user != nil")
	require.Nil(t, s.User)
}
