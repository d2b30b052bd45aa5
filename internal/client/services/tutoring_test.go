package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/common"
)

type fakeTutoringAPI struct {
	searchQuery  models.SearchSessionsQuery
	searchResp   models.SessionSearchResult
	hasRequest   bool
	hasErr       error
	joinCalls    int
	joinResp     models.SessionRequest
	createResp   models.TutoringSession
	createCalled bool
}

func (f *fakeTutoringAPI) CreateSession(ctx context.Context, p models.CreateSessionPayload) (models.TutoringSession, error) {
	f.createCalled = true
	return f.createResp, nil
}

func (f *fakeTutoringAPI) SearchSessions(ctx context.Context, q models.SearchSessionsQuery) (models.SessionSearchResult, error) {
	f.searchQuery = q
	return f.searchResp, nil
}

func (f *fakeTutoringAPI) MySessions(ctx context.Context) ([]models.TutoringSession, error) {
	return nil, nil
}

func (f *fakeTutoringAPI) GetSession(ctx context.Context, id string) (models.TutoringSession, error) {
	return models.TutoringSession{ID: id}, nil
}

func (f *fakeTutoringAPI) TodaySessions(ctx context.Context) ([]models.TutoringSession, error) {
	return nil, nil
}

func (f *fakeTutoringAPI) RequestJoin(ctx context.Context, sessionID string, p models.JoinRequestPayload) (models.SessionRequest, error) {
	f.joinCalls++
	return f.joinResp, nil
}

func (f *fakeTutoringAPI) HasExistingRequest(ctx context.Context, sessionID string) (bool, error) {
	return f.hasRequest, f.hasErr
}

func (f *fakeTutoringAPI) SessionRequests(ctx context.Context, sessionID string) ([]models.SessionRequest, error) {
	return nil, nil
}

func (f *fakeTutoringAPI) RateSession(ctx context.Context, sessionID string, p models.RatingPayload) (models.Rating, error) {
	return models.Rating{Score: p.Score}, nil
}

func (f *fakeTutoringAPI) SessionRatings(ctx context.Context, sessionID string) ([]models.Rating, error) {
	return nil, nil
}

func (f *fakeTutoringAPI) CancelSession(ctx context.Context, id string) error { return nil }

func TestTutoringService_CreateValidation(t *testing.T) {
	api := &fakeTutoringAPI{}
	svc := NewTutoringService(api)

	_, err := svc.Create(context.Background(), models.CreateSessionPayload{Title: "x"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.False(t, api.createCalled)
}

func TestTutoringService_SearchDefaultsPagination(t *testing.T) {
	api := &fakeTutoringAPI{}
	svc := NewTutoringService(api)

	_, err := svc.Search(context.Background(), models.SearchSessionsQuery{Subject: "Cálculo"})
	require.NoError(t, err)
	assert.Equal(t, 1, api.searchQuery.Page)
	assert.Equal(t, 20, api.searchQuery.PageSize)
}

func TestTutoringService_RequestJoinDuplicate(t *testing.T) {
	api := &fakeTutoringAPI{hasRequest: true}
	svc := NewTutoringService(api)

	_, err := svc.RequestJoin(context.Background(), "t1", "hola")
	require.ErrorIs(t, err, common.ErrConflict)
	assert.Zero(t, api.joinCalls, "duplicate requests are stopped locally")
}

func TestTutoringService_RequestJoin(t *testing.T) {
	api := &fakeTutoringAPI{joinResp: models.SessionRequest{ID: "r1", Status: models.RequestStatusPending}}
	svc := NewTutoringService(api)

	req, err := svc.RequestJoin(context.Background(), "t1", "hola")
	require.NoError(t, err)
	assert.Equal(t, "r1", req.ID)
	assert.Equal(t, 1, api.joinCalls)
}

func TestTutoringService_RequestJoinDespiteCheckFailure(t *testing.T) {
	// The duplicate pre-check is best effort; the server still enforces it.
	api := &fakeTutoringAPI{hasErr: common.ErrUnavailable}
	svc := NewTutoringService(api)

	_, err := svc.RequestJoin(context.Background(), "t1", "")
	require.NoError(t, err)
	assert.Equal(t, 1, api.joinCalls)
}

func TestTutoringService_EmptyIDs(t *testing.T) {
	svc := NewTutoringService(&fakeTutoringAPI{})
	ctx := context.Background()

	_, err := svc.Get(ctx, " ")
	require.ErrorIs(t, err, common.ErrValidation)
	err = svc.Cancel(ctx, "")
	require.ErrorIs(t, err, common.ErrValidation)
	_, err = svc.Requests(ctx, "")
	require.ErrorIs(t, err, common.ErrValidation)
}
