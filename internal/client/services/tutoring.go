package services

import (
	"context"
	"strings"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/common"
)

type tutoringAPI interface {
	CreateSession(ctx context.Context, payload models.CreateSessionPayload) (models.TutoringSession, error)
	SearchSessions(ctx context.Context, q models.SearchSessionsQuery) (models.SessionSearchResult, error)
	MySessions(ctx context.Context) ([]models.TutoringSession, error)
	GetSession(ctx context.Context, id string) (models.TutoringSession, error)
	TodaySessions(ctx context.Context) ([]models.TutoringSession, error)
	RequestJoin(ctx context.Context, sessionID string, payload models.JoinRequestPayload) (models.SessionRequest, error)
	HasExistingRequest(ctx context.Context, sessionID string) (bool, error)
	SessionRequests(ctx context.Context, sessionID string) ([]models.SessionRequest, error)
	RateSession(ctx context.Context, sessionID string, payload models.RatingPayload) (models.Rating, error)
	SessionRatings(ctx context.Context, sessionID string) ([]models.Rating, error)
	CancelSession(ctx context.Context, id string) error
}

// TutoringService exposes the tutoring marketplace to the CLI.
type TutoringService interface {
	Create(ctx context.Context, payload models.CreateSessionPayload) (models.TutoringSession, error)
	Search(ctx context.Context, q models.SearchSessionsQuery) (models.SessionSearchResult, error)
	Mine(ctx context.Context) ([]models.TutoringSession, error)
	Get(ctx context.Context, id string) (models.TutoringSession, error)
	Today(ctx context.Context) ([]models.TutoringSession, error)
	RequestJoin(ctx context.Context, sessionID, message string) (models.SessionRequest, error)
	HasExistingRequest(ctx context.Context, sessionID string) (bool, error)
	Requests(ctx context.Context, sessionID string) ([]models.SessionRequest, error)
	Rate(ctx context.Context, sessionID string, payload models.RatingPayload) (models.Rating, error)
	Ratings(ctx context.Context, sessionID string) ([]models.Rating, error)
	Cancel(ctx context.Context, id string) error
}

type tutoringService struct {
	api tutoringAPI
}

func NewTutoringService(api tutoringAPI) TutoringService {
	return &tutoringService{api: api}
}

func (s *tutoringService) Create(ctx context.Context, payload models.CreateSessionPayload) (models.TutoringSession, error) {
	if err := checkStruct(payload); err != nil {
		return models.TutoringSession{}, err
	}
	return s.api.CreateSession(ctx, payload)
}

func (s *tutoringService) Search(ctx context.Context, q models.SearchSessionsQuery) (models.SessionSearchResult, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 20
	}
	return s.api.SearchSessions(ctx, q)
}

func (s *tutoringService) Mine(ctx context.Context) ([]models.TutoringSession, error) {
	return s.api.MySessions(ctx)
}

func (s *tutoringService) Get(ctx context.Context, id string) (models.TutoringSession, error) {
	if strings.TrimSpace(id) == "" {
		return models.TutoringSession{}, common.ErrValidation
	}
	return s.api.GetSession(ctx, id)
}

func (s *tutoringService) Today(ctx context.Context) ([]models.TutoringSession, error) {
	return s.api.TodaySessions(ctx)
}

// RequestJoin checks for an existing pending request first so the user gets
// a clear local error instead of the server's conflict response.
func (s *tutoringService) RequestJoin(ctx context.Context, sessionID, message string) (models.SessionRequest, error) {
	if strings.TrimSpace(sessionID) == "" {
		return models.SessionRequest{}, common.ErrValidation
	}

	exists, err := s.api.HasExistingRequest(ctx, sessionID)
	if err == nil && exists {
		return models.SessionRequest{}, common.ErrConflict
	}

	return s.api.RequestJoin(ctx, sessionID, models.JoinRequestPayload{Message: message})
}

func (s *tutoringService) HasExistingRequest(ctx context.Context, sessionID string) (bool, error) {
	return s.api.HasExistingRequest(ctx, sessionID)
}

func (s *tutoringService) Requests(ctx context.Context, sessionID string) ([]models.SessionRequest, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, common.ErrValidation
	}
	return s.api.SessionRequests(ctx, sessionID)
}

func (s *tutoringService) Rate(ctx context.Context, sessionID string, payload models.RatingPayload) (models.Rating, error) {
	if strings.TrimSpace(sessionID) == "" {
		return models.Rating{}, common.ErrValidation
	}
	if err := checkStruct(payload); err != nil {
		return models.Rating{}, err
	}
	return s.api.RateSession(ctx, sessionID, payload)
}

func (s *tutoringService) Ratings(ctx context.Context, sessionID string) ([]models.Rating, error) {
	return s.api.SessionRatings(ctx, sessionID)
}

func (s *tutoringService) Cancel(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return common.ErrValidation
	}
	return s.api.CancelSession(ctx, id)
}
