package services

import (
	"context"
	"strings"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/common"
)

type requestAPI interface {
	SentRequests(ctx context.Context) ([]models.SessionRequest, error)
	ReceivedRequests(ctx context.Context) ([]models.SessionRequest, error)
	AcceptRequest(ctx context.Context, requestID string) (models.SessionRequest, error)
	RejectRequest(ctx context.Context, requestID string, payload models.RejectRequestPayload) (models.SessionRequest, error)
}

// RequestService manages join requests from both sides: the student who sent
// them and the mentor who decides on them.
type RequestService interface {
	Sent(ctx context.Context) ([]models.SessionRequest, error)
	Received(ctx context.Context) ([]models.SessionRequest, error)
	Accept(ctx context.Context, requestID string) (models.SessionRequest, error)
	Reject(ctx context.Context, requestID, reason string) (models.SessionRequest, error)
}

type requestService struct {
	api requestAPI
}

func NewRequestService(api requestAPI) RequestService {
	return &requestService{api: api}
}

func (s *requestService) Sent(ctx context.Context) ([]models.SessionRequest, error) {
	return s.api.SentRequests(ctx)
}

func (s *requestService) Received(ctx context.Context) ([]models.SessionRequest, error) {
	return s.api.ReceivedRequests(ctx)
}

func (s *requestService) Accept(ctx context.Context, requestID string) (models.SessionRequest, error) {
	if strings.TrimSpace(requestID) == "" {
		return models.SessionRequest{}, common.ErrValidation
	}
	return s.api.AcceptRequest(ctx, requestID)
}

func (s *requestService) Reject(ctx context.Context, requestID, reason string) (models.SessionRequest, error) {
	if strings.TrimSpace(requestID) == "" {
		return models.SessionRequest{}, common.ErrValidation
	}
	return s.api.RejectRequest(ctx, requestID, models.RejectRequestPayload{Reason: reason})
}
