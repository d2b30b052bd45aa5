package services

import (
	"context"
	"strings"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/common"
)

type exchangeAPI interface {
	ProposeExchange(ctx context.Context, proposal models.ExchangeProposal) (models.Exchange, error)
	ReceivedExchanges(ctx context.Context) ([]models.Exchange, error)
	SentExchanges(ctx context.Context) ([]models.Exchange, error)
	AcceptExchange(ctx context.Context, id string) error
	RejectExchange(ctx context.Context, id string) error
}

// ExchangeService handles skill-for-skill exchange proposals.
type ExchangeService interface {
	Propose(ctx context.Context, proposal models.ExchangeProposal) (models.Exchange, error)
	Received(ctx context.Context) ([]models.Exchange, error)
	Sent(ctx context.Context) ([]models.Exchange, error)
	Accept(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}

type exchangeService struct {
	api exchangeAPI
}

func NewExchangeService(api exchangeAPI) ExchangeService {
	return &exchangeService{api: api}
}

func (s *exchangeService) Propose(ctx context.Context, proposal models.ExchangeProposal) (models.Exchange, error) {
	if err := checkStruct(proposal); err != nil {
		return models.Exchange{}, err
	}
	return s.api.ProposeExchange(ctx, proposal)
}

func (s *exchangeService) Received(ctx context.Context) ([]models.Exchange, error) {
	return s.api.ReceivedExchanges(ctx)
}

func (s *exchangeService) Sent(ctx context.Context) ([]models.Exchange, error) {
	return s.api.SentExchanges(ctx)
}

func (s *exchangeService) Accept(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return common.ErrValidation
	}
	return s.api.AcceptExchange(ctx, id)
}

func (s *exchangeService) Reject(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return common.ErrValidation
	}
	return s.api.RejectExchange(ctx, id)
}
