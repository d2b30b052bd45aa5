package services

import (
	"context"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

type paymentAPI interface {
	CreateTransaction(ctx context.Context, req models.TransactionRequest) (models.TransactionResponse, error)
}

// PaymentService starts payment transactions for paid sessions.
type PaymentService interface {
	CreateTransaction(ctx context.Context, req models.TransactionRequest) (models.TransactionResponse, error)
}

type paymentService struct {
	api paymentAPI
}

func NewPaymentService(api paymentAPI) PaymentService {
	return &paymentService{api: api}
}

func (s *paymentService) CreateTransaction(ctx context.Context, req models.TransactionRequest) (models.TransactionResponse, error) {
	if err := checkStruct(req); err != nil {
		return models.TransactionResponse{}, err
	}
	return s.api.CreateTransaction(ctx, req)
}
