package api

import (
	"context"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

// CreateTransaction starts a purchase with the payment gateway source id.
func (c *Client) CreateTransaction(ctx context.Context, req models.TransactionRequest) (models.TransactionResponse, error) {
	var out models.TransactionResponse
	err := c.post(ctx, "/api/Payments/create-transaction", req, &out)
	return out, err
}
