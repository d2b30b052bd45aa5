package api

import (
	"context"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

func (c *Client) ProposeExchange(ctx context.Context, proposal models.ExchangeProposal) (models.Exchange, error) {
	var out models.Exchange
	err := c.post(ctx, "/api/Intercambios", proposal, &out)
	return out, err
}

func (c *Client) ReceivedExchanges(ctx context.Context) ([]models.Exchange, error) {
	var out []models.Exchange
	err := c.get(ctx, "/api/Intercambios/recibidos", nil, &out)
	return out, err
}

func (c *Client) SentExchanges(ctx context.Context) ([]models.Exchange, error) {
	var out []models.Exchange
	err := c.get(ctx, "/api/Intercambios/enviados", nil, &out)
	return out, err
}

func (c *Client) AcceptExchange(ctx context.Context, id string) error {
	return c.post(ctx, "/api/Intercambios/"+id+"/aceptar", struct{}{}, nil)
}

func (c *Client) RejectExchange(ctx context.Context, id string) error {
	return c.post(ctx, "/api/Intercambios/"+id+"/rechazar", struct{}{}, nil)
}
