package api

import (
	"context"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

// SentRequests lists seat requests the current user sent as a student.
func (c *Client) SentRequests(ctx context.Context) ([]models.SessionRequest, error) {
	var out []models.SessionRequest
	err := c.get(ctx, "/api/Solicitudes/enviadas", nil, &out)
	return out, err
}

// ReceivedRequests lists seat requests received for the current mentor's
// sessions.
func (c *Client) ReceivedRequests(ctx context.Context) ([]models.SessionRequest, error) {
	var out []models.SessionRequest
	err := c.get(ctx, "/api/Solicitudes/recibidas", nil, &out)
	return out, err
}

func (c *Client) AcceptRequest(ctx context.Context, requestID string) (models.SessionRequest, error) {
	var out models.SessionRequest
	err := c.post(ctx, "/api/Solicitudes/"+requestID+"/aceptar", struct{}{}, &out)
	return out, err
}

func (c *Client) RejectRequest(ctx context.Context, requestID string, payload models.RejectRequestPayload) (models.SessionRequest, error) {
	var out models.SessionRequest
	err := c.post(ctx, "/api/Solicitudes/"+requestID+"/rechazar", payload, &out)
	return out, err
}
