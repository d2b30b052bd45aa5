package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

func (c *Client) CreateSession(ctx context.Context, payload models.CreateSessionPayload) (models.TutoringSession, error) {
	var out models.TutoringSession
	err := c.post(ctx, "/api/Tutorias", payload, &out)
	return out, err
}

// SearchSessions queries available sessions with optional filters.
func (c *Client) SearchSessions(ctx context.Context, q models.SearchSessionsQuery) (models.SessionSearchResult, error) {
	params := url.Values{}
	if q.Subject != "" {
		params.Set("materia", q.Subject)
	}
	if q.Modality != "" {
		params.Set("modalidad", q.Modality)
	}
	if q.Level != "" {
		params.Set("nivel", q.Level)
	}
	if q.Date != "" {
		params.Set("fecha", q.Date)
	}
	if q.Text != "" {
		params.Set("busqueda", q.Text)
	}
	if q.Page > 0 {
		params.Set("pagina", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		params.Set("tamanoPagina", strconv.Itoa(q.PageSize))
	}

	var out models.SessionSearchResult
	err := c.get(ctx, "/api/Tutorias/buscar", params, &out)
	return out, err
}

func (c *Client) MySessions(ctx context.Context) ([]models.TutoringSession, error) {
	var out []models.TutoringSession
	err := c.get(ctx, "/api/Tutorias/mis-tutorias", nil, &out)
	return out, err
}

func (c *Client) GetSession(ctx context.Context, id string) (models.TutoringSession, error) {
	var out models.TutoringSession
	err := c.get(ctx, "/api/Tutorias/"+id, nil, &out)
	return out, err
}

func (c *Client) TodaySessions(ctx context.Context) ([]models.TutoringSession, error) {
	var out []models.TutoringSession
	err := c.get(ctx, "/api/Tutorias/hoy", nil, &out)
	return out, err
}

// RequestJoin asks for a seat in a session, with an optional message to the
// mentor.
func (c *Client) RequestJoin(ctx context.Context, sessionID string, payload models.JoinRequestPayload) (models.SessionRequest, error) {
	var out models.SessionRequest
	err := c.post(ctx, "/api/Tutorias/"+sessionID+"/solicitar", payload, &out)
	return out, err
}

// HasExistingRequest reports whether the current user already requested a
// seat in the session.
func (c *Client) HasExistingRequest(ctx context.Context, sessionID string) (bool, error) {
	var out bool
	err := c.get(ctx, "/api/Tutorias/"+sessionID+"/solicitud-existente", nil, &out)
	return out, err
}

func (c *Client) SessionRequests(ctx context.Context, sessionID string) ([]models.SessionRequest, error) {
	var out []models.SessionRequest
	err := c.get(ctx, "/api/Tutorias/"+sessionID+"/solicitudes", nil, &out)
	return out, err
}

func (c *Client) RateSession(ctx context.Context, sessionID string, payload models.RatingPayload) (models.Rating, error) {
	var out models.Rating
	err := c.post(ctx, "/api/Tutorias/"+sessionID+"/calificar", payload, &out)
	return out, err
}

func (c *Client) SessionRatings(ctx context.Context, sessionID string) ([]models.Rating, error) {
	var out []models.Rating
	err := c.get(ctx, "/api/Tutorias/"+sessionID+"/calificaciones", nil, &out)
	return out, err
}

func (c *Client) CancelSession(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/Tutorias/"+id)
}
