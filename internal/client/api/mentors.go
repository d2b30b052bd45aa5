package api

import (
	"context"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

// ActivateMentor upgrades the current user to a mentor profile.
func (c *Client) ActivateMentor(ctx context.Context, payload models.MentorActivation) (models.MentorActivationResponse, error) {
	var out models.MentorActivationResponse
	err := c.post(ctx, "/api/Mentores/activar", payload, &out)
	return out, err
}

// UpdateMentorProfile edits an existing mentor profile.
func (c *Client) UpdateMentorProfile(ctx context.Context, payload models.MentorActivation) (models.MentorActivationResponse, error) {
	var out models.MentorActivationResponse
	err := c.put(ctx, "/api/Mentores/actualizar-perfil", payload, &out)
	return out, err
}

// MentorPublicProfile fetches the public view of a mentor.
func (c *Client) MentorPublicProfile(ctx context.Context, mentorID string) (models.MentorPublicProfile, error) {
	var out models.MentorPublicProfile
	err := c.get(ctx, "/api/Mentores/"+mentorID+"/perfil-publico", nil, &out)
	return out, err
}
