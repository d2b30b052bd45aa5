package api

import (
	"context"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

// Login exchanges credentials for a token and the server's view of the user.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.post(ctx, "/api/Auth/login", creds, &resp)
	return resp, err
}

// Register creates a new account and logs it in in one round trip.
func (c *Client) Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.post(ctx, "/api/Auth/register", reg, &resp)
	return resp, err
}

// Profile fetches the live full profile of the authenticated user.
// The path is lowercase; the backend routes this one differently from the
// rest of the Auth controller.
func (c *Client) Profile(ctx context.Context) (models.UserProfile, error) {
	var u models.UserProfile
	err := c.get(ctx, "/api/auth/profile", nil, &u)
	return u, err
}
