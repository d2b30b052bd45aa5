package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skillswap/skillswap-cli/internal/client/models"
	"github.com/skillswap/skillswap-cli/internal/common"
)

// Alternative claim key names, tried in order. The backend has issued tokens
// under both the WS-* schema URIs and the short JWT conventions depending on
// its framework version, so the decoder accepts all of them.
var (
	idClaimKeys = []string{
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier",
		"nameid",
		"sub",
		"id",
		"userId",
		"user_id",
	}
	nameClaimKeys = []string{
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name",
		"name",
		"given_name",
	}
	emailClaimKeys = []string{
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress",
		"email",
		"mail",
		"email_address",
		"e_mail",
	}
)

// fallbackName is used when no name claim is present.
const fallbackName = "Usuario"

// TokenClaims is the successfully-decoded variant of a token payload, with
// the alternative claim names already resolved. Subject and Email default to
// "" and Name to the fallback placeholder when no candidate key matched.
type TokenClaims struct {
	Subject string
	Name    string
	Email   string
}

// DecodeClaims decodes the payload segment of a three-segment bearer token
// without verifying its signature. The token is trusted outright because it
// was issued by the paired backend over an authenticated channel; the decoder
// is only a convenience to bootstrap identity before the profile endpoint
// answers. Malformed base64 or JSON yields an error wrapping
// common.ErrInvalidToken, which callers must treat as "no valid session".
func DecodeClaims(raw string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidToken, err)
	}

	name := firstString(claims, nameClaimKeys)
	if name == "" {
		name = fallbackName
	}

	return &TokenClaims{
		Subject: firstString(claims, idClaimKeys),
		Name:    name,
		Email:   firstString(claims, emailClaimKeys),
	}, nil
}

// BaseProfile builds the token-derived base identity. The role is always
// forced to the baseline: a stale or forged token claim must never grant an
// elevated role, only explicit server data may do that later.
func (c *TokenClaims) BaseProfile() models.UserProfile {
	return models.UserProfile{
		ID:    c.Subject,
		Name:  c.Name,
		Email: c.Email,
		Role:  models.RoleUsuario,
	}
}

func firstString(claims jwt.MapClaims, keys []string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
