package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-cli/internal/client/session"
	"github.com/skillswap/skillswap-cli/internal/common"
)

// authTransport attaches the stored bearer token to every outbound request.
// It reads the token store directly rather than going through the published
// session state: the transport must see a token the instant it is saved,
// even if the state broadcast has not happened yet. A missing token never
// blocks a request; the call simply goes out unauthenticated and the backend
// answers 401 if it cares.
type authTransport struct {
	base   http.RoundTripper
	tokens *session.TokenStore
}

func newAuthTransport(base http.RoundTripper, tokens *session.TokenStore) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, tokens: tokens}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request must not be mutated in place.
	out := req.Clone(req.Context())

	if t.tokens != nil {
		if token := t.tokens.Read(req.Context()); token != "" {
			out.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		}
	}
	out.Header.Set(common.RequestIDHeader, uuid.NewString())

	return t.base.RoundTrip(out)
}
