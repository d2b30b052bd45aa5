// Package api is the thin REST client for the SkillSwap backend. It carries
// the bearer token, encodes/decodes the Spanish-named JSON wire format, and
// converts HTTP status codes into the shared error taxonomy. All marketplace
// semantics live server-side; nothing here retries or caches.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/skillswap/skillswap-cli/internal/client/session"
	"github.com/skillswap/skillswap-cli/internal/common"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewClient builds a Client for the backend at baseURL. tokens may be nil
// for a purely anonymous client. A zero timeout selects the default.
func NewClient(baseURL string, tokens *session.TokenStore, timeout time.Duration, log logging.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: newAuthTransport(nil, tokens),
		},
		log: log,
	}
}

// errorBody is the backend's error envelope. ASP.NET-style responses put
// field messages under "errors" and a summary under "message" or "title".
// The "errors" key has two shapes in the wild: ModelState keys it per field,
// FluentValidation emits an array of {message} objects. Both must decode
// without losing the summary.
type errorBody struct {
	Message string          `json:"message"`
	Title   string          `json:"title"`
	Errors  json.RawMessage `json:"errors"`
}

// fieldErrors decodes the "errors" value, whichever shape the backend used.
// Array-form messages carry no field name and land under an empty key.
func (eb errorBody) fieldErrors() map[string][]string {
	if len(eb.Errors) == 0 {
		return nil
	}

	var byField map[string][]string
	if json.Unmarshal(eb.Errors, &byField) == nil {
		return byField
	}

	var list []struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(eb.Errors, &list) == nil && len(list) > 0 {
		msgs := make([]string, 0, len(list))
		for _, item := range list {
			if item.Message != "" {
				msgs = append(msgs, item.Message)
			}
		}
		if len(msgs) > 0 {
			return map[string][]string{"": msgs}
		}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failure is the HTTP analogue of "status 0": the server
		// could not be reached at all.
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %s", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.asAPIError(ctx, method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) asAPIError(ctx context.Context, method, path string, resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, sentinel: sentinelFor(resp.StatusCode)}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(raw) > 0 {
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Message = eb.Message
			if apiErr.Message == "" {
				apiErr.Message = eb.Title
			}
			apiErr.FieldErrors = eb.fieldErrors()
		}
	}

	c.log.Debug(ctx, "backend error", "method", method, "path", path,
		"status", resp.StatusCode, "message", apiErr.Message)
	return apiErr
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
