// Package authapi is the HTTP client for the remote identity service. It
// speaks the service's three-endpoint token protocol (login, verify, refresh)
// and maps every outcome onto the session core's error taxonomy: transport
// failures become ErrUnreachable, non-success statuses become RejectedError.
// Callers decide what each class means; this package never retries.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	dbiserrors "github.com/dbisys/dbis-client/internal/errors"
)

const contentTypeJSON = "application/json"

// Doer issues a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the identity service.
type Client struct {
	baseURL string
	http    Doer
}

// ClientOption modifies a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client (primarily for testing).
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		c.http = doer
	}
}

func NewClient(baseURL string, options ...ClientOption) *Client {
	client := &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// Login authenticates username/password/company against the identity service.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	resp, err := c.post(ctx, RouteLogin, req, "")
	if err != nil {
		return nil, errors.Wrap(err, "[Client.Login] post")
	}
	defer closeBody(resp)

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return nil, &RejectedError{StatusCode: resp.StatusCode, Detail: "malformed login response"}
	}
	return &loginResp, nil
}

// Verify asks the service whether accessToken is still accepted. The token
// travels both as the bearer header and in the body, matching the backend's
// verification endpoint.
func (c *Client) Verify(ctx context.Context, accessToken string) error {
	resp, err := c.post(ctx, RouteVerify, verifyRequest{Token: accessToken}, accessToken)
	if err != nil {
		return errors.Wrap(err, "[Client.Verify] post")
	}
	defer closeBody(resp)

	return c.checkStatus(resp)
}

// Refresh exchanges refreshToken for a new access token. One attempt, no
// retries, no store mutation.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	resp, err := c.post(ctx, RouteRefresh, refreshRequest{Refresh: refreshToken}, "")
	if err != nil {
		return "", errors.Wrap(err, "[Client.Refresh] post")
	}
	defer closeBody(resp)

	if err := c.checkStatus(resp); err != nil {
		return "", err
	}

	var refreshResp refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&refreshResp); err != nil || refreshResp.Access == "" {
		return "", &RejectedError{StatusCode: resp.StatusCode, Detail: "malformed refresh response"}
	}
	return refreshResp.Access, nil
}

func (c *Client) post(ctx context.Context, route string, body any, bearer string) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("X-Request-ID", uuid.New().String())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("route", route).Msg("identity service unreachable")
		return nil, dbiserrors.Wrapf(dbiserrors.ErrUnreachable, "%s: %v", route, err)
	}
	return resp, nil
}

// checkStatus maps a non-2xx response to a RejectedError, preserving the
// server's detail message when the body carries one.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	rejection := &RejectedError{StatusCode: resp.StatusCode}
	var errResp errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
		rejection.Detail = errResp.Detail
	}
	return rejection
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
