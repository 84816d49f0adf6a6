package auth

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	dbiserrors "github.com/dbisys/dbis-client/internal/errors"
)

// Request describes an authenticated call. The body is held as bytes rather
// than a reader so the one permitted retry can re-issue it.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Do issues req with the current access token attached as a bearer
// credential. If the response reports credential expiry (401) the token is
// refreshed exactly once:
//
//   - refresh success: the request is re-issued once with the new token and
//     that response is returned as-is, whatever its status;
//   - refresh failure: the session is torn down, the login screen is shown
//     and ErrAuthenticationFailed is returned instead of a response.
//
// Any other response, error statuses included, is returned unchanged; this
// method does not interpret business-level failures. At most one
// refresh-and-retry cycle per call, so a backend that keeps rejecting
// refreshed tokens cannot loop us.
func (s *Service) Do(ctx context.Context, req Request) (*http.Response, error) {
	sess, err := s.deps.Sessions.Load()
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Do] Sessions.Load")
	}

	resp, err := s.issue(ctx, req, sess.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Do] issue")
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	drainBody(resp)

	newToken, err := s.RefreshToken(ctx, sess.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh after expired call failed, tearing session down")
		s.teardown()
		return nil, errors.Wrap(dbiserrors.ErrAuthenticationFailed, "[Service.Do] token refresh failed")
	}

	retry, err := s.issue(ctx, req, newToken)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Do] retry")
	}
	return retry, nil
}

func (s *Service) issue(ctx context.Context, req Request, accessToken string) (*http.Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	httpReq.Header.Set("X-Request-ID", uuid.New().String())

	return s.http.Do(httpReq)
}

func drainBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
