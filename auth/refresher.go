package auth

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	dbiserrors "github.com/dbisys/dbis-client/internal/errors"
)

// RefreshToken exchanges refreshToken for a new access token. On success the
// new token is persisted (the single partial update the session record ever
// sees) and returned. On any failure the store is left untouched. Exactly one
// attempt per call; callers decide whether a failure ends the session.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", errors.Wrap(dbiserrors.ErrNoSession, "[Service.RefreshToken] no refresh token")
	}

	newToken, err := s.deps.API.Refresh(ctx, refreshToken)
	if err != nil {
		log.Debug().Err(err).Msg("token refresh failed")
		return "", errors.Wrap(err, "[Service.RefreshToken] API.Refresh")
	}

	if err := s.deps.Sessions.SetAccessToken(newToken); err != nil {
		return "", errors.Wrap(err, "[Service.RefreshToken] Sessions.SetAccessToken")
	}
	return newToken, nil
}
