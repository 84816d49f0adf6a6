package auth

import (
	"context"

	"github.com/rs/zerolog/log"
)

// VerifyToken reports whether accessToken is still accepted by the identity
// service. Every failure collapses to false here, deliberately: a network
// error, a malformed response and an actual rejection are indistinguishable
// to callers of this method, and the online/offline decision belongs to the
// orchestration above it. One attempt, no retries.
func (s *Service) VerifyToken(ctx context.Context, accessToken string) bool {
	if accessToken == "" {
		return false
	}
	if err := s.deps.API.Verify(ctx, accessToken); err != nil {
		log.Debug().Err(err).Msg("token verification failed")
		return false
	}
	return true
}
