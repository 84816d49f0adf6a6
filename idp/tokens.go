package idp

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

const issuer = "dbis-idp"

// mintAccessToken creates an HMAC-signed access token for username.
func (s *Server) mintAccessToken(username string) (string, error) {
	now := NowTimeFunc()
	claims := jwt.MapClaims{
		"iss": issuer,
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(s.config.GetAccessTokenExpiry()).Unix(),
		"jti": uuid.New().String(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.GetSigningSecret()))
	if err != nil {
		return "", errors.Wrap(err, "[mintAccessToken] SignedString")
	}
	return signed, nil
}

// validateAccessToken checks the signature and expiry of raw.
func (s *Server) validateAccessToken(raw string) bool {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.config.GetSigningSecret()), nil
	}, jwt.WithTimeFunc(NowTimeFunc))
	return err == nil && parsed.Valid
}

// newRefreshToken generates an opaque refresh token and remembers its owner.
func (s *Server) newRefreshToken(username string) (string, error) {
	tokenBytes := make([]byte, s.config.GetRefreshTokenLength())
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", errors.Wrap(err, "[newRefreshToken] rand.Read")
	}
	tokenStr := hex.EncodeToString(tokenBytes)

	s.lock.Lock()
	defer s.lock.Unlock()

	// Single refresh token per user
	for existing, owner := range s.refreshTokens {
		if owner == username {
			delete(s.refreshTokens, existing)
		}
	}
	s.refreshTokens[tokenStr] = username
	return tokenStr, nil
}

// refreshTokenOwner resolves a refresh token to its user, if known.
func (s *Server) refreshTokenOwner(token string) (string, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	owner, ok := s.refreshTokens[token]
	return owner, ok
}
