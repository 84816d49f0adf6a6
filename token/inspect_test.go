package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dbisys/dbis-client/token"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInspect_ReadsClaims(t *testing.T) {
	issued := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	expires := issued.Add(15 * time.Minute)

	raw := mintToken(t, jwt.MapClaims{
		"iss": "dbis-idp",
		"sub": "admin",
		"iat": issued.Unix(),
		"exp": expires.Unix(),
	})

	claims, err := token.Inspect(raw)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Subject)
	require.Equal(t, "dbis-idp", claims.Issuer)
	require.True(t, claims.IssuedAt.Equal(issued))
	require.True(t, claims.ExpiresAt.Equal(expires))
}

func TestInspect_DoesNotVerifySignature(t *testing.T) {
	// Inspect is for display only, so a token signed with an unknown key
	// still decodes.
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "demo"}).
		SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	claims, err := token.Inspect(signed)
	require.NoError(t, err)
	require.Equal(t, "demo", claims.Subject)
	require.True(t, claims.ExpiresAt.IsZero())
}

func TestInspect_GarbageFails(t *testing.T) {
	_, err := token.Inspect("not-a-token")
	require.Error(t, err)
}
