package config

import (
	"fmt"
	"time"
)

type IdpConfig interface {
	GetPort() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenLength() int
	GetSigningSecret() string
}

type Idp struct{}

var _ IdpConfig = Idp{}

func (Idp) GetPort() string {
	port := GetEnv("PORT", "8080")
	if port != "" || port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (Idp) GetAccessTokenExpiry() time.Duration {
	return 15 * time.Minute
}

func (Idp) GetRefreshTokenLength() int {
	return 32 // 32 bytes = 256 bits
}

// GetSigningSecret is the HMAC secret for access tokens minted by the mock
// identity provider. Development only.
func (Idp) GetSigningSecret() string {
	return GetEnv("SIGNING_SECRET", "dev-signing-secret")
}
