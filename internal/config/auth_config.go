package config

type AuthConfig interface {
	GetBaseURL() string
	GetEmailDomain() string
}

type Auth struct{}

var _ AuthConfig = Auth{}

// GetBaseURL returns the base URL of the remote identity service.
func (Auth) GetBaseURL() string {
	return GetEnv("BASE_URL", "http://localhost:8080")
}

// GetEmailDomain is the domain used to synthesise e-mail addresses for
// offline logins (<username>@<domain>).
func (Auth) GetEmailDomain() string {
	return GetEnv("EMAIL_DOMAIN", "dbis.com")
}
