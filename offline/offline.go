// Package offline validates credentials against a fixed local allow-list,
// standing in for the identity service when it cannot be reached. The list is
// injected at construction so it can be replaced or disabled without touching
// the rest of the session core.
package offline

import (
	"fmt"
	"strings"

	"github.com/dbisys/dbis-client/internal/utils"
	"github.com/dbisys/dbis-client/session"
)

// Credential is one allow-list entry. Passwords are plaintext on purpose:
// these are well-known development credentials, not secrets, and the list
// must stay trivially editable.
type Credential struct {
	Username string
	Password string
	Role     string
}

// DefaultCredentials are the development logins accepted without a backend.
var DefaultCredentials = []Credential{
	{Username: "admin", Password: "admin", Role: "Administrator"},
	{Username: "test", Password: "test", Role: "User"},
	{Username: "demo", Password: "demo", Role: "Demo User"},
	{Username: "user", Password: "user", Role: "Standard User"},
	{Username: "manager", Password: "manager", Role: "Manager"},
	{Username: "sanya", Password: "password", Role: "User"},
	{Username: "david", Password: "david123", Role: "Administrator"},
}

// Authenticator matches credentials against its allow-list. Username
// comparison is case-insensitive, password comparison is exact.
type Authenticator struct {
	domain      string
	credentials []Credential
}

// New builds an Authenticator synthesising e-mail addresses under domain.
// An empty credential list disables offline login entirely.
func New(domain string, credentials []Credential) *Authenticator {
	return &Authenticator{
		domain:      domain,
		credentials: credentials,
	}
}

// Authenticate returns the profile for a matching entry, or false. The
// returned profile carries the allow-list casing of the username and a
// synthesised e-mail; company and login time are the caller's to fill in.
func (a *Authenticator) Authenticate(username, password string) (*session.UserProfile, bool) {
	for _, cred := range a.credentials {
		if !strings.EqualFold(cred.Username, username) {
			continue
		}
		if cred.Password != password {
			continue
		}
		return &session.UserProfile{
			Username:    cred.Username,
			Email:       fmt.Sprintf("%s@%s", cred.Username, a.domain),
			Role:        utils.Ptr(cred.Role),
			OfflineMode: true,
		}, true
	}
	return nil, false
}

// Usernames lists the accepted offline usernames, for login-help messages.
func (a *Authenticator) Usernames() []string {
	names := make([]string, 0, len(a.credentials))
	for _, cred := range a.credentials {
		names = append(names, cred.Username)
	}
	return names
}
