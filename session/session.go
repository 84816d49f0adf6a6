package session

import (
	"time"
)

// UserProfile describes the logged-in user as shown by the application shell.
// Role is optional: remote logins only return username and e-mail, offline
// logins carry the role from the allow-list entry.
type UserProfile struct {
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        *string   `json:"role,omitempty"`
	Company     string    `json:"company"`
	LoginTime   time.Time `json:"loginTime"`
	OfflineMode bool      `json:"offlineMode"`
}

// Session is the single client-side authentication session. At most one
// exists at a time; login and logout replace or clear it wholesale, the only
// partial update is the access-token swap performed by a refresh.
//
// Invariants:
//   - LoggedIn is true iff Profile is set.
//   - Profile.OfflineMode implies AccessToken and RefreshToken are empty.
type Session struct {
	LoggedIn     bool         `json:"loggedIn"`
	AccessToken  string       `json:"accessToken,omitempty"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	Profile      *UserProfile `json:"profile,omitempty"`
}

// Active reports whether the session represents a logged-in user.
func (s *Session) Active() bool {
	return s != nil && s.LoggedIn && s.Profile != nil
}

// Offline reports whether the session was established against the local
// allow-list rather than the identity service.
func (s *Session) Offline() bool {
	return s.Active() && s.Profile.OfflineMode
}
