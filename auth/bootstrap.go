package auth

import (
	"context"

	"github.com/dbisys/dbis-client/session"
)

// State is a position in the bootstrap state machine. StateAuthenticated and
// StateUnauthenticated are terminal and map one-to-one onto the shell calls
// ShowMainApp and ShowLoginScreen.
type State int

const (
	StateNoSession State = iota
	StateHaveSessionOffline
	StateVerifying
	StateRefreshing
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateNoSession:
		return "NoSession"
	case StateHaveSessionOffline:
		return "HaveSessionOffline"
	case StateVerifying:
		return "Verifying"
	case StateRefreshing:
		return "Refreshing"
	case StateAuthenticated:
		return "Authenticated"
	case StateUnauthenticated:
		return "Unauthenticated"
	}
	return "Unknown"
}

// Bootstrap runs the startup sequence once and returns the terminal state.
//
//   - No persisted session, or one not marked logged-in: Unauthenticated.
//   - Offline session: Authenticated immediately, zero network calls.
//   - Online session: verify the access token; a valid token authenticates,
//     an invalid one falls through to a single refresh attempt.
//   - Refresh success authenticates; refresh failure lands Unauthenticated
//     WITHOUT clearing the stored record. The stale session stays on disk and
//     the next startup will walk the same verify/refresh path; only explicit
//     logout and a failed refresh during an authenticated call tear down.
func (s *Service) Bootstrap(ctx context.Context) State {
	sess, err := s.deps.Sessions.Load()
	if err != nil || !sess.Active() {
		return s.unauthenticated()
	}

	if sess.Offline() {
		return s.authenticated(sess)
	}

	// StateVerifying
	if s.VerifyToken(ctx, sess.AccessToken) {
		return s.authenticated(sess)
	}

	// StateRefreshing
	if _, err := s.RefreshToken(ctx, sess.RefreshToken); err != nil {
		return s.unauthenticated()
	}
	return s.authenticated(sess)
}

func (s *Service) authenticated(sess *session.Session) State {
	s.appCtx.Init(sess.Profile)
	s.deps.Shell.ShowMainApp()
	return StateAuthenticated
}

func (s *Service) unauthenticated() State {
	s.deps.Shell.ShowLoginScreen()
	return StateUnauthenticated
}
