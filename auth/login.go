package auth

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/dbisys/dbis-client/authapi"
	dbiserrors "github.com/dbisys/dbis-client/internal/errors"
	"github.com/dbisys/dbis-client/session"
)

// Login runs one interactive login attempt: the identity service first, the
// offline allow-list only if the service could not be reached at all. A
// reachable service that rejects the credentials is surfaced to the user and
// never falls back.
//
// On success the prior session is replaced wholesale and the main application
// is shown. On failure no state changes.
func (s *Service) Login(ctx context.Context, username, password, company string) error {
	if username == "" || password == "" {
		return MissingCredentialsErr
	}

	resp, err := s.deps.API.Login(ctx, authapi.LoginRequest{
		Username: username,
		Password: password,
		Company:  company,
	})
	if err == nil {
		return s.completeRemoteLogin(resp, company)
	}

	if !errors.Is(err, dbiserrors.ErrUnreachable) {
		// Reachable but rejected: the RejectedError carries the server's
		// detail message for the user.
		return err
	}

	log.Info().Msg("identity service unreachable, trying offline mode")
	return s.offlineLogin(username, password, company)
}

func (s *Service) completeRemoteLogin(resp *authapi.LoginResponse, company string) error {
	profile := &session.UserProfile{
		Username:  resp.User.Username,
		Email:     resp.User.Email,
		Company:   company,
		LoginTime: s.nowTime(),
	}
	sess := &session.Session{
		LoggedIn:     true,
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
		Profile:      profile,
	}
	if err := s.deps.Sessions.Save(sess); err != nil {
		return errors.Wrap(err, "[Service.Login] Sessions.Save")
	}

	s.appCtx.Init(profile)
	s.deps.Shell.ShowMainApp()
	return nil
}

func (s *Service) offlineLogin(username, password, company string) error {
	if s.deps.Offline == nil {
		return OfflineLoginDisabledErr
	}

	profile, ok := s.deps.Offline.Authenticate(username, password)
	if !ok {
		// Listing the accepted usernames is deliberate: the allow-list exists
		// to keep the application operable without a backend.
		return errors.Wrapf(OfflineLoginFailedErr,
			"identity service unavailable, offline mode accepts: %s",
			strings.Join(s.deps.Offline.Usernames(), ", "))
	}

	profile.Company = company
	profile.LoginTime = s.nowTime()

	// Offline sessions never carry tokens; any leftover credentials from an
	// earlier remote session are dropped with the full-record save.
	sess := &session.Session{
		LoggedIn: true,
		Profile:  profile,
	}
	if err := s.deps.Sessions.Save(sess); err != nil {
		return errors.Wrap(err, "[Service.offlineLogin] Sessions.Save")
	}

	log.Info().Str("username", profile.Username).Msg("logged in offline")
	s.appCtx.Init(profile)
	s.deps.Shell.ShowMainApp()
	return nil
}
