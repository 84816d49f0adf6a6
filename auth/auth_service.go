// Package auth is the session and authentication core of the DBIS client. It
// owns session bootstrap at startup, interactive login with offline fallback,
// token verification and refresh, authenticated calls with a single
// refresh-and-retry cycle, and logout.
//
// The application shell is an external collaborator: it receives exactly two
// signals, show the login screen or show the main application, and the core
// depends on nothing else from it.
package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/dbisys/dbis-client/authapi"
	"github.com/dbisys/dbis-client/session"
)

// Collaborator is the fixed interface to the application shell. Both calls
// are terminal for the flow that issues them.
type Collaborator interface {
	ShowLoginScreen()
	ShowMainApp()
}

// IdentityAPI is the remote identity service as the core sees it. Transport
// failures surface as ErrUnreachable, remote rejections as RejectedError;
// the distinction drives the offline fallback.
type IdentityAPI interface {
	Login(ctx context.Context, req authapi.LoginRequest) (*authapi.LoginResponse, error)
	Verify(ctx context.Context, accessToken string) error
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// OfflineAuthenticator validates credentials against a local allow-list when
// the identity service is unreachable.
type OfflineAuthenticator interface {
	Authenticate(username, password string) (*session.UserProfile, bool)
	Usernames() []string
}

// Doer issues a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Deps holds all dependencies of the Service. Offline may be nil to disable
// the allow-list fallback; everything else is required.
type Deps struct {
	Sessions session.Repository   // Persisted session record
	API      IdentityAPI          // Remote identity service
	Offline  OfflineAuthenticator // Local fallback, optional
	Shell    Collaborator         // Application shell
}

// Service orchestrates the session lifecycle.
type Service struct {
	deps    Deps
	appCtx  *session.AppContext
	http    Doer
	nowTime func() time.Time // nowTime function (injectable for testing)
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// WithHTTPClient replaces the HTTP client used for authenticated calls.
func WithHTTPClient(doer Doer) ServiceOption {
	return func(s *Service) {
		s.http = doer
	}
}

// NewService initialises the session core with its required dependencies.
func NewService(deps Deps, options ...ServiceOption) (*Service, error) {
	if deps.Sessions == nil {
		return nil, errors.New("[NewService] Sessions repository is required")
	}
	if deps.API == nil {
		return nil, errors.New("[NewService] identity API is required")
	}
	if deps.Shell == nil {
		return nil, errors.New("[NewService] shell collaborator is required")
	}

	service := &Service{
		deps:    deps,
		appCtx:  session.NewAppContext(),
		http:    http.DefaultClient,
		nowTime: time.Now,
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}

// AppContext exposes the shell-state context owned by the service.
func (s *Service) AppContext() *session.AppContext {
	return s.appCtx
}

// Logout unconditionally tears the session down: all persisted fields are
// cleared, the shell context resets and the login screen is shown. Unlike the
// bootstrap refresh-failure path this is always a full teardown.
func (s *Service) Logout() error {
	if err := s.deps.Sessions.Clear(); err != nil {
		return errors.Wrap(err, "[Service.Logout] Sessions.Clear")
	}
	s.appCtx.Reset()
	s.deps.Shell.ShowLoginScreen()
	return nil
}

// teardown clears the session and sends the shell back to the login screen.
func (s *Service) teardown() {
	_ = s.deps.Sessions.Clear()
	s.appCtx.Reset()
	s.deps.Shell.ShowLoginScreen()
}
