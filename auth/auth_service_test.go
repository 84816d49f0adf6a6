package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dbisys/dbis-client/auth"
	"github.com/dbisys/dbis-client/authapi"
	dbiserrors "github.com/dbisys/dbis-client/internal/errors"
	"github.com/dbisys/dbis-client/internal/utils"
	"github.com/dbisys/dbis-client/offline"
	"github.com/dbisys/dbis-client/session"
	"github.com/dbisys/dbis-client/session/repofakes"
)

const (
	testUsername     = "admin"
	testPassword     = "admin"
	testCompany      = "breeze"
	testEmailDomain  = "dbis.com"
	testAccessToken  = "access-token-1"
	testRefreshToken = "refresh-token-1"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// fakeShell records the collaborator transitions the core triggers.
type fakeShell struct {
	loginScreens int
	mainApps     int
}

func (f *fakeShell) ShowLoginScreen() { f.loginScreens++ }
func (f *fakeShell) ShowMainApp()     { f.mainApps++ }

// fakeAPI is a scriptable identity service.
type fakeAPI struct {
	loginFunc   func(req authapi.LoginRequest) (*authapi.LoginResponse, error)
	verifyFunc  func(accessToken string) error
	refreshFunc func(refreshToken string) (string, error)

	loginCalls   int
	verifyCalls  int
	refreshCalls int
}

func (f *fakeAPI) Login(_ context.Context, req authapi.LoginRequest) (*authapi.LoginResponse, error) {
	f.loginCalls++
	if f.loginFunc == nil {
		return nil, dbiserrors.ErrUnreachable
	}
	return f.loginFunc(req)
}

func (f *fakeAPI) Verify(_ context.Context, accessToken string) error {
	f.verifyCalls++
	if f.verifyFunc == nil {
		return dbiserrors.ErrUnreachable
	}
	return f.verifyFunc(accessToken)
}

func (f *fakeAPI) Refresh(_ context.Context, refreshToken string) (string, error) {
	f.refreshCalls++
	if f.refreshFunc == nil {
		return "", dbiserrors.ErrUnreachable
	}
	return f.refreshFunc(refreshToken)
}

// testFixture holds all test dependencies
type testFixture struct {
	sessions *repofakes.FakeSessionRepo
	api      *fakeAPI
	shell    *fakeShell
	service  *auth.Service
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	sessions := repofakes.NewFakeSessionRepo()
	api := &fakeAPI{}
	shell := &fakeShell{}

	service, err := auth.NewService(auth.Deps{
		Sessions: sessions,
		API:      api,
		Offline:  offline.New(testEmailDomain, offline.DefaultCredentials),
		Shell:    shell,
	}, auth.WithNowTime(func() time.Time { return testNow }))
	require.NoError(t, err)

	return &testFixture{
		sessions: sessions,
		api:      api,
		shell:    shell,
		service:  service,
	}
}

// seedOnlineSession stores a logged-in remote session.
func (f *testFixture) seedOnlineSession(t *testing.T) {
	t.Helper()

	err := f.sessions.Save(&session.Session{
		LoggedIn:     true,
		AccessToken:  testAccessToken,
		RefreshToken: testRefreshToken,
		Profile: &session.UserProfile{
			Username:  testUsername,
			Email:     testUsername + "@" + testEmailDomain,
			Company:   testCompany,
			LoginTime: testNow.Add(-time.Hour),
		},
	})
	require.NoError(t, err)
}

// seedOfflineSession stores a logged-in offline session.
func (f *testFixture) seedOfflineSession(t *testing.T) {
	t.Helper()

	err := f.sessions.Save(&session.Session{
		LoggedIn: true,
		Profile: &session.UserProfile{
			Username:    testUsername,
			Email:       testUsername + "@" + testEmailDomain,
			Role:        utils.Ptr("Administrator"),
			Company:     testCompany,
			LoginTime:   testNow.Add(-time.Hour),
			OfflineMode: true,
		},
	})
	require.NoError(t, err)
}

func TestNewService_RequiresDependencies(t *testing.T) {
	_, err := auth.NewService(auth.Deps{})
	require.Error(t, err)

	_, err = auth.NewService(auth.Deps{
		Sessions: repofakes.NewFakeSessionRepo(),
		API:      &fakeAPI{},
	})
	require.Error(t, err)

	// Offline is optional
	_, err = auth.NewService(auth.Deps{
		Sessions: repofakes.NewFakeSessionRepo(),
		API:      &fakeAPI{},
		Shell:    &fakeShell{},
	})
	require.NoError(t, err)
}

func TestLogout_ClearsEverything(t *testing.T) {
	f := setupTestFixture(t)
	f.seedOnlineSession(t)

	require.NoError(t, f.service.Logout())

	require.Equal(t, 1, f.sessions.ClearCalls)
	require.Equal(t, 1, f.shell.loginScreens)

	sess, err := f.sessions.Load()
	require.NoError(t, err)
	require.False(t, sess.Active())
	require.Empty(t, sess.AccessToken)
	require.Empty(t, sess.RefreshToken)
	require.Nil(t, sess.Profile)

	// A subsequent bootstrap lands on the login screen.
	state := f.service.Bootstrap(context.Background())
	require.Equal(t, auth.StateUnauthenticated, state)
}
