package offline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbisys/dbis-client/internal/utils"
	"github.com/dbisys/dbis-client/offline"
)

func TestAuthenticate_UsernameCaseInsensitive(t *testing.T) {
	a := offline.New("dbis.com", offline.DefaultCredentials)

	profile, ok := a.Authenticate("Admin", "admin")
	require.True(t, ok)
	require.Equal(t, "admin", profile.Username)
	require.Equal(t, "admin@dbis.com", profile.Email)
	require.Equal(t, "Administrator", utils.Value(profile.Role))
	require.True(t, profile.OfflineMode)
}

func TestAuthenticate_PasswordCaseSensitive(t *testing.T) {
	a := offline.New("dbis.com", offline.DefaultCredentials)

	_, ok := a.Authenticate("admin", "Admin")
	require.False(t, ok)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	a := offline.New("dbis.com", offline.DefaultCredentials)

	_, ok := a.Authenticate("nobody", "nobody")
	require.False(t, ok)
}

func TestAuthenticate_AllDefaultCredentials(t *testing.T) {
	a := offline.New("dbis.com", offline.DefaultCredentials)

	for _, cred := range offline.DefaultCredentials {
		profile, ok := a.Authenticate(cred.Username, cred.Password)
		require.True(t, ok, "expected %q to authenticate", cred.Username)
		require.Equal(t, cred.Role, utils.Value(profile.Role))
	}
}

func TestAuthenticate_EmptyListDisables(t *testing.T) {
	a := offline.New("dbis.com", nil)

	_, ok := a.Authenticate("admin", "admin")
	require.False(t, ok)
	require.Empty(t, a.Usernames())
}

func TestUsernames(t *testing.T) {
	a := offline.New("example.org", []offline.Credential{
		{Username: "alpha", Password: "a", Role: "User"},
		{Username: "beta", Password: "b", Role: "User"},
	})

	require.Equal(t, []string{"alpha", "beta"}, a.Usernames())
}
