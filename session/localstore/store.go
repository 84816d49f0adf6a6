// Package localstore persists the session as a small key-value file in the
// application data folder.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/dbisys/dbis-client/session"
)

const (
	keyLoggedIn     = "isLoggedIn"
	keyAccessToken  = "token"
	keyRefreshToken = "refresh_token"
	keyCurrentUser  = "currentUser"

	sessionFile = "session.json"
)

var _ session.Repository = (*Store)(nil)

// Store is a file-backed session repository. Writes go through a temp file
// and rename so a crash mid-write cannot leave a truncated record.
type Store struct {
	path string
}

func New(dataFolder string) (*Store, error) {
	if err := os.MkdirAll(dataFolder, 0o700); err != nil {
		return nil, errors.Wrap(err, "[localstore.New] MkdirAll")
	}
	return &Store{path: filepath.Join(dataFolder, sessionFile)}, nil
}

// Load reads the persisted session. A missing or unreadable file yields an
// empty session, never an error: corrupt local data means "no session".
func (s *Store) Load() (*session.Session, error) {
	values, err := s.read()
	if err != nil {
		return &session.Session{}, nil
	}

	sess := &session.Session{
		LoggedIn:     values[keyLoggedIn] == "true",
		AccessToken:  values[keyAccessToken],
		RefreshToken: values[keyRefreshToken],
	}

	if raw, ok := values[keyCurrentUser]; ok && raw != "" {
		var profile session.UserProfile
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			return &session.Session{}, nil
		}
		sess.Profile = &profile
	}
	return sess, nil
}

func (s *Store) Save(sess *session.Session) error {
	values := map[string]string{}
	if sess.LoggedIn {
		values[keyLoggedIn] = "true"
	}
	if sess.AccessToken != "" {
		values[keyAccessToken] = sess.AccessToken
	}
	if sess.RefreshToken != "" {
		values[keyRefreshToken] = sess.RefreshToken
	}
	if sess.Profile != nil {
		raw, err := json.Marshal(sess.Profile)
		if err != nil {
			return errors.Wrap(err, "[Store.Save] marshal profile")
		}
		values[keyCurrentUser] = string(raw)
	}
	return s.write(values)
}

func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "[Store.Clear] Remove")
	}
	return nil
}

// SetAccessToken rewrites only the access-token key, leaving the rest of the
// record untouched.
func (s *Store) SetAccessToken(token string) error {
	values, err := s.read()
	if err != nil {
		return errors.Wrap(err, "[Store.SetAccessToken] read")
	}
	values[keyAccessToken] = token
	return s.write(values)
}

func (s *Store) read() (map[string]string, error) {
	values := map[string]string{}
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *Store) write(values map[string]string) error {
	b, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[Store.write] marshal")
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return errors.Wrap(err, "[Store.write] WriteFile")
	}
	return os.Rename(tmp, s.path)
}
