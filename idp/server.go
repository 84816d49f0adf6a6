// Package idp is a development stand-in for the real identity service. It
// serves the same three endpoints the DBIS client speaks (login, verify,
// refresh) against a seeded user table, so the client can be exercised end to
// end without the production backend.
package idp

import (
	"sync"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/dbisys/dbis-client/authapi"
	"github.com/dbisys/dbis-client/internal/config"
)

// Server holds the mock identity provider's state: seeded users and the
// outstanding refresh tokens.
type Server struct {
	config        config.IdpConfig
	users         map[string]storedUser
	refreshTokens map[string]string // refresh token -> username
	lock          sync.RWMutex
}

// DefaultSeedUsers mirrors the development allow-list the client falls back
// to when this server is down, so online and offline logins stay consistent.
func DefaultSeedUsers(emailDomain string) []SeedUser {
	users := []SeedUser{
		{Username: "admin", Password: "admin", Role: "Administrator"},
		{Username: "test", Password: "test", Role: "User"},
		{Username: "demo", Password: "demo", Role: "Demo User"},
		{Username: "user", Password: "user", Role: "Standard User"},
		{Username: "manager", Password: "manager", Role: "Manager"},
		{Username: "sanya", Password: "password", Role: "User"},
		{Username: "david", Password: "david123", Role: "Administrator"},
	}
	for i := range users {
		users[i].Email = users[i].Username + "@" + emailDomain
	}
	return users
}

func New(cfg config.IdpConfig, seeds []SeedUser) (*Server, error) {
	users, err := seedUsers(seeds)
	if err != nil {
		return nil, errors.Wrap(err, "[idp.New] seedUsers")
	}
	return &Server{
		config:        cfg,
		users:         users,
		refreshTokens: make(map[string]string),
	}, nil
}

// Router builds the HTTP router for the three auth endpoints.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.healthHandler).Methods("GET")
	r.HandleFunc(authapi.RouteLogin, s.loginHandler).Methods("POST")
	r.HandleFunc(authapi.RouteVerify, s.verifyHandler).Methods("POST")
	r.HandleFunc(authapi.RouteRefresh, s.refreshHandler).Methods("POST")
	return r
}
