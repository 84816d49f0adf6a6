package repofakes

import (
	"sync"

	"github.com/dbisys/dbis-client/session"
)

var _ session.Repository = (*FakeSessionRepo)(nil)

// FakeSessionRepo is an in-memory session repository for tests.
type FakeSessionRepo struct {
	stored *session.Session
	lock   sync.RWMutex

	LoadCalls           int
	SaveCalls           int
	ClearCalls          int
	SetAccessTokenCalls int
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{}
}

func (r *FakeSessionRepo) Load() (*session.Session, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.LoadCalls++
	if r.stored == nil {
		return &session.Session{}, nil
	}
	copied := *r.stored
	if r.stored.Profile != nil {
		profile := *r.stored.Profile
		copied.Profile = &profile
	}
	return &copied, nil
}

func (r *FakeSessionRepo) Save(s *session.Session) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.SaveCalls++
	copied := *s
	if s.Profile != nil {
		profile := *s.Profile
		copied.Profile = &profile
	}
	r.stored = &copied
	return nil
}

func (r *FakeSessionRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.ClearCalls++
	r.stored = nil
	return nil
}

func (r *FakeSessionRepo) SetAccessToken(token string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.SetAccessTokenCalls++
	if r.stored == nil {
		r.stored = &session.Session{}
	}
	r.stored.AccessToken = token
	return nil
}
