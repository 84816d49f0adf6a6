package session

// Repository owns the persisted session record. Implementations must treat
// corrupt persisted data as "no session": Load returns an empty, inactive
// Session rather than an error in that case.
type Repository interface {
	Load() (*Session, error)
	Save(session *Session) error
	Clear() error

	// SetAccessToken replaces only the stored access token. It is the single
	// partial update in the system, used by token refresh.
	SetAccessToken(token string) error
}
