package authapi

import (
	"fmt"

	dbiserrors "github.com/dbisys/dbis-client/internal/errors"
)

// RejectedError is returned when the identity service was reachable but
// answered with a non-success status. Detail carries the server-provided
// message when one could be parsed, so the UI can surface it verbatim.
type RejectedError struct {
	StatusCode int
	Detail     string
}

func (e *RejectedError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("identity service rejected request (status %d)", e.StatusCode)
}

// Unwrap makes errors.Is(err, ErrRejected) hold for every rejection.
func (e *RejectedError) Unwrap() error {
	return dbiserrors.ErrRejected
}
