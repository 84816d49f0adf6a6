package errors

import (
	"errors"
	"fmt"
)

// Common error types for the DBIS session core.
//
// The three failure classes below are the whole taxonomy the session logic
// distinguishes: the remote service could not be contacted at all, the remote
// service answered but refused, or locally persisted data could not be read.
var (
	// Transport errors
	ErrUnreachable = errors.New("identity service unreachable")

	// Remote rejections
	ErrRejected           = errors.New("request rejected by identity service")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")

	// Local state errors
	ErrInvalidLocalData = errors.New("persisted session data invalid")
	ErrNoSession        = errors.New("no session")

	// Authenticated call errors
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
