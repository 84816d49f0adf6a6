package auth

import "errors"

var (
	MissingCredentialsErr   = errors.New("username and password are required")
	OfflineLoginFailedErr   = errors.New("invalid username or password")
	OfflineLoginDisabledErr = errors.New("offline login is not available")
)
