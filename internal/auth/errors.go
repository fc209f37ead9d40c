package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the email is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordRotationRequired is returned for accounts that must get a new password before logging in.
	ErrPasswordRotationRequired = errors.New("password must be reset by an administrator")

	// ErrUnauthenticated is returned when a request carries no valid session.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when the caller is not an admin.
	ErrForbidden = errors.New("admin access required")
)
