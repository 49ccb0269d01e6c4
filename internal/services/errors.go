package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// user-visible form errors or HTTP statuses.
var (
	// ErrNotFound indicates the requested user or message does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a username or email is already taken.
	ErrDuplicate = errors.New("username or email already taken")

	// ErrValidation indicates bad form input.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials is returned for both an unknown username and
	// a wrong password, so login failures don't reveal which was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden indicates an attempt to act on another user's resource.
	ErrForbidden = errors.New("forbidden")

	// ErrSelfFollow indicates an attempt to follow oneself.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrTextLength indicates message text is empty or over the limit.
	ErrTextLength = errors.New("message text must be between 1 and 140 characters")
)
