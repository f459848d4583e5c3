package errors

import "errors"

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrTooYoung           = errors.New("user must be at least 13 years old")
	ErrNotLoggedIn        = errors.New("no user is logged in")
)
