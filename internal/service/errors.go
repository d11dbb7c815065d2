package service

import "errors"

var (
	// ErrInvalidCredentials covers no-such-user, wrong password and
	// pending approval alike. The cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrRecordNotFound = errors.New("record not found")
)
