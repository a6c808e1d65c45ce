package service

import "errors"

var (
	// ErrMissingField is returned when a required input field is absent
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidCredentials is returned on unknown email or wrong
	// password. Deliberately one error for both cases.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidPayload is returned when a bulk save body is not the
	// expected shape
	ErrInvalidPayload = errors.New("invalid payload")
)
