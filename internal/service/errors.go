package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrAccessDenied is returned when a user attempts to read or mutate a
	// book that does not belong to them (or does not exist at all; the two
	// cases are deliberately indistinguishable to the caller).
	ErrAccessDenied = errors.New("access to resources denied")
)
