package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrEmptyPassword = errors.New("password is required")

	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptyAuthor  = errors.New("author is required")
	ErrMissingPrice = errors.New("price is required")
)
