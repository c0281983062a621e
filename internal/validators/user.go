package validators

import (
	"context"
	"fmt"
	"net/mail"

	"bookshelf/models"
)

// Field name constants for user-related validation scoping.
const (
	// FieldEmail targets the account email.
	FieldEmail = "email"

	// FieldPassword targets the account password.
	FieldPassword = "password"
)

// UserValidator implements the Validator interface for user-related domain
// models: Credentials and UserUpdate.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Credentials / *models.Credentials
//   - models.UserUpdate / *models.UserUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	case models.UserUpdate:
		return v.validateUpdate(value)
	case *models.UserUpdate:
		return v.validateUpdate(*value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// validateCredentials checks the email and password of a signup or login
// request. When fields is empty, both are validated.
func (v *UserValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if credentials.Email == "" {
				return ErrEmptyEmail
			}
			if !isValidEmail(credentials.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateUpdate checks the fields of a partial profile update. Absent fields
// are always valid; a provided email must parse as an address.
func (v *UserValidator) validateUpdate(update models.UserUpdate) error {
	if update.Email != nil {
		if *update.Email == "" {
			return ErrEmptyEmail
		}
		if !isValidEmail(*update.Email) {
			return ErrInvalidEmail
		}
	}

	return nil
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
