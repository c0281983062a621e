package validators

import (
	"context"
	"fmt"

	"bookshelf/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTitle targets the book title.
	FieldTitle = "title"

	// FieldAuthor targets the book author.
	FieldAuthor = "author"

	// FieldPrice targets the book price.
	FieldPrice = "price"
)

// BookValidator implements the Validator interface for book-related domain
// models: BookCreate and BookUpdate.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type BookValidator struct {
}

// NewBookValidator constructs a new BookValidator
// and returns it as the Validator interface.
func NewBookValidator() Validator {
	return &BookValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.BookCreate / *models.BookCreate
//   - models.BookUpdate / *models.BookUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *BookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BookCreate:
		return v.validateCreate(value, fields...)
	case *models.BookCreate:
		return v.validateCreate(*value, fields...)
	case models.BookUpdate:
		return v.validateUpdate(value)
	case *models.BookUpdate:
		return v.validateUpdate(*value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// validateCreate checks that every mandatory field of a new book is present.
// When fields is empty, all mandatory fields are validated.
func (v *BookValidator) validateCreate(create models.BookCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldAuthor, FieldPrice}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if create.Title == "" {
				return ErrEmptyTitle
			}
		case FieldAuthor:
			if create.Author == "" {
				return ErrEmptyAuthor
			}
		case FieldPrice:
			if create.Price == nil {
				return ErrMissingPrice
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateUpdate checks the fields of a partial book update. Absent fields
// are always valid; a provided title or author must not be blank.
func (v *BookValidator) validateUpdate(update models.BookUpdate) error {
	if update.Title != nil && *update.Title == "" {
		return ErrEmptyTitle
	}
	if update.Author != nil && *update.Author == "" {
		return ErrEmptyAuthor
	}

	return nil
}
