package store

import (
	"context"

	"bookshelf/models"
)

// UserRepository provides persistence operations for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user account by its unique email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks up a user account by its identifier.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies a partial profile update and returns the
	// updated record.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
}

// BookRepository provides persistence operations for book records.
//
// All owner-scoped methods include the owner reference in the SQL predicate,
// so a caller can never observe or mutate another user's books through them.
type BookRepository interface {
	// CreateBook inserts a new book owned by userID and returns the record
	// with the server-assigned id.
	CreateBook(ctx context.Context, userID int64, create models.BookCreate) (models.Book, error)

	// ListBooks returns every book whose owner reference equals userID.
	ListBooks(ctx context.Context, userID int64) ([]models.Book, error)

	// GetBook returns the book with the given id if it is owned by userID.
	GetBook(ctx context.Context, userID, bookID int64) (models.Book, error)

	// FindBookByID returns the book with the given id regardless of owner.
	// Used by the service layer's ownership pre-check before mutations.
	FindBookByID(ctx context.Context, bookID int64) (models.Book, error)

	// UpdateBook applies a partial update to the book owned by userID and
	// returns the updated record.
	UpdateBook(ctx context.Context, userID, bookID int64, update models.BookUpdate) (models.Book, error)

	// DeleteBook removes the book owned by userID.
	DeleteBook(ctx context.Context, userID, bookID int64) error
}
