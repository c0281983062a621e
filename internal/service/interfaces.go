package service

import (
	"context"

	"bookshelf/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes profile operations for an authenticated user.
type UserService interface {
	Me(ctx context.Context, userID int64) (models.User, error)
	Update(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
}

// BookService exposes the per-user book collection.
//
// Every method receives the identifier of the authenticated user and operates
// strictly within that user's collection.
type BookService interface {
	// List returns all books owned by the user.
	List(ctx context.Context, userID int64) ([]models.Book, error)

	// Get returns the user's book with the given id, or (nil, nil) when no
	// such book exists in the user's collection.
	Get(ctx context.Context, userID, bookID int64) (*models.Book, error)

	// Create adds a new book to the user's collection.
	Create(ctx context.Context, userID int64, create models.BookCreate) (models.Book, error)

	// Edit applies a partial update to the user's book.
	// Returns ErrAccessDenied when the book is missing or owned by another user.
	Edit(ctx context.Context, userID, bookID int64, update models.BookUpdate) (models.Book, error)

	// Delete removes the user's book.
	// Returns ErrAccessDenied when the book is missing or owned by another user.
	Delete(ctx context.Context, userID, bookID int64) error
}
