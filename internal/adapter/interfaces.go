// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the bookshelf server.
//
// The primary abstraction is [APIClient], which decouples callers (CLI tools,
// integration harnesses, sibling services) from the underlying protocol. The
// package ships an HTTP/REST implementation ([NewHTTPAPIClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"bookshelf/models"
)

// APIClient defines transport-agnostic communication with the bookshelf
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Signup or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup registers a new account and stores the returned access token.
	Signup(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	// Login authenticates an existing account and stores the returned
	// access token.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	// Me fetches the profile of the authenticated user.
	Me(ctx context.Context) (models.User, error)

	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error)

	// ListBooks fetches the authenticated user's book collection.
	ListBooks(ctx context.Context) ([]models.Book, error)

	// GetBook fetches a single book by id. A nil result with a nil error
	// means the book is not present in the user's collection.
	GetBook(ctx context.Context, bookID int64) (*models.Book, error)

	// CreateBook adds a new book to the user's collection.
	CreateBook(ctx context.Context, create models.BookCreate) (models.Book, error)

	// EditBook applies a partial update to one of the user's books.
	// Returns [ErrForbidden] (wrapped) when the book belongs to another user.
	EditBook(ctx context.Context, bookID int64, update models.BookUpdate) (models.Book, error)

	// DeleteBook removes one of the user's books.
	// Returns [ErrForbidden] (wrapped) when the book belongs to another user.
	DeleteBook(ctx context.Context, bookID int64) error
}
