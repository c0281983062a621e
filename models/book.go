package models

import "time"

// Book represents a single record in a user's book collection.
//
// Every book belongs to exactly one user for its entire lifetime: UserID is
// assigned at creation from the authenticated caller and is never updated.
// All read and write operations are scoped to the owning user.
type Book struct {
	// ID is the server-assigned unique identifier of the book.
	ID int64 `json:"id"`

	// UserID is the owner reference: the identifier of the user that
	// created the book. Immutable once created.
	UserID int64 `json:"user_id"`

	// Title is the book title. Required.
	Title string `json:"title"`

	// Author is the book author. Required.
	Author string `json:"author"`

	// Description is an optional free-form annotation.
	Description string `json:"description,omitempty"`

	// Price is the book price. Required.
	Price float64 `json:"price"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookCreate carries the fields accepted by the create-book endpoint.
//
// Price is a pointer so that an absent field can be distinguished from an
// explicit zero: the reference contract rejects a request without a price.
type BookCreate struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price"`
}

// BookUpdate describes a partial update of a book record. Nil fields are
// retained as stored; non-nil fields replace the stored value. The owner
// reference is not part of the update surface.
type BookUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Author      *string  `json:"author,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}
