package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"bookshelf/models"
)

// Static queries use positional placeholders ($1, $2, ...) understood by both
// the pgx and sqlite3 drivers. Dynamic queries (partial updates, filtered
// lists) are built with squirrel below.
const (
	createUser = `INSERT INTO users (email, name, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING user_id, email, name, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, created_at, updated_at
FROM users
WHERE email = $1;`

	findUserByID = `SELECT user_id, email, name, password_hash, created_at, updated_at
FROM users
WHERE user_id = $1;`

	createBook = `INSERT INTO books (user_id, title, author, description, price, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, title, author, description, price, created_at, updated_at;`

	findBookByID = `SELECT id, user_id, title, author, description, price, created_at, updated_at
FROM books
WHERE id = $1;`

	deleteBook = `DELETE FROM books
WHERE id = $1 AND user_id = $2;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListBooksQuery returns a SELECT over the books table restricted to the
// records owned by userID, newest first.
func buildListBooksQuery(userID int64) (string, []any, error) {
	return psql.
		Select("id", "user_id", "title", "author", "description", "price", "created_at", "updated_at").
		From("books").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id DESC").
		ToSql()
}

// buildGetBookQuery returns a SELECT for a single book scoped to its owner.
func buildGetBookQuery(userID, bookID int64) (string, []any, error) {
	return psql.
		Select("id", "user_id", "title", "author", "description", "price", "created_at", "updated_at").
		From("books").
		Where(sq.Eq{"id": bookID, "user_id": userID}).
		ToSql()
}

// buildUpdateBookQuery returns an UPDATE that sets only the fields present in
// update. The WHERE clause is scoped to both the book id and its owner, so a
// stale pre-check can never mutate another user's record.
func buildUpdateBookQuery(userID, bookID int64, update models.BookUpdate, now time.Time) (string, []any, error) {
	builder := psql.Update("books")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Author != nil {
		builder = builder.Set("author", *update.Author)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}

	return builder.
		Set("updated_at", now).
		Where(sq.Eq{"id": bookID, "user_id": userID}).
		Suffix("RETURNING id, user_id, title, author, description, price, created_at, updated_at").
		ToSql()
}

// buildUpdateUserQuery returns an UPDATE that sets only the profile fields
// present in update.
func buildUpdateUserQuery(userID int64, update models.UserUpdate, now time.Time) (string, []any, error) {
	builder := psql.Update("users")

	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}

	return builder.
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING user_id, email, name, password_hash, created_at, updated_at").
		ToSql()
}
