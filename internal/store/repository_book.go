package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookshelf/internal/logger"
	"bookshelf/models"
)

// bookRepository is the SQL-backed implementation of [BookRepository].
// It executes all book CRUD operations directly against the "books" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, book_id, etc.).
type bookRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateBook inserts a new book record owned by userID and returns the fully
// populated [models.Book] with server-assigned fields (ID, CreatedAt,
// UpdatedAt) via the INSERT ... RETURNING clause.
func (p *bookRepository) CreateBook(ctx context.Context, userID int64, create models.BookCreate) (models.Book, error) {
	log := logger.FromContext(ctx)

	var price float64
	if create.Price != nil {
		price = *create.Price
	}

	now := time.Now()
	var book models.Book
	row := p.DB.QueryRowContext(ctx, createBook, userID, create.Title, create.Author, create.Description, price, now, now)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "bookRepository.CreateBook").
			Int64("user_id", userID).
			Msg("failed to execute insert query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&book.ID, &book.UserID, &book.Title, &book.Author, &book.Description, &book.Price, &book.CreatedAt, &book.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "bookRepository.CreateBook").
			Int64("user_id", userID).
			Msg("failed to scan created book row")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return book, nil
}

// ListBooks retrieves every book owned by the given user, newest first.
//
// Filtering is always applied by the owner reference, so the result can never
// contain another user's records. Returns an empty slice when the user owns
// no books.
func (p *bookRepository) ListBooks(ctx context.Context, userID int64) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBooksQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "bookRepository.ListBooks").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := p.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "bookRepository.ListBooks").
			Int64("user_id", userID).
			Msg("failed to execute query for listing user books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	books := make([]models.Book, 0, 20)

	for rows.Next() {
		var book models.Book

		scanErr := rows.Scan(
			&book.ID,
			&book.UserID,
			&book.Title,
			&book.Author,
			&book.Description,
			&book.Price,
			&book.CreatedAt,
			&book.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "bookRepository.ListBooks").
				Int64("user_id", userID).
				Msg("failed to scan book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		books = append(books, book)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "bookRepository.ListBooks").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return books, nil
}

// GetBook retrieves a single book scoped to its owner.
//
// Returns [ErrBookNotFound] when no record matches both the book id and the
// owner reference.
func (p *bookRepository) GetBook(ctx context.Context, userID, bookID int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBookQuery(userID, bookID)
	if err != nil {
		log.Err(err).
			Str("func", "bookRepository.GetBook").
			Int64("user_id", userID).
			Int64("book_id", bookID).
			Msg("failed to create query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var book models.Book
	row := p.DB.QueryRowContext(ctx, query, args...)

	if rowErr := row.Err(); rowErr != nil {
		log.Err(rowErr).
			Str("func", "bookRepository.GetBook").
			Int64("user_id", userID).
			Int64("book_id", bookID).
			Msg("failed to execute query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, rowErr)
	}

	if scanErr := row.Scan(&book.ID, &book.UserID, &book.Title, &book.Author, &book.Description, &book.Price, &book.CreatedAt, &book.UpdatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(scanErr).
			Str("func", "bookRepository.GetBook").
			Int64("user_id", userID).
			Int64("book_id", bookID).
			Msg("failed to scan book row")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return book, nil
}

// FindBookByID retrieves a single book regardless of its owner.
//
// The service layer uses this lookup to distinguish "record does not exist"
// from "record belongs to someone else" before mutating operations.
func (p *bookRepository) FindBookByID(ctx context.Context, bookID int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := p.DB.QueryRowContext(ctx, findBookByID, bookID)

	if rowErr := row.Err(); rowErr != nil {
		log.Err(rowErr).
			Str("func", "bookRepository.FindBookByID").
			Int64("book_id", bookID).
			Msg("failed to execute query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, rowErr)
	}

	if scanErr := row.Scan(&book.ID, &book.UserID, &book.Title, &book.Author, &book.Description, &book.Price, &book.CreatedAt, &book.UpdatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(scanErr).
			Str("func", "bookRepository.FindBookByID").
			Int64("book_id", bookID).
			Msg("failed to scan book row")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return book, nil
}

// UpdateBook applies a partial update to the book owned by userID and returns
// the updated record.
//
// The UPDATE is built dynamically via [buildUpdateBookQuery]; its WHERE clause
// includes the owner reference, so the statement matches zero rows when the
// book exists but belongs to a different user. Both that case and a missing
// record surface as [ErrBookNotFound].
func (p *bookRepository) UpdateBook(ctx context.Context, userID, bookID int64, update models.BookUpdate) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookQuery(userID, bookID, update, time.Now())
	if err != nil {
		log.Err(err).
			Str("func", "bookRepository.UpdateBook").
			Int64("user_id", userID).
			Int64("book_id", bookID).
			Msg("failed to build update query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var book models.Book
	row := p.DB.QueryRowContext(ctx, query, args...)

	if rowErr := row.Err(); rowErr != nil {
		log.Err(rowErr).
			Str("func", "bookRepository.UpdateBook").
			Int64("user_id", userID).
			Int64("book_id", bookID).
			Msg("failed to execute update query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, rowErr)
	}

	if scanErr := row.Scan(&book.ID, &book.UserID, &book.Title, &book.Author, &book.Description, &book.Price, &book.CreatedAt, &book.UpdatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "bookRepository.UpdateBook").
				Int64("user_id", userID).
				Int64("book_id", bookID).
				Msg("record not found")
			return models.Book{}, ErrBookNotFound
		}

		log.Err(scanErr).
			Str("func", "bookRepository.UpdateBook").
			Int64("user_id", userID).
			Int64("book_id", bookID).
			Msg("failed to scan updated book row")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return book, nil
}

// DeleteBook removes the book owned by userID.
//
// The DELETE predicate includes the owner reference. When no rows are
// affected the record is either missing or owned by a different user;
// both cases surface as [ErrBookNotFound].
func (p *bookRepository) DeleteBook(ctx context.Context, userID, bookID int64) error {
	log := logger.FromContext(ctx)

	result, execErr := p.DB.ExecContext(ctx, deleteBook, bookID, userID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "bookRepository.DeleteBook").
			Int64("user_id", userID).
			Int64("book_id", bookID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "bookRepository.DeleteBook").
			Int64("user_id", userID).
			Int64("book_id", bookID).
			Msg("failed to read affected rows count")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "bookRepository.DeleteBook").
			Int64("user_id", userID).
			Int64("book_id", bookID).
			Msg("record not found")
		return ErrBookNotFound
	}

	log.Info().
		Str("func", "bookRepository.DeleteBook").
		Int64("user_id", userID).
		Int64("book_id", bookID).
		Msg("successfully deleted book")

	return nil
}
