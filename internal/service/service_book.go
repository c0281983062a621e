package service

import (
	"context"
	"errors"
	"fmt"

	"bookshelf/internal/logger"
	"bookshelf/internal/store"
	"bookshelf/internal/validators"
	"bookshelf/models"
)

// bookService is the concrete implementation of BookService.
//
// Ownership is enforced twice: the service pre-checks the record's owner
// before every mutation (so that a foreign book yields ErrAccessDenied, not
// a silent no-op), and the repository predicates are additionally scoped to
// the owner, so a concurrent owner change between check and mutation can
// never touch another user's record.
type bookService struct {
	bookRepository store.BookRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewBookService constructs a BookService wired to the given BookRepository.
func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		validator:      validators.NewBookValidator(),
		logger:         logger,
	}
}

// List returns every book in the user's collection.
func (b *bookService) List(ctx context.Context, userID int64) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	books, err := b.bookRepository.ListBooks(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing books ended with error")
		return nil, fmt.Errorf("listing books ended with error: %w", err)
	}

	return books, nil
}

// Get returns the user's book with the given id.
//
// A book that does not exist in the user's collection is not an error:
// the method returns (nil, nil) and the transport layer renders it as an
// empty body.
func (b *bookService) Get(ctx context.Context, userID, bookID int64) (*models.Book, error) {
	log := logger.FromContext(ctx)

	book, err := b.bookRepository.GetBook(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, nil
		}

		log.Err(err).Int64("user_id", userID).Int64("book_id", bookID).Msg("book search ended with error")
		return nil, fmt.Errorf("book search ended with error: %w", err)
	}

	return &book, nil
}

// Create adds a new book to the user's collection.
//
// Returns ErrInvalidDataProvided when a mandatory field (title, author,
// price) is missing or empty.
func (b *bookService) Create(ctx context.Context, userID int64, create models.BookCreate) (models.Book, error) {
	log := logger.FromContext(ctx)

	if err := b.validator.Validate(ctx, create); err != nil {
		log.Error().Int64("user_id", userID).Msg("invalid book data provided")
		return models.Book{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	book, err := b.bookRepository.CreateBook(ctx, userID, create)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return book, nil
}

// Edit applies a partial update to the user's book.
//
// Returns ErrAccessDenied when the target book does not exist or belongs to
// a different user, ErrInvalidDataProvided when a provided field fails
// validation.
func (b *bookService) Edit(ctx context.Context, userID, bookID int64, update models.BookUpdate) (models.Book, error) {
	log := logger.FromContext(ctx)

	if err := b.validator.Validate(ctx, update); err != nil {
		log.Error().Int64("user_id", userID).Int64("book_id", bookID).Msg("invalid book update provided")
		return models.Book{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := b.checkOwnership(ctx, userID, bookID); err != nil {
		return models.Book{}, err
	}

	updatedBook, err := b.bookRepository.UpdateBook(ctx, userID, bookID, update)
	if err != nil {
		// the record was deleted or re-owned between the check and the update
		if errors.Is(err, store.ErrBookNotFound) {
			return models.Book{}, ErrAccessDenied
		}

		log.Err(err).Int64("user_id", userID).Int64("book_id", bookID).Msg("book update ended with error")
		return models.Book{}, fmt.Errorf("book update ended with error: %w", err)
	}

	return updatedBook, nil
}

// Delete removes the user's book.
//
// Returns ErrAccessDenied when the target book does not exist or belongs to
// a different user.
func (b *bookService) Delete(ctx context.Context, userID, bookID int64) error {
	log := logger.FromContext(ctx)

	if err := b.checkOwnership(ctx, userID, bookID); err != nil {
		return err
	}

	if err := b.bookRepository.DeleteBook(ctx, userID, bookID); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return ErrAccessDenied
		}

		log.Err(err).Int64("user_id", userID).Int64("book_id", bookID).Msg("book deletion ended with error")
		return fmt.Errorf("book deletion ended with error: %w", err)
	}

	return nil
}

// checkOwnership loads the book regardless of owner and verifies it belongs
// to the given user. Both a missing record and a foreign owner collapse into
// ErrAccessDenied, so a caller cannot probe which book ids exist.
func (b *bookService) checkOwnership(ctx context.Context, userID, bookID int64) error {
	log := logger.FromContext(ctx)

	book, err := b.bookRepository.FindBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return ErrAccessDenied
		}

		log.Err(err).Int64("user_id", userID).Int64("book_id", bookID).Msg("ownership check ended with error")
		return fmt.Errorf("ownership check ended with error: %w", err)
	}

	if book.UserID != userID {
		log.Warn().
			Int64("user_id", userID).
			Int64("book_id", bookID).
			Int64("owner_id", book.UserID).
			Msg("attempt to access a foreign book")
		return ErrAccessDenied
	}

	return nil
}
