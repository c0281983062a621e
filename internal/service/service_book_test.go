// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/logger"
	"bookshelf/internal/store"
	"bookshelf/internal/validators"
	"bookshelf/models"
)

// ─────────────────────────────────────────────
// Mock: store.BookRepository
// ─────────────────────────────────────────────

type mockBookRepository struct {
	createFn   func(ctx context.Context, userID int64, create models.BookCreate) (models.Book, error)
	listFn     func(ctx context.Context, userID int64) ([]models.Book, error)
	getFn      func(ctx context.Context, userID, bookID int64) (models.Book, error)
	findByIDFn func(ctx context.Context, bookID int64) (models.Book, error)
	updateFn   func(ctx context.Context, userID, bookID int64, update models.BookUpdate) (models.Book, error)
	deleteFn   func(ctx context.Context, userID, bookID int64) error
}

func (m *mockBookRepository) CreateBook(ctx context.Context, userID int64, create models.BookCreate) (models.Book, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, create)
	}
	return models.Book{}, nil
}

func (m *mockBookRepository) ListBooks(ctx context.Context, userID int64) ([]models.Book, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockBookRepository) GetBook(ctx context.Context, userID, bookID int64) (models.Book, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, bookID)
	}
	return models.Book{}, nil
}

func (m *mockBookRepository) FindBookByID(ctx context.Context, bookID int64) (models.Book, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, bookID)
	}
	return models.Book{}, nil
}

func (m *mockBookRepository) UpdateBook(ctx context.Context, userID, bookID int64, update models.BookUpdate) (models.Book, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, bookID, update)
	}
	return models.Book{}, nil
}

func (m *mockBookRepository) DeleteBook(ctx context.Context, userID, bookID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, bookID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestBookService(repo *mockBookRepository) *bookService {
	return &bookService{
		bookRepository: repo,
		validator:      validators.NewBookValidator(),
		logger:         logger.Nop(),
	}
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestBookService_List_ReturnsOnlyOwnBooks(t *testing.T) {
	var requestedUserID int64
	repo := &mockBookRepository{
		listFn: func(ctx context.Context, userID int64) ([]models.Book, error) {
			requestedUserID = userID
			return []models.Book{{ID: 1, UserID: userID, Title: "IT"}}, nil
		},
	}
	svc := newTestBookService(repo)

	books, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), requestedUserID)
	require.Len(t, books, 1)
	assert.Equal(t, int64(10), books[0].UserID)
}

func TestBookService_List_RepositoryError(t *testing.T) {
	repo := &mockBookRepository{
		listFn: func(ctx context.Context, userID int64) ([]models.Book, error) {
			return nil, errRepository
		},
	}
	svc := newTestBookService(repo)

	_, err := svc.List(context.Background(), 10)
	require.ErrorIs(t, err, errRepository)
}

// ─────────────────────────────────────────────
// Get
// ─────────────────────────────────────────────

func TestBookService_Get_Found(t *testing.T) {
	repo := &mockBookRepository{
		getFn: func(ctx context.Context, userID, bookID int64) (models.Book, error) {
			return models.Book{ID: bookID, UserID: userID, Title: "IT"}, nil
		},
	}
	svc := newTestBookService(repo)

	book, err := svc.Get(context.Background(), 10, 1)
	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, "IT", book.Title)
}

func TestBookService_Get_AbsentIsNotAnError(t *testing.T) {
	repo := &mockBookRepository{
		getFn: func(ctx context.Context, userID, bookID int64) (models.Book, error) {
			return models.Book{}, store.ErrBookNotFound
		},
	}
	svc := newTestBookService(repo)

	book, err := svc.Get(context.Background(), 10, 404)
	require.NoError(t, err)
	assert.Nil(t, book)
}

func TestBookService_Get_RepositoryError(t *testing.T) {
	repo := &mockBookRepository{
		getFn: func(ctx context.Context, userID, bookID int64) (models.Book, error) {
			return models.Book{}, errRepository
		},
	}
	svc := newTestBookService(repo)

	_, err := svc.Get(context.Background(), 10, 1)
	require.ErrorIs(t, err, errRepository)
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestBookService_Create_Success(t *testing.T) {
	repo := &mockBookRepository{
		createFn: func(ctx context.Context, userID int64, create models.BookCreate) (models.Book, error) {
			return models.Book{ID: 1, UserID: userID, Title: create.Title, Author: create.Author, Price: *create.Price}, nil
		},
	}
	svc := newTestBookService(repo)

	book, err := svc.Create(context.Background(), 10, models.BookCreate{
		Title:  "IT",
		Author: "Stephen King",
		Price:  floatPtr(55000),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), book.UserID)
	assert.Equal(t, 55000.0, book.Price)
}

func TestBookService_Create_MissingFields(t *testing.T) {
	svc := newTestBookService(&mockBookRepository{})
	ctx := context.Background()

	cases := []models.BookCreate{
		{Author: "Stephen King", Price: floatPtr(1)},
		{Title: "IT", Price: floatPtr(1)},
		{Title: "IT", Author: "Stephen King"},
	}
	for _, create := range cases {
		_, err := svc.Create(ctx, 10, create)
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

// ─────────────────────────────────────────────
// Edit
// ─────────────────────────────────────────────

func TestBookService_Edit_Success(t *testing.T) {
	repo := &mockBookRepository{
		findByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{ID: bookID, UserID: 10}, nil
		},
		updateFn: func(ctx context.Context, userID, bookID int64, update models.BookUpdate) (models.Book, error) {
			return models.Book{ID: bookID, UserID: userID, Title: *update.Title}, nil
		},
	}
	svc := newTestBookService(repo)

	book, err := svc.Edit(context.Background(), 10, 1, models.BookUpdate{Title: strPtr("IT")})
	require.NoError(t, err)
	assert.Equal(t, "IT", book.Title)
}

func TestBookService_Edit_ForeignBook(t *testing.T) {
	updateCalled := false
	repo := &mockBookRepository{
		findByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{ID: bookID, UserID: 99}, nil
		},
		updateFn: func(ctx context.Context, userID, bookID int64, update models.BookUpdate) (models.Book, error) {
			updateCalled = true
			return models.Book{}, nil
		},
	}
	svc := newTestBookService(repo)

	_, err := svc.Edit(context.Background(), 10, 1, models.BookUpdate{Title: strPtr("IT")})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, updateCalled)
}

func TestBookService_Edit_MissingBook(t *testing.T) {
	repo := &mockBookRepository{
		findByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{}, store.ErrBookNotFound
		},
	}
	svc := newTestBookService(repo)

	_, err := svc.Edit(context.Background(), 10, 404, models.BookUpdate{Title: strPtr("IT")})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestBookService_Edit_BookVanishedAfterCheck(t *testing.T) {
	repo := &mockBookRepository{
		findByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{ID: bookID, UserID: 10}, nil
		},
		updateFn: func(ctx context.Context, userID, bookID int64, update models.BookUpdate) (models.Book, error) {
			return models.Book{}, store.ErrBookNotFound
		},
	}
	svc := newTestBookService(repo)

	_, err := svc.Edit(context.Background(), 10, 1, models.BookUpdate{Title: strPtr("IT")})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestBookService_Edit_InvalidUpdate(t *testing.T) {
	svc := newTestBookService(&mockBookRepository{})

	_, err := svc.Edit(context.Background(), 10, 1, models.BookUpdate{Title: strPtr("")})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestBookService_Delete_Success(t *testing.T) {
	repo := &mockBookRepository{
		findByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{ID: bookID, UserID: 10}, nil
		},
	}
	svc := newTestBookService(repo)

	require.NoError(t, svc.Delete(context.Background(), 10, 1))
}

func TestBookService_Delete_ForeignBook(t *testing.T) {
	deleteCalled := false
	repo := &mockBookRepository{
		findByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{ID: bookID, UserID: 99}, nil
		},
		deleteFn: func(ctx context.Context, userID, bookID int64) error {
			deleteCalled = true
			return nil
		},
	}
	svc := newTestBookService(repo)

	err := svc.Delete(context.Background(), 10, 1)
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, deleteCalled)
}

func TestBookService_Delete_MissingBook(t *testing.T) {
	repo := &mockBookRepository{
		findByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{}, store.ErrBookNotFound
		},
	}
	svc := newTestBookService(repo)

	err := svc.Delete(context.Background(), 10, 404)
	require.ErrorIs(t, err, ErrAccessDenied)
}
