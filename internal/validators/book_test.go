// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"bookshelf/models"
)

func ptrStr(s string) *string   { return &s }
func ptrF64(f float64) *float64 { return &f }

func validBookCreate() models.BookCreate {
	return models.BookCreate{
		Title:  "IT",
		Author: "Stephen King",
		Price:  ptrF64(55000),
	}
}

func TestNewBookValidator(t *testing.T) {
	v := NewBookValidator()
	require.NotNil(t, v)
}

func TestBookValidate_Dispatch(t *testing.T) {
	v := NewBookValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("BookCreate value", func(t *testing.T) {
		create := validBookCreate()
		require.NoError(t, v.Validate(ctx, create))
	})

	t.Run("BookCreate pointer", func(t *testing.T) {
		create := validBookCreate()
		require.NoError(t, v.Validate(ctx, &create))
	})

	t.Run("BookUpdate value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.BookUpdate{}))
	})

	t.Run("BookUpdate pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.BookUpdate{}))
	})
}

func TestBookValidate_Create(t *testing.T) {
	v := NewBookValidator()
	ctx := context.Background()

	t.Run("missing title", func(t *testing.T) {
		create := validBookCreate()
		create.Title = ""
		require.ErrorIs(t, v.Validate(ctx, create), ErrEmptyTitle)
	})

	t.Run("missing author", func(t *testing.T) {
		create := validBookCreate()
		create.Author = ""
		require.ErrorIs(t, v.Validate(ctx, create), ErrEmptyAuthor)
	})

	t.Run("missing price", func(t *testing.T) {
		create := validBookCreate()
		create.Price = nil
		require.ErrorIs(t, v.Validate(ctx, create), ErrMissingPrice)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		create := validBookCreate()
		create.Price = ptrF64(0)
		require.NoError(t, v.Validate(ctx, create))
	})

	t.Run("description is optional", func(t *testing.T) {
		create := validBookCreate()
		create.Description = ""
		require.NoError(t, v.Validate(ctx, create))
	})

	t.Run("field scoping", func(t *testing.T) {
		create := validBookCreate()
		create.Author = ""
		// only the title is checked
		require.NoError(t, v.Validate(ctx, create, FieldTitle))
	})

	t.Run("unknown field", func(t *testing.T) {
		create := validBookCreate()
		require.ErrorIs(t, v.Validate(ctx, create, "isbn"), ErrUnknownField)
	})
}

func TestBookValidate_Update(t *testing.T) {
	v := NewBookValidator()
	ctx := context.Background()

	t.Run("empty update is valid", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.BookUpdate{}))
	})

	t.Run("blank title rejected", func(t *testing.T) {
		update := models.BookUpdate{Title: ptrStr("")}
		require.ErrorIs(t, v.Validate(ctx, update), ErrEmptyTitle)
	})

	t.Run("blank author rejected", func(t *testing.T) {
		update := models.BookUpdate{Author: ptrStr("")}
		require.ErrorIs(t, v.Validate(ctx, update), ErrEmptyAuthor)
	})

	t.Run("partial update with price only", func(t *testing.T) {
		update := models.BookUpdate{Price: ptrF64(199.99)}
		require.NoError(t, v.Validate(ctx, update))
	})
}
