package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-backend/internal/domain"
)

func TestTodoRepo_CRUD(t *testing.T) {
	r := NewTodoRepo(newTestDB(t))
	ctx := context.Background()

	td := &domain.Todo{Text: "buy milk"}
	require.NoError(t, r.Create(ctx, td))
	require.NotEmpty(t, td.ID)

	got, err := r.FindByID(ctx, td.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "buy milk", got.Text)

	text := "buy oat milk"
	upd, err := r.UpdateByID(ctx, td.ID, domain.TodoPatch{Text: &text})
	require.NoError(t, err)
	require.NotNil(t, upd)
	assert.Equal(t, td.ID, upd.ID)
	assert.Equal(t, text, upd.Text)

	same, err := r.UpdateByID(ctx, td.ID, domain.TodoPatch{})
	require.NoError(t, err)
	assert.Equal(t, text, same.Text)

	ok, err := r.DeleteByID(ctx, td.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.DeleteByID(ctx, td.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err = r.FindByID(ctx, td.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTodoRepo_UpdateMissing(t *testing.T) {
	r := NewTodoRepo(newTestDB(t))
	text := "x"
	got, err := r.UpdateByID(context.Background(), "0190b1a4-6f6e-7c3a-9d2e-1a2b3c4d5e6f", domain.TodoPatch{Text: &text})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTodoRepo_InvalidID(t *testing.T) {
	r := NewTodoRepo(newTestDB(t))
	ctx := context.Background()

	_, err := r.FindByID(ctx, "123")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	_, err = r.DeleteByID(ctx, "123")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	_, err = r.UpdateByID(ctx, "123", domain.TodoPatch{})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestTodoRepo_ListInsertionOrder(t *testing.T) {
	r := NewTodoRepo(newTestDB(t))
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		require.NoError(t, r.Create(ctx, &domain.Todo{Text: fmt.Sprintf("todo-%02d", i)}))
	}

	items, total, err := r.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	require.Len(t, items, 10)
	assert.Equal(t, "todo-00", items[0].Text)
	assert.Equal(t, "todo-09", items[9].Text)

	items, _, err = r.List(ctx, 20, 10)
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "todo-20", items[0].Text)
}
