package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore exercises behaviour every Store implementation must share.
func testStore(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("create then find", func(t *testing.T) {
		before, err := s.Count(ctx)
		require.NoError(t, err)

		p, err := s.Create(ctx, "Hello", "World")
		require.NoError(t, err)
		assert.NotZero(t, p.ID)
		assert.Equal(t, "Hello", p.Title)
		assert.Equal(t, "World", p.Content)
		assert.False(t, p.CreatedAt.IsZero())

		got, err := s.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, p.Title, got.Title)
		assert.Equal(t, p.Content, got.Content)

		after, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+1, after)
	})

	t.Run("find missing", func(t *testing.T) {
		_, err := s.FindByID(ctx, 1<<40)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		a, err := s.Create(ctx, "first", "aa")
		require.NoError(t, err)
		b, err := s.Create(ctx, "second", "bb")
		require.NoError(t, err)

		posts, err := s.ListAll(ctx)
		require.NoError(t, err)

		ia, ib := -1, -1
		for i, p := range posts {
			switch p.ID {
			case a.ID:
				ia = i
			case b.ID:
				ib = i
			}
		}
		require.NotEqual(t, -1, ia)
		require.NotEqual(t, -1, ib)
		assert.Less(t, ia, ib)
	})

	t.Run("modify", func(t *testing.T) {
		p, err := s.Create(ctx, "old title", "old content")
		require.NoError(t, err)

		require.NoError(t, s.Modify(ctx, &p, "new title", "new content"))
		assert.Equal(t, "new title", p.Title)
		assert.Equal(t, "new content", p.Content)

		got, err := s.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "new title", got.Title)
		assert.Equal(t, "new content", got.Content)
	})

	t.Run("delete", func(t *testing.T) {
		p, err := s.Create(ctx, "doomed", "post")
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, p))

		_, err = s.FindByID(ctx, p.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, s.Delete(ctx, p), ErrNotFound)
	})

	t.Run("tx commits", func(t *testing.T) {
		var id int64
		err := s.InTx(ctx, func(tx PostStore) error {
			p, err := tx.Create(ctx, "in tx", "committed")
			id = p.ID
			return err
		})
		require.NoError(t, err)

		_, err = s.FindByID(ctx, id)
		assert.NoError(t, err)
	})

	t.Run("tx rolls back", func(t *testing.T) {
		before, err := s.Count(ctx)
		require.NoError(t, err)

		boom := errors.New("boom")
		err = s.InTx(ctx, func(tx PostStore) error {
			if _, err := tx.Create(ctx, "in tx", "discarded"); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		after, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}
