package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/posts-api/internal/models"
)

const postColumns = `id, title, content, created_at, updated_at`

// PostgresStore implements Store on top of the posts table. The same value
// works against the pool or, inside InTx, against a single transaction.
type PostgresStore struct {
	db *sqlx.DB
	q  sqlx.ExtContext
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db, q: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) InTx(ctx context.Context, fn func(PostStore) error) error {
	// already inside a transaction: join it
	if _, ok := s.q.(*sqlx.Tx); ok {
		return fn(s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&PostgresStore{db: s.db, q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}

	err := sqlx.SelectContext(ctx, s.q, &posts, `SELECT `+postColumns+` FROM posts ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post

	err := sqlx.GetContext(ctx, s.q, &post, `SELECT `+postColumns+` FROM posts WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("find post %d: %w", id, err)
	}
	return post, nil
}

func (s *PostgresStore) Create(ctx context.Context, title, content string) (models.Post, error) {
	var post models.Post

	query := `
        INSERT INTO posts (title, content)
        VALUES ($1, $2)
        RETURNING ` + postColumns

	if err := sqlx.GetContext(ctx, s.q, &post, query, title, content); err != nil {
		return models.Post{}, fmt.Errorf("insert post: %w", err)
	}
	return post, nil
}

func (s *PostgresStore) Modify(ctx context.Context, post *models.Post, title, content string) error {
	var updated models.Post

	query := `
        UPDATE posts
        SET title=$1, content=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING ` + postColumns

	err := sqlx.GetContext(ctx, s.q, &updated, query, title, content, post.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update post %d: %w", post.ID, err)
	}

	*post = updated
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, post models.Post) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM posts WHERE id=$1`, post.ID)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", post.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post %d: %w", post.ID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := sqlx.GetContext(ctx, s.q, &n, `SELECT COUNT(*) FROM posts`); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}
