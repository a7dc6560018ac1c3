package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/vaughan-dsouza/posts-api/internal/models"
)

// MemoryStore keeps posts in process. It is used when no DATABASE_URL is
// configured and as the backing store for handler tests.
type MemoryStore struct {
	mu    sync.Mutex
	state *memState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: &memState{now: time.Now}}
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

// InTx serializes fn with every other call and applies its writes only when
// fn succeeds.
func (s *MemoryStore) InTx(ctx context.Context, fn func(PostStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(work); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ListAll(ctx)
}

func (s *MemoryStore) FindByID(ctx context.Context, id int64) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.FindByID(ctx, id)
}

func (s *MemoryStore) Create(ctx context.Context, title, content string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Create(ctx, title, content)
}

func (s *MemoryStore) Modify(ctx context.Context, post *models.Post, title, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Modify(ctx, post, title, content)
}

func (s *MemoryStore) Delete(ctx context.Context, post models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Delete(ctx, post)
}

func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Count(ctx)
}

// memState is the unlocked store. Callers hold MemoryStore.mu.
type memState struct {
	posts  []models.Post
	lastID int64
	now    func() time.Time
}

func (m *memState) clone() *memState {
	return &memState{
		posts:  slices.Clone(m.posts),
		lastID: m.lastID,
		now:    m.now,
	}
}

func (m *memState) index(id int64) int {
	return slices.IndexFunc(m.posts, func(p models.Post) bool { return p.ID == id })
}

func (m *memState) ListAll(ctx context.Context) ([]models.Post, error) {
	out := make([]models.Post, len(m.posts))
	copy(out, m.posts)
	return out, nil
}

func (m *memState) FindByID(ctx context.Context, id int64) (models.Post, error) {
	i := m.index(id)
	if i < 0 {
		return models.Post{}, ErrNotFound
	}
	return m.posts[i], nil
}

func (m *memState) Create(ctx context.Context, title, content string) (models.Post, error) {
	m.lastID++
	now := m.now()

	post := models.Post{
		ID:        m.lastID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.posts = append(m.posts, post)
	return post, nil
}

func (m *memState) Modify(ctx context.Context, post *models.Post, title, content string) error {
	i := m.index(post.ID)
	if i < 0 {
		return ErrNotFound
	}

	m.posts[i].Title = title
	m.posts[i].Content = content
	m.posts[i].UpdatedAt = m.now()

	*post = m.posts[i]
	return nil
}

func (m *memState) Delete(ctx context.Context, post models.Post) error {
	i := m.index(post.ID)
	if i < 0 {
		return ErrNotFound
	}
	m.posts = slices.Delete(m.posts, i, i+1)
	return nil
}

func (m *memState) Count(ctx context.Context) (int64, error) {
	return int64(len(m.posts)), nil
}
