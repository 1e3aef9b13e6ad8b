package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"todo-backend/internal/domain"
)

type memUserRepo struct {
	mu      sync.Mutex
	byID    map[string]domain.User
	byEmail map[string]string
	seq     int
	err     error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]domain.User{}, byEmail: map[string]string{}}
}

func (m *memUserRepo) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return domain.ErrEmailTaken
	}
	m.seq++
	u.ID = fmt.Sprintf("user-%d", m.seq)
	m.byID[u.ID] = *u
	m.byEmail[u.Email] = u.ID
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	id, ok := m.byEmail[email]
	err := m.err
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return m.FindByID(ctx, id)
}

type memTodoRepo struct {
	items []domain.Todo
	seq   int
	err   error
}

func (m *memTodoRepo) index(id string) (int, error) {
	if id == "bad" {
		return -1, domain.ErrInvalidID
	}
	for i := range m.items {
		if m.items[i].ID == id {
			return i, nil
		}
	}
	return -1, nil
}

func (m *memTodoRepo) Create(_ context.Context, t *domain.Todo) error {
	if m.err != nil {
		return m.err
	}
	m.seq++
	t.ID = fmt.Sprintf("todo-%d", m.seq)
	m.items = append(m.items, *t)
	return nil
}

func (m *memTodoRepo) FindByID(_ context.Context, id string) (*domain.Todo, error) {
	i, err := m.index(id)
	if err != nil || i < 0 {
		return nil, err
	}
	t := m.items[i]
	return &t, nil
}

func (m *memTodoRepo) UpdateByID(_ context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	i, err := m.index(id)
	if err != nil || i < 0 {
		return nil, err
	}
	if patch.Text != nil {
		m.items[i].Text = *patch.Text
	}
	t := m.items[i]
	return &t, nil
}

func (m *memTodoRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	i, err := m.index(id)
	if err != nil || i < 0 {
		return false, err
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	return true, nil
}

func (m *memTodoRepo) List(_ context.Context, offset, limit int) ([]domain.Todo, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	total := int64(len(m.items))
	if offset >= len(m.items) {
		return []domain.Todo{}, total, nil
	}
	end := min(offset+limit, len(m.items))
	return append([]domain.Todo(nil), m.items[offset:end]...), total, nil
}

var errStoreDown = errors.New("store down")
