package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"todo-backend/internal/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type TodoService struct {
	todos domain.TodoRepository
}

func NewTodoService(todos domain.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

func checkText(text string) error {
	if strings.TrimSpace(text) == "" {
		return domain.NewValidationError("text", `"text" must not be empty`)
	}
	return nil
}

func (s *TodoService) Create(ctx context.Context, text string) (*domain.Todo, error) {
	if err := checkText(text); err != nil {
		return nil, err
	}
	t := &domain.Todo{Text: text}
	if err := s.todos.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return t, nil
}

func (s *TodoService) Get(ctx context.Context, id string) (*domain.Todo, error) {
	t, err := s.todos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (s *TodoService) Update(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	if patch.Text != nil {
		if err := checkText(*patch.Text); err != nil {
			return nil, err
		}
	}
	t, err := s.todos.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	ok, err := s.todos.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// List returns one page. Non-positive page or limit fall back to the
// defaults. A page whose window lies past math.MaxInt only reports totals.
func (s *TodoService) List(ctx context.Context, page, limit int) (*domain.TodoPage, error) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var (
		items []domain.Todo
		total int64
		err   error
	)
	if page > math.MaxInt/limit {
		// offset+limit would overflow; no store can hold that many rows
		_, total, err = s.todos.List(ctx, 0, 1)
		items = []domain.Todo{}
	} else {
		items, total, err = s.todos.List(ctx, (page-1)*limit, limit)
	}
	if err != nil {
		return nil, err
	}
	return &domain.TodoPage{
		Items:      items,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(total, limit),
		TotalCount: total,
	}, nil
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	n := total / int64(limit)
	if total%int64(limit) != 0 {
		n++
	}
	return int(n)
}
