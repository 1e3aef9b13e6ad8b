package domain

import "context"

type Todo struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// TodoPatch carries the fields present in an update payload; nil means keep.
type TodoPatch struct {
	Text *string
}

func (p TodoPatch) Empty() bool { return p.Text == nil }

// TodoPage is one offset page of the todo collection.
type TodoPage struct {
	Items      []Todo
	Page       int
	Limit      int
	TotalPages int
	TotalCount int64
}

// TodoRepository lookups return (nil, nil) when the id does not exist.
type TodoRepository interface {
	Create(ctx context.Context, t *Todo) error
	FindByID(ctx context.Context, id string) (*Todo, error)
	UpdateByID(ctx context.Context, id string, patch TodoPatch) (*Todo, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]Todo, int64, error)
}
