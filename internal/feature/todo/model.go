package todo

import (
	"time"

	"todo-backend/internal/domain"
)

// TodoModel ids are UUIDv7, so ordering by id is insertion order.
type TodoModel struct {
	ID   string `gorm:"primaryKey;type:varchar(36)"`
	Text string `gorm:"type:text;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (TodoModel) TableName() string { return "todos" }

func (m *TodoModel) ToDomain() domain.Todo {
	return domain.Todo{ID: m.ID, Text: m.Text}
}
