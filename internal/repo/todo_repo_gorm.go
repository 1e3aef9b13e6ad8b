package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todo-backend/internal/domain"
	"todo-backend/internal/feature/todo"
	"todo-backend/pkg/utils"
)

type TodoRepo struct{ db *gorm.DB }

func NewTodoRepo(db *gorm.DB) *TodoRepo { return &TodoRepo{db: db} }

func (r *TodoRepo) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&todo.TodoModel{})
}

func checkUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}

func (r *TodoRepo) Create(ctx context.Context, t *domain.Todo) error {
	m := todo.TodoModel{ID: utils.NewID(), Text: t.Text}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Storage("create todo", err)
	}
	*t = m.ToDomain()
	return nil
}

func (r *TodoRepo) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}
	var m todo.TodoModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Storage("find todo", err)
	}
	t := m.ToDomain()
	return &t, nil
}

func (r *TodoRepo) UpdateByID(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}
	if !patch.Empty() {
		err := r.db.WithContext(ctx).
			Model(&todo.TodoModel{}).
			Where("id = ?", id).
			Updates(map[string]any{"text": *patch.Text}).Error
		if err != nil {
			return nil, domain.Storage("update todo", err)
		}
	}
	// mysql reports zero affected rows for unchanged values, so re-read
	return r.FindByID(ctx, id)
}

func (r *TodoRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	if err := checkUUID(id); err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&todo.TodoModel{})
	if res.Error != nil {
		return false, domain.Storage("delete todo", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *TodoRepo) List(ctx context.Context, offset, limit int) ([]domain.Todo, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&todo.TodoModel{}).Count(&total).Error; err != nil {
		return nil, 0, domain.Storage("count todos", err)
	}
	var ms []todo.TodoModel
	if err := r.db.WithContext(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&ms).Error; err != nil {
		return nil, 0, domain.Storage("list todos", err)
	}
	out := make([]domain.Todo, 0, len(ms))
	for i := range ms {
		out = append(out, ms[i].ToDomain())
	}
	return out, total, nil
}
