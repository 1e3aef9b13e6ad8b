// Package request holds the inbound payload schemas and turns binding
// failures into domain validation errors.
package request

import (
	"strconv"
	"strings"

	"todo-backend/internal/domain"
)

// bcrypt ignores everything past 72 bytes
const maxPasswordBytes = 72

type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return domain.NewValidationError("fullName", `"fullName" is not allowed to be empty`)
	}
	if strings.TrimSpace(r.Email) == "" {
		return domain.NewValidationError("email", `"email" is not allowed to be empty`)
	}
	return checkPassword(r.Password)
}

type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) Validate() error { return checkPassword(r.Password) }

func checkPassword(pw string) error {
	if len(pw) > maxPasswordBytes {
		return domain.NewValidationError("password", `"password" must be at most 72 bytes`)
	}
	return nil
}

type CreateTodoRequest struct {
	Text string `json:"text" binding:"required"`
}

func (r *CreateTodoRequest) Validate() error { return checkText(&r.Text) }

type TodoIDParam struct {
	ID string `uri:"id" binding:"required"`
}

type UpdateTodoRequest struct {
	ID   string  `uri:"id" json:"-" binding:"required"`
	Text *string `json:"text"`
}

func (r *UpdateTodoRequest) Validate() error { return checkText(r.Text) }

func checkText(text *string) error {
	if text != nil && strings.TrimSpace(*text) == "" {
		return domain.NewValidationError("text", `"text" is not allowed to be empty`)
	}
	return nil
}

// ListTodosQuery keeps page and limit as text: non-numeric values fall
// back to the defaults instead of failing the request.
type ListTodosQuery struct {
	Page  string `form:"page"`
	Limit string `form:"limit"`
}

func (q *ListTodosQuery) Values(defPage, defLimit int) (page, limit int) {
	return atoiDefault(q.Page, defPage), atoiDefault(q.Limit, defLimit)
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && v > 0 {
		return v
	}
	return def
}
