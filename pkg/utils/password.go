package utils

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"todo-backend/internal/domain"
)

// PasswordHasher hashes with bcrypt. The cost comes from configuration as
// text; a bad value only surfaces when Hash is called.
type PasswordHasher struct {
	cost    int
	costErr error
}

func NewPasswordHasher(saltRounds string) *PasswordHasher {
	cost, err := ParseCost(saltRounds)
	return &PasswordHasher{cost: cost, costErr: err}
}

// ParseCost validates a bcrypt cost factor.
func ParseCost(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("salt rounds %q is not a number", s)
	}
	if n < bcrypt.MinCost || n > bcrypt.MaxCost {
		return 0, fmt.Errorf("salt rounds %d out of range [%d, %d]", n, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return n, nil
}

func (h *PasswordHasher) Hash(pw string) (string, error) {
	if h.costErr != nil {
		return "", &domain.HashError{Err: h.costErr}
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pw), h.cost)
	if err != nil {
		return "", &domain.HashError{Err: err}
	}
	return string(b), nil
}

func (h *PasswordHasher) Verify(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
