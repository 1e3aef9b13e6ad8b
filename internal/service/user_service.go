package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"todo-backend/internal/domain"
)

type PasswordHasher interface {
	Hash(pw string) (string, error)
	Verify(pw, hashed string) bool
}

type TokenIssuer interface {
	Issue(uid string) (string, error)
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

type UserService struct {
	log    *zap.Logger
	users  domain.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewUserService(l *zap.Logger, users domain.UserRepository, hasher PasswordHasher, tokens TokenIssuer) *UserService {
	if l == nil {
		l = zap.NewNop()
	}
	return &UserService{log: l, users: users, hasher: hasher, tokens: tokens}
}

// Register stores a new user with a hashed password. The store's unique
// index decides duplicates; there is no separate existence check.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		FullName:     in.FullName,
		Email:        domain.NormalizeEmail(in.Email),
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}
	s.log.Info("user registered", zap.String("user_id", u.ID))
	return u, nil
}

// Login checks credentials and returns a token bound to the user's id.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	if u == nil || !s.hasher.Verify(password, u.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	tok, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return tok, u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}
