package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/repository"
)

type authService struct {
	users    repository.UserRepo
	sessions repository.AuthSessionRepo
}

// NewAuthService creates the demo-grade local auth service. Passwords are
// compared in the clear; nothing here is hardened.
func NewAuthService(users repository.UserRepo, sessions repository.AuthSessionRepo) AuthService {
	return &authService{users: users, sessions: sessions}
}

func (s *authService) Signup(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	return s.users.Create(ctx, &domain.User{
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *authService) Login(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if u.Password != password {
		return ErrInvalidCredentials
	}
	return s.sessions.Set(ctx, email)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *authService) CurrentUser(ctx context.Context) (string, error) {
	email, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotLoggedIn
		}
		return "", err
	}
	return email, nil
}
