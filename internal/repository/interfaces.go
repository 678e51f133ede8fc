package repository

import (
	"context"
	"errors"

	"github.com/hafprodutora/editcostV3/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// AuthSessionRepo tracks which account is currently signed in. There is a
// single slot; signing in replaces the previous occupant.
type AuthSessionRepo interface {
	Set(ctx context.Context, email string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// StateRepo loads and stores the per-user state document. Load returns a
// fresh default document when none has been persisted yet, and sanitizes
// whatever it reads before handing it out.
type StateRepo interface {
	Load(ctx context.Context, email string) (*domain.UserState, error)
	Save(ctx context.Context, email string, st *domain.UserState) error
}
