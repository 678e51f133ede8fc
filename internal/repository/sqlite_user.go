package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hafprodutora/editcostV3/internal/db"
	"github.com/hafprodutora/editcostV3/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database. Passwords
// are stored in the clear; accounts here are demo-grade, not hardened.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.Email,
		u.Password,
		u.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT email, password, created_at FROM users WHERE email = ?`
	row := r.db.QueryRowContext(ctx, query, email)

	var u domain.User
	var createdAtStr string
	if err := row.Scan(&u.Email, &u.Password, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %q: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	u.CreatedAt = createdAt
	return &u, nil
}
