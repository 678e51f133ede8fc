package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hafprodutora/editcostV3/internal/db"
)

// SQLiteAuthSessionRepo implements AuthSessionRepo using the single-row
// auth_session table.
type SQLiteAuthSessionRepo struct {
	db db.DBTX
}

// NewSQLiteAuthSessionRepo creates a new SQLiteAuthSessionRepo.
func NewSQLiteAuthSessionRepo(conn db.DBTX) *SQLiteAuthSessionRepo {
	return &SQLiteAuthSessionRepo{db: conn}
}

func (r *SQLiteAuthSessionRepo) Set(ctx context.Context, email string) error {
	query := `INSERT OR REPLACE INTO auth_session (id, email) VALUES (1, ?)`
	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("setting auth session: %w", err)
	}
	return nil
}

func (r *SQLiteAuthSessionRepo) Get(ctx context.Context) (string, error) {
	query := `SELECT email FROM auth_session WHERE id = 1`
	var email string
	if err := r.db.QueryRowContext(ctx, query).Scan(&email); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("auth session: %w", ErrNotFound)
		}
		return "", fmt.Errorf("scanning auth session: %w", err)
	}
	return email, nil
}

func (r *SQLiteAuthSessionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM auth_session WHERE id = 1`); err != nil {
		return fmt.Errorf("clearing auth session: %w", err)
	}
	return nil
}
