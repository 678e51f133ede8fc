package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hafprodutora/editcostV3/internal/db"
	"github.com/hafprodutora/editcostV3/internal/domain"
)

// SQLiteStateRepo implements StateRepo by storing the whole per-user
// document as one JSON value. The schema is versionless: fields added
// over product iterations simply default when older documents are read.
type SQLiteStateRepo struct {
	db db.DBTX
}

// NewSQLiteStateRepo creates a new SQLiteStateRepo.
func NewSQLiteStateRepo(conn db.DBTX) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: conn}
}

func (r *SQLiteStateRepo) Load(ctx context.Context, email string) (*domain.UserState, error) {
	query := `SELECT doc FROM user_state WHERE email = ?`
	var doc string
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return domain.NewUserState(), nil
		}
		return nil, fmt.Errorf("loading state for %q: %w", email, err)
	}

	st := domain.NewUserState()
	if err := json.Unmarshal([]byte(doc), st); err != nil {
		// A wrong-typed field (say, a cost persisted as a string by an
		// older build) is left at its zero value while the rest of the
		// document still decodes. The read self-heals instead of failing.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("decoding state for %q: %w", email, err)
		}
	}
	st.Normalize()
	return st, nil
}

func (r *SQLiteStateRepo) Save(ctx context.Context, email string, st *domain.UserState) error {
	doc, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding state for %q: %w", email, err)
	}

	query := `INSERT INTO user_state (email, doc, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, email, string(doc), nowUTC()); err != nil {
		return fmt.Errorf("saving state for %q: %w", email, err)
	}
	return nil
}
