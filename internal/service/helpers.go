package service

import (
	"context"

	"github.com/hafprodutora/editcostV3/internal/db"
	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/repository"
)

// mutateState is the single writer path shared by the tick handler and
// every user-triggered mutation: read the latest document, apply the
// transform, write it back, all inside one transaction.
func mutateState(ctx context.Context, uow db.UnitOfWork, email string, fn func(st *domain.UserState) error) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		states := repository.NewSQLiteStateRepo(tx)
		st, err := states.Load(ctx, email)
		if err != nil {
			return err
		}
		if err := fn(st); err != nil {
			return err
		}
		return states.Save(ctx, email, st)
	})
}
