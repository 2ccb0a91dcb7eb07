package repository

import (
	"context"

	"loyalty-ledger/internal/infra"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ItemStockQueries interface {
	DecrementItemStock(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	RestoreItemStock(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ItemRepository struct {
	queries ItemStockQueries
	db      sqlc.DBTX
}

func NewItemRepository(queries ItemStockQueries, db sqlc.DBTX) *ItemRepository {
	return &ItemRepository{
		queries: queries,
		db:      db,
	}
}

// DecrementStock takes one unit of finite stock. It reports false when the
// item has none left; unlimited items never match the guard.
func (r *ItemRepository) DecrementStock(ctx context.Context, itemID uuid.UUID) (bool, error) {
	rows, err := r.queries.DecrementItemStock(ctx, r.db, itemID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement item stock", err)
	}
	return rows == 1, nil
}

func (r *ItemRepository) RestoreStock(ctx context.Context, itemID uuid.UUID) (bool, error) {
	rows, err := r.queries.RestoreItemStock(ctx, r.db, itemID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to restore item stock", err)
	}
	return rows == 1, nil
}
