package repository

import (
	"context"

	"loyalty-ledger/internal/domain/balance"
	"loyalty-ledger/internal/infra"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BalanceQueries interface {
	GetUserPointsForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	UpdateUserPoints(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserPointsParams) error
}

type BalanceRepository struct {
	queries BalanceQueries
	db      sqlc.DBTX
}

func NewBalanceRepository(queries BalanceQueries, db sqlc.DBTX) *BalanceRepository {
	return &BalanceRepository{
		queries: queries,
		db:      db,
	}
}

// ApplyDelta holds the user row lock from the read until the surrounding
// transaction ends, so concurrent writers for the same user serialize. The
// lock is NO KEY UPDATE: it must not conflict with the KEY SHARE that foreign
// key checks from ledger inserts take on the same row.
func (r *BalanceRepository) ApplyDelta(ctx context.Context, userID uuid.UUID, delta int64, clampToZero bool) (balance.Change, error) {
	current, err := r.queries.GetUserPointsForUpdate(ctx, r.db, userID)
	if err != nil {
		return balance.Change{}, infra.WrapRepoErr("failed to lock user balance", err)
	}

	change, err := balance.ApplyDelta(current, delta, clampToZero)
	if err != nil {
		return balance.Change{}, err
	}
	if change.Applied == 0 {
		return change, nil
	}

	err = r.queries.UpdateUserPoints(ctx, r.db, sqlc.UpdateUserPointsParams{
		ID:     userID,
		Points: change.After,
	})
	if err != nil {
		return balance.Change{}, infra.WrapRepoErr("failed to update user balance", err)
	}
	return change, nil
}
