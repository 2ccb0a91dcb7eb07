package readstore

import (
	"context"

	"loyalty-ledger/internal/infra"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserPoints(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetUserBalanceSummary(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserBalanceSummaryRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) Points(ctx context.Context, userID uuid.UUID) (int64, error) {
	points, err := r.queries.GetUserPoints(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to get user points", err)
	}
	return points, nil
}

func (r *UserReadStore) BalanceSummary(ctx context.Context, userID uuid.UUID) (*queries.BalanceView, error) {
	row, err := r.queries.GetUserBalanceSummary(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get balance summary", err)
	}
	return &queries.BalanceView{
		UserID:         row.ID,
		Points:         row.Points,
		LifetimeEarned: row.LifetimeEarned,
		LifetimeSpent:  row.LifetimeSpent,
	}, nil
}
