package repository

import (
	"context"

	"loyalty-ledger/internal/domain/checkin"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/repository/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
)

type CheckInWriteQueries interface {
	InsertCheckIn(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCheckInParams) (int64, error)
}

type CheckInRepository struct {
	queries CheckInWriteQueries
	db      sqlc.DBTX
}

func NewCheckInRepository(queries CheckInWriteQueries, db sqlc.DBTX) *CheckInRepository {
	return &CheckInRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CheckInRepository) Insert(ctx context.Context, c *checkin.CheckIn) (bool, error) {
	rows, err := r.queries.InsertCheckIn(ctx, r.db, converter.CheckInToInsertParams(c))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert check-in", err)
	}
	return rows == 1, nil
}
