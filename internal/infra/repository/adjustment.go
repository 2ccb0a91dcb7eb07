package repository

import (
	"context"

	"loyalty-ledger/internal/domain/adjustment"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/repository/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
)

type AdjustmentWriteQueries interface {
	InsertPointAdjustment(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPointAdjustmentParams) error
}

type AdjustmentRepository struct {
	queries AdjustmentWriteQueries
	db      sqlc.DBTX
}

func NewAdjustmentRepository(queries AdjustmentWriteQueries, db sqlc.DBTX) *AdjustmentRepository {
	return &AdjustmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AdjustmentRepository) Create(ctx context.Context, a *adjustment.PointAdjustment) error {
	if err := r.queries.InsertPointAdjustment(ctx, r.db, converter.AdjustmentToInsertParams(a)); err != nil {
		return infra.WrapRepoErr("failed to record point adjustment", err)
	}
	return nil
}
