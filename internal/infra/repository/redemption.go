package repository

import (
	"context"

	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/repository/converter"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RedemptionWriteQueries interface {
	InsertRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertRedemptionParams) error
	GetRedemptionForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Redemptions, error)
	UpdateRedemptionStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRedemptionStatusParams) error
}

type RedemptionRepository struct {
	queries RedemptionWriteQueries
	db      sqlc.DBTX
}

func NewRedemptionRepository(queries RedemptionWriteQueries, db sqlc.DBTX) *RedemptionRepository {
	return &RedemptionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RedemptionRepository) Create(ctx context.Context, red *redemption.Redemption) error {
	if err := r.queries.InsertRedemption(ctx, r.db, converter.RedemptionToInsertParams(red)); err != nil {
		return infra.WrapRepoErr("failed to create redemption", err)
	}
	return nil
}

func (r *RedemptionRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*redemption.Redemption, error) {
	row, err := r.queries.GetRedemptionForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock redemption", err)
	}
	return converter.RedemptionFromRow(row), nil
}

func (r *RedemptionRepository) UpdateStatus(ctx context.Context, red *redemption.Redemption) error {
	if err := r.queries.UpdateRedemptionStatus(ctx, r.db, converter.RedemptionToStatusParams(red)); err != nil {
		return infra.WrapRepoErr("failed to update redemption status", err)
	}
	return nil
}
