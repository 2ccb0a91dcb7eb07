package repository

import (
	"context"
	"time"

	"loyalty-ledger/internal/infra"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PromoWriteQueries interface {
	InsertPromoUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPromoUsageParams) (int64, error)
	IncrementPromoUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type PromoRepository struct {
	queries PromoWriteQueries
	db      sqlc.DBTX
}

func NewPromoRepository(queries PromoWriteQueries, db sqlc.DBTX) *PromoRepository {
	return &PromoRepository{
		queries: queries,
		db:      db,
	}
}

// InsertUsage reports false when the user already used the promo.
func (r *PromoRepository) InsertUsage(ctx context.Context, userID, promoID uuid.UUID, usedAt time.Time) (bool, error) {
	rows, err := r.queries.InsertPromoUsage(ctx, r.db, sqlc.InsertPromoUsageParams{
		UserID:  userID,
		PromoID: promoID,
		UsedAt:  pgconv.TimeToPgtype(usedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert promo usage", err)
	}
	return rows == 1, nil
}

// IncrementUsage reports false when the promo is already at its cap.
func (r *PromoRepository) IncrementUsage(ctx context.Context, promoID uuid.UUID) (bool, error) {
	rows, err := r.queries.IncrementPromoUsage(ctx, r.db, promoID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment promo usage", err)
	}
	return rows == 1, nil
}
