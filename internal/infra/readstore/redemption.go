package readstore

import (
	"context"

	"loyalty-ledger/internal/infra"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type RedemptionReadQueries interface {
	GetRedemptionView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRedemptionViewRow, error)
	ListRedemptionsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRedemptionsByUserParams) ([]sqlc.ListRedemptionsByUserRow, error)
}

type RedemptionReadStore struct {
	queries RedemptionReadQueries
	db      sqlc.DBTX
}

func NewRedemptionReadStore(queries RedemptionReadQueries, db sqlc.DBTX) *RedemptionReadStore {
	return &RedemptionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RedemptionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RedemptionView, error) {
	row, err := r.queries.GetRedemptionView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get redemption view", err)
	}
	return toRedemptionView(sqlc.ListRedemptionsByUserRow(row)), nil
}

func (r *RedemptionReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.RedemptionView, error) {
	rows, err := r.queries.ListRedemptionsByUser(ctx, r.db, sqlc.ListRedemptionsByUserParams{UserID: userID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redemptions", err)
	}

	views := make([]*queries.RedemptionView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRedemptionView(row))
	}
	return views, nil
}

func toRedemptionView(row sqlc.ListRedemptionsByUserRow) *queries.RedemptionView {
	return &queries.RedemptionView{
		ID:             row.ID,
		UserID:         row.UserID,
		ItemID:         row.ItemID,
		ItemName:       row.ItemName,
		PointsUsed:     row.PointsUsed,
		DeliveryMethod: row.DeliveryMethod,
		PickupEventID:  pgconv.UUIDPtrFromPgtype(row.PickupEventID),
		Address:        pgconv.StringPtrFromPgtype(row.DeliveryAddress),
		Phone:          pgconv.StringPtrFromPgtype(row.DeliveryPhone),
		Status:         row.Status,
		AdminNotes:     pgconv.StringPtrFromPgtype(row.AdminNotes),
		RedeemedAt:     pgconv.TimeFromPgtype(row.RedeemedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
