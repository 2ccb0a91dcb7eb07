package readstore

import (
	"context"

	"loyalty-ledger/internal/infra"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type HistoryReadQueries interface {
	ListCheckInsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCheckInsByUserParams) ([]sqlc.ListCheckInsByUserRow, error)
	ListPointAdjustmentsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPointAdjustmentsByUserParams) ([]sqlc.PointAdjustments, error)
}

type HistoryReadStore struct {
	queries HistoryReadQueries
	db      sqlc.DBTX
}

func NewHistoryReadStore(queries HistoryReadQueries, db sqlc.DBTX) *HistoryReadStore {
	return &HistoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HistoryReadStore) CheckIns(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.CheckInView, error) {
	rows, err := r.queries.ListCheckInsByUser(ctx, r.db, sqlc.ListCheckInsByUserParams{UserID: userID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list check-ins", err)
	}

	views := make([]*queries.CheckInView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.CheckInView{
			EventID:      row.EventID,
			EventTitle:   row.EventTitle,
			PointsEarned: row.PointsEarned,
			CheckedInAt:  pgconv.TimeFromPgtype(row.CheckedInAt),
		})
	}
	return views, nil
}

func (r *HistoryReadStore) Adjustments(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.AdjustmentView, error) {
	rows, err := r.queries.ListPointAdjustmentsByUser(ctx, r.db, sqlc.ListPointAdjustmentsByUserParams{UserID: userID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list point adjustments", err)
	}

	views := make([]*queries.AdjustmentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.AdjustmentView{
			ID:              row.ID,
			UserID:          row.UserID,
			AdminIdentity:   row.AdminIdentity,
			PointsBefore:    row.PointsBefore,
			PointsAfter:     row.PointsAfter,
			Amount:          row.AdjustmentAmount,
			RequestedAmount: row.RequestedAmount,
			Reason:          row.Reason,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}
