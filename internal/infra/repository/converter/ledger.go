package converter

import (
	"loyalty-ledger/internal/domain/adjustment"
	"loyalty-ledger/internal/domain/checkin"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
)

func CheckInToInsertParams(c *checkin.CheckIn) sqlc.InsertCheckInParams {
	return sqlc.InsertCheckInParams{
		UserID:       c.UserID(),
		EventID:      c.EventID(),
		EventTitle:   c.EventTitle(),
		PointsEarned: c.PointsEarned(),
		CheckedInAt:  pgconv.TimeToPgtype(c.CheckedInAt()),
	}
}

func AdjustmentToInsertParams(a *adjustment.PointAdjustment) sqlc.InsertPointAdjustmentParams {
	return sqlc.InsertPointAdjustmentParams{
		ID:               a.ID,
		UserID:           a.UserID,
		AdminIdentity:    a.AdminIdentity,
		PointsBefore:     a.PointsBefore,
		PointsAfter:      a.PointsAfter,
		AdjustmentAmount: a.Amount,
		RequestedAmount:  a.RequestedAmount,
		Reason:           a.Reason,
		CreatedAt:        pgconv.TimeToPgtype(a.CreatedAt),
	}
}
