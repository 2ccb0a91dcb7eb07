package converter

import (
	"loyalty-ledger/internal/domain/redemption"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
)

func RedemptionToInsertParams(r *redemption.Redemption) sqlc.InsertRedemptionParams {
	return sqlc.InsertRedemptionParams{
		ID:              r.ID(),
		UserID:          r.UserID(),
		ItemID:          r.ItemID(),
		PointsUsed:      r.PointsUsed(),
		DeliveryMethod:  r.DeliveryMethod().String(),
		PickupEventID:   pgconv.UUIDPtrToPgtype(r.PickupEventID()),
		DeliveryAddress: pgconv.StringPtrToPgtype(r.Address()),
		DeliveryPhone:   pgconv.StringPtrToPgtype(r.Phone()),
		Status:          r.Status().String(),
		RedeemedAt:      pgconv.TimeToPgtype(r.RedeemedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(r.UpdatedAt()),
		StockReserved:   r.StockReserved(),
	}
}

func RedemptionToStatusParams(r *redemption.Redemption) sqlc.UpdateRedemptionStatusParams {
	return sqlc.UpdateRedemptionStatusParams{
		ID:         r.ID(),
		Status:     r.Status().String(),
		AdminNotes: pgconv.StringPtrToPgtype(r.AdminNotes()),
		UpdatedAt:  pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RedemptionFromRow(row sqlc.Redemptions) *redemption.Redemption {
	return redemption.ReconstructRedemption(
		row.ID,
		row.UserID,
		row.ItemID,
		row.PointsUsed,
		redemption.DeliveryMethod(row.DeliveryMethod),
		pgconv.UUIDPtrFromPgtype(row.PickupEventID),
		pgconv.StringPtrFromPgtype(row.DeliveryAddress),
		pgconv.StringPtrFromPgtype(row.DeliveryPhone),
		redemption.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.AdminNotes),
		row.StockReserved,
		pgconv.TimeFromPgtype(row.RedeemedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
