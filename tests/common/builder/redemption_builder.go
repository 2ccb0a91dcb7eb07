//go:build unit || e2e

package builder

import (
	"time"

	reqdto "loyalty-ledger/internal/handler/dto/request"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type RedemptionBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ItemID         uuid.UUID
	ItemName       string
	PointsUsed     int64
	DeliveryMethod string
	PickupEventID  *uuid.UUID
	Address        *string
	Phone          *string
	Status         string
	RedeemedAt     time.Time
}

func NewRedemptionBuilder() *RedemptionBuilder {
	address := "1-2-3 Shibuya, Tokyo"
	phone := "0312345678"
	return &RedemptionBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		ItemID:         uuid.New(),
		ItemName:       "Tote Bag",
		PointsUsed:     300,
		DeliveryMethod: "delivery",
		Address:        &address,
		Phone:          &phone,
		Status:         "pending",
		RedeemedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func (b *RedemptionBuilder) With(mutate func(*RedemptionBuilder)) *RedemptionBuilder {
	mutate(b)
	return b
}

func (b *RedemptionBuilder) BuildRedeemRequestDTO() reqdto.RedeemRequest {
	return reqdto.RedeemRequest{
		ItemID:         b.ItemID,
		DeliveryMethod: b.DeliveryMethod,
		PickupEventID:  b.PickupEventID,
		Address:        b.Address,
		Phone:          b.Phone,
	}
}

func (b *RedemptionBuilder) BuildView() *queries.RedemptionView {
	return &queries.RedemptionView{
		ID:             b.ID,
		UserID:         b.UserID,
		ItemID:         b.ItemID,
		ItemName:       b.ItemName,
		PointsUsed:     b.PointsUsed,
		DeliveryMethod: b.DeliveryMethod,
		PickupEventID:  b.PickupEventID,
		Address:        b.Address,
		Phone:          b.Phone,
		Status:         b.Status,
		RedeemedAt:     b.RedeemedAt,
		UpdatedAt:      b.RedeemedAt,
	}
}
