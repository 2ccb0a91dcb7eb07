package response

import (
	"time"

	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RedeemResponse struct {
	RedemptionID    uuid.UUID `json:"redemption_id"`
	PointsUsed      int64     `json:"points_used"`
	RemainingPoints int64     `json:"remaining_points"`
	Status          string    `json:"status"`
}

func FromRedeemResult(r *commands.RedeemResult) *RedeemResponse {
	return &RedeemResponse{
		RedemptionID:    r.RedemptionID,
		PointsUsed:      r.PointsUsed,
		RemainingPoints: r.RemainingPoints,
		Status:          r.Status.String(),
	}
}

type CancelRedemptionResponse struct {
	RedemptionID   uuid.UUID `json:"redemption_id"`
	RefundedPoints int64     `json:"refunded_points"`
	TotalPoints    int64     `json:"total_points"`
}

func FromCancelResult(r *commands.CancelResult) *CancelRedemptionResponse {
	return &CancelRedemptionResponse{
		RedemptionID:   r.RedemptionID,
		RefundedPoints: r.RefundedPoints,
		TotalPoints:    r.TotalPoints,
	}
}

type SetRedemptionStatusResponse struct {
	RedemptionID   uuid.UUID `json:"redemption_id"`
	Status         string    `json:"status"`
	RefundedPoints int64     `json:"refunded_points"`
}

func FromSetStatusResult(r *commands.SetStatusResult) *SetRedemptionStatusResponse {
	return &SetRedemptionStatusResponse{
		RedemptionID:   r.RedemptionID,
		Status:         r.Status.String(),
		RefundedPoints: r.RefundedPoints,
	}
}

type RedemptionResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	ItemID         uuid.UUID  `json:"item_id"`
	ItemName       string     `json:"item_name"`
	PointsUsed     int64      `json:"points_used"`
	DeliveryMethod string     `json:"delivery_method"`
	PickupEventID  *uuid.UUID `json:"pickup_event_id,omitempty"`
	Address        *string    `json:"address,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	Status         string     `json:"status"`
	AdminNotes     *string    `json:"admin_notes,omitempty"`
	RedeemedAt     time.Time  `json:"redeemed_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromRedemptionView(v *queries.RedemptionView) (*RedemptionResponse, error) {
	var res RedemptionResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRedemptionViews(views []*queries.RedemptionView) ([]RedemptionResponse, error) {
	items := make([]RedemptionResponse, 0, len(views))
	if err := copier.Copy(&items, views); err != nil {
		return nil, err
	}
	return items, nil
}
