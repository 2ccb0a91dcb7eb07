package request

import (
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type RedeemRequest struct {
	ItemID         uuid.UUID  `json:"item_id" binding:"required"`
	DeliveryMethod string     `json:"delivery_method" binding:"required,oneof=pickup delivery"`
	PickupEventID  *uuid.UUID `json:"pickup_event_id,omitempty"`
	Address        *string    `json:"address,omitempty" binding:"omitempty,max=500"`
	Phone          *string    `json:"phone,omitempty" binding:"omitempty,max=20"`
}

func (r RedeemRequest) ToCommand() (commands.RedeemRequest, error) {
	method, err := redemption.NewDeliveryMethod(r.DeliveryMethod)
	if err != nil {
		return commands.RedeemRequest{}, err
	}
	return commands.RedeemRequest{
		ItemID: r.ItemID,
		Method: method,
		Details: redemption.DeliveryDetails{
			PickupEventID: r.PickupEventID,
			Address:       r.Address,
			Phone:         r.Phone,
		},
	}, nil
}

type SetRedemptionStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	AdminNotes *string `json:"admin_notes,omitempty" binding:"omitempty,max=1000"`
}

func (r SetRedemptionStatusRequest) ToCommand() commands.SetStatusRequest {
	return commands.SetStatusRequest{Status: r.Status, Notes: r.AdminNotes}
}
