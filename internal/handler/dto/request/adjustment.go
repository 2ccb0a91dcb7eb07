package request

import (
	"loyalty-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

// AdjustPointsRequest is signed: positive credits, negative debits.
type AdjustPointsRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"required,max=500"`
}

func (r AdjustPointsRequest) ToCommand(userID uuid.UUID) commands.AdjustPointsRequest {
	return commands.AdjustPointsRequest{UserID: userID, Amount: r.Amount, Reason: r.Reason}
}
