package response

import (
	"time"

	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BalanceResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	Points         int64     `json:"points"`
	LifetimeEarned int64     `json:"lifetime_earned"`
	LifetimeSpent  int64     `json:"lifetime_spent"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		UserID:         v.UserID,
		Points:         v.Points,
		LifetimeEarned: v.LifetimeEarned,
		LifetimeSpent:  v.LifetimeSpent,
	}
}

type CheckInResponse struct {
	EventID      uuid.UUID `json:"event_id"`
	EventTitle   string    `json:"event_title"`
	PointsEarned int64     `json:"points_earned"`
	TotalPoints  int64     `json:"total_points"`
}

func FromCheckInResult(r *commands.CheckInResult) *CheckInResponse {
	return &CheckInResponse{
		EventID:      r.EventID,
		EventTitle:   r.EventTitle,
		PointsEarned: r.PointsEarned,
		TotalPoints:  r.TotalPoints,
	}
}

type CheckInHistoryItem struct {
	EventID      uuid.UUID `json:"event_id"`
	EventTitle   string    `json:"event_title"`
	PointsEarned int64     `json:"points_earned"`
	CheckedInAt  time.Time `json:"checked_in_at"`
}

func FromCheckInViews(views []*queries.CheckInView) ([]CheckInHistoryItem, error) {
	items := make([]CheckInHistoryItem, 0, len(views))
	if err := copier.Copy(&items, views); err != nil {
		return nil, err
	}
	return items, nil
}

type AdjustPointsResponse struct {
	AdjustmentID    uuid.UUID `json:"adjustment_id"`
	PointsBefore    int64     `json:"points_before"`
	PointsAfter     int64     `json:"points_after"`
	AppliedAmount   int64     `json:"applied_amount"`
	RequestedAmount int64     `json:"requested_amount"`
	Clamped         bool      `json:"clamped"`
}

func FromAdjustPointsResult(r *commands.AdjustPointsResult) *AdjustPointsResponse {
	return &AdjustPointsResponse{
		AdjustmentID:    r.AdjustmentID,
		PointsBefore:    r.PointsBefore,
		PointsAfter:     r.PointsAfter,
		AppliedAmount:   r.AppliedAmount,
		RequestedAmount: r.RequestedAmount,
		Clamped:         r.AppliedAmount != r.RequestedAmount,
	}
}

type AdjustmentHistoryItem struct {
	ID              uuid.UUID `json:"id"`
	AdminIdentity   string    `json:"admin_identity"`
	PointsBefore    int64     `json:"points_before"`
	PointsAfter     int64     `json:"points_after"`
	Amount          int64     `json:"amount"`
	RequestedAmount int64     `json:"requested_amount"`
	Reason          string    `json:"reason"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromAdjustmentViews(views []*queries.AdjustmentView) ([]AdjustmentHistoryItem, error) {
	items := make([]AdjustmentHistoryItem, 0, len(views))
	if err := copier.Copy(&items, views); err != nil {
		return nil, err
	}
	return items, nil
}
