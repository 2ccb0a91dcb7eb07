package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceView is the current balance with lifetime totals derived from the ledger tables
type BalanceView struct {
	UserID         uuid.UUID `json:"user_id"`
	Points         int64     `json:"points"`
	LifetimeEarned int64     `json:"lifetime_earned"`
	LifetimeSpent  int64     `json:"lifetime_spent"`
}

type CheckInView struct {
	EventID      uuid.UUID `json:"event_id"`
	EventTitle   string    `json:"event_title"`
	PointsEarned int64     `json:"points_earned"`
	CheckedInAt  time.Time `json:"checked_in_at"`
}

type AdjustmentView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	AdminIdentity   string    `json:"admin_identity"`
	PointsBefore    int64     `json:"points_before"`
	PointsAfter     int64     `json:"points_after"`
	Amount          int64     `json:"amount"`
	RequestedAmount int64     `json:"requested_amount"`
	Reason          string    `json:"reason"`
	CreatedAt       time.Time `json:"created_at"`
}

type RedemptionView struct {
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

type PromoView struct {
	ID           uuid.UUID        `json:"id"`
	Code         string           `json:"code"`
	Title        string           `json:"title"`
	Status       string           `json:"status"`
	BenefitType  string           `json:"benefit_type"`
	BenefitValue *decimal.Decimal `json:"benefit_value,omitempty"`
	Description  string           `json:"description"`
	ValidFrom    *time.Time       `json:"valid_from,omitempty"`
	ValidUntil   *time.Time       `json:"valid_until,omitempty"`
	MaxUsage     *int32           `json:"max_usage,omitempty"`
	CurrentUsage int32            `json:"current_usage"`
}

type EventView struct {
	ID       uuid.UUID  `json:"id"`
	Title    string     `json:"title"`
	Status   string     `json:"status"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

type ItemView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	PointsRequired    int64     `json:"points_required"`
	StockQuantity     int32     `json:"stock_quantity"`
	IsActive          bool      `json:"is_active"`
	DeliveryAvailable bool      `json:"delivery_available"`
	PickupAvailable   bool      `json:"pickup_available"`
}
