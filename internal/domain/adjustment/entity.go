package adjustment

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"loyalty-ledger/internal/domain/balance"

	"github.com/google/uuid"
)

const maxReasonLength = 500

var (
	ErrZeroAdjustment    = errors.New("adjustment amount must not be zero")
	ErrInvalidReason     = errors.New("adjustment reason is required")
	ErrMissingAdmin      = errors.New("admin identity is required")
	ErrInconsistentAudit = errors.New("audit snapshot does not match applied change")
)

// Request is a validated admin adjustment that has not been applied yet.
type Request struct {
	userID        uuid.UUID
	amount        int64
	reason        string
	adminIdentity string
}

func NewRequest(userID uuid.UUID, amount int64, reason, adminIdentity string) (Request, error) {
	if amount == 0 {
		return Request{}, ErrZeroAdjustment
	}
	reason = strings.TrimSpace(reason)
	if reason == "" || utf8.RuneCountInString(reason) > maxReasonLength {
		return Request{}, ErrInvalidReason
	}
	adminIdentity = strings.TrimSpace(adminIdentity)
	if adminIdentity == "" {
		return Request{}, ErrMissingAdmin
	}

	return Request{
		userID:        userID,
		amount:        amount,
		reason:        reason,
		adminIdentity: adminIdentity,
	}, nil
}

func (r Request) UserID() uuid.UUID     { return r.userID }
func (r Request) Amount() int64         { return r.amount }
func (r Request) Reason() string        { return r.reason }
func (r Request) AdminIdentity() string { return r.adminIdentity }

// PointAdjustment is one append-only audit row. Amount is what was actually
// applied; RequestedAmount is what the admin asked for.
type PointAdjustment struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	AdminIdentity   string
	PointsBefore    int64
	PointsAfter     int64
	Amount          int64
	RequestedAmount int64
	Reason          string
	CreatedAt       time.Time
}

// Record builds the audit row from the balance change the store reported.
func (r Request) Record(change balance.Change, now time.Time) (*PointAdjustment, error) {
	if change.After-change.Before != change.Applied {
		return nil, ErrInconsistentAudit
	}

	return &PointAdjustment{
		ID:              uuid.New(),
		UserID:          r.userID,
		AdminIdentity:   r.adminIdentity,
		PointsBefore:    change.Before,
		PointsAfter:     change.After,
		Amount:          change.Applied,
		RequestedAmount: r.amount,
		Reason:          r.reason,
		CreatedAt:       now,
	}, nil
}

func (a PointAdjustment) Clamped() bool {
	return a.Amount != a.RequestedAmount
}
