package checkin

import (
	"errors"
	"fmt"
	"time"

	"loyalty-ledger/internal/domain/event"

	"github.com/google/uuid"
)

const DefaultAwardPoints int64 = 5

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrAlreadyCheckedIn = errors.New("already checked in to this event")
	ErrInvalidAward     = errors.New("check-in award must be positive")
)

// AlreadyCheckedInError carries the balance shown to the user on a repeat scan.
type AlreadyCheckedInError struct {
	TotalPoints int64
}

func (e *AlreadyCheckedInError) Error() string {
	return fmt.Sprintf("already checked in to this event (total points: %d)", e.TotalPoints)
}

func (e *AlreadyCheckedInError) Is(target error) bool {
	return target == ErrAlreadyCheckedIn
}

type CheckIn struct {
	userID       uuid.UUID
	eventID      uuid.UUID
	eventTitle   string
	pointsEarned int64
	checkedInAt  time.Time
}

func NewCheckIn(userID uuid.UUID, ev *event.Event, award int64, now time.Time) (*CheckIn, error) {
	if ev == nil || !ev.AcceptsCheckIn() {
		return nil, ErrEventNotFound
	}
	if award <= 0 {
		return nil, ErrInvalidAward
	}

	return &CheckIn{
		userID:       userID,
		eventID:      ev.ID,
		eventTitle:   ev.Title,
		pointsEarned: award,
		checkedInAt:  now,
	}, nil
}

func ReconstructCheckIn(userID, eventID uuid.UUID, eventTitle string, pointsEarned int64, checkedInAt time.Time) *CheckIn {
	return &CheckIn{
		userID:       userID,
		eventID:      eventID,
		eventTitle:   eventTitle,
		pointsEarned: pointsEarned,
		checkedInAt:  checkedInAt,
	}
}

func (c *CheckIn) UserID() uuid.UUID      { return c.userID }
func (c *CheckIn) EventID() uuid.UUID     { return c.eventID }
func (c *CheckIn) EventTitle() string     { return c.eventTitle }
func (c *CheckIn) PointsEarned() int64    { return c.pointsEarned }
func (c *CheckIn) CheckedInAt() time.Time { return c.checkedInAt }
