package event

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

// Event is the read-only view of an event owned by the event catalog.
type Event struct {
	ID       uuid.UUID
	Title    string
	Status   Status
	StartsAt *time.Time
	EndsAt   *time.Time
}

// AcceptsCheckIn is false only for cancelled events; late scans of an ended
// event still count.
func (e Event) AcceptsCheckIn() bool {
	return e.Status != StatusCancelled
}

// IsLive reports whether the event can still serve as a pickup point at t.
func (e Event) IsLive(t time.Time) bool {
	if e.Status != StatusScheduled && e.Status != StatusActive {
		return false
	}
	if e.EndsAt != nil && !t.Before(*e.EndsAt) {
		return false
	}
	return true
}
