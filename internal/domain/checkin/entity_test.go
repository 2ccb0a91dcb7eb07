//go:build unit

package checkin_test

import (
	"errors"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/checkin"
	"loyalty-ledger/internal/domain/event"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckIn(t *testing.T) {
	now := time.Date(2026, 4, 3, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()
	ev := &event.Event{ID: uuid.New(), Title: "Spring Meetup", Status: event.StatusActive}

	t.Run("snapshots event title and award", func(t *testing.T) {
		got, err := checkin.NewCheckIn(userID, ev, checkin.DefaultAwardPoints, now)
		require.NoError(t, err)

		want := checkin.ReconstructCheckIn(userID, ev.ID, "Spring Meetup", 5, now)
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(checkin.CheckIn{})); diff != "" {
			t.Errorf("CheckIn mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := checkin.NewCheckIn(userID, nil, 5, now)
		assert.ErrorIs(t, err, checkin.ErrEventNotFound)
	})

	t.Run("cancelled event counts as missing", func(t *testing.T) {
		cancelled := &event.Event{ID: uuid.New(), Title: "Rained out", Status: event.StatusCancelled}
		_, err := checkin.NewCheckIn(userID, cancelled, 5, now)
		assert.ErrorIs(t, err, checkin.ErrEventNotFound)
	})

	t.Run("non-positive award", func(t *testing.T) {
		_, err := checkin.NewCheckIn(userID, ev, 0, now)
		assert.ErrorIs(t, err, checkin.ErrInvalidAward)
	})
}

func TestAlreadyCheckedInError(t *testing.T) {
	var err error = &checkin.AlreadyCheckedInError{TotalPoints: 5}

	assert.ErrorIs(t, err, checkin.ErrAlreadyCheckedIn)

	var already *checkin.AlreadyCheckedInError
	require.True(t, errors.As(err, &already))
	assert.Equal(t, int64(5), already.TotalPoints)
}
