//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/checkin"
	"loyalty-ledger/internal/domain/event"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

func newCheckInUseCase(u *fakeUoW) commands.CheckInCommands {
	return commands.NewCheckInUseCase(u, clock.NewMockClock(testNow), config.LedgerConfig{CheckInPoints: 5}, nil)
}

func TestCheckIn_AwardsOnceAndReportsBalanceOnRepeat(t *testing.T) {
	u := newFakeUoW()
	userID := u.addUser(0)
	ev := u.addEvent(event.StatusActive, nil)
	uc := newCheckInUseCase(u)

	res, err := uc.CheckIn(context.Background(), userID, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.PointsEarned)
	assert.Equal(t, int64(5), res.TotalPoints)
	assert.Equal(t, ev.Title, res.EventTitle)

	_, err = uc.CheckIn(context.Background(), userID, ev.ID)
	require.Error(t, err)
	assert.True(t, errs.Is(err, checkin.ErrAlreadyCheckedIn))

	var already *checkin.AlreadyCheckedInError
	require.ErrorAs(t, err, &already)
	assert.Equal(t, int64(5), already.TotalPoints)
	assert.Equal(t, int64(5), u.balance(userID))
}

func TestCheckIn_Errors(t *testing.T) {
	u := newFakeUoW()
	userID := u.addUser(10)
	cancelled := u.addEvent(event.StatusCancelled, nil)
	ended := u.addEvent(event.StatusEnded, nil)
	uc := newCheckInUseCase(u)

	t.Run("unknown event", func(t *testing.T) {
		_, err := uc.CheckIn(context.Background(), userID, uuid.New())
		assert.True(t, errs.Is(err, checkin.ErrEventNotFound))
	})

	t.Run("cancelled event", func(t *testing.T) {
		_, err := uc.CheckIn(context.Background(), userID, cancelled.ID)
		assert.True(t, errs.Is(err, checkin.ErrEventNotFound))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.CheckIn(context.Background(), uuid.New(), ended.ID)
		assert.True(t, errs.Is(err, commands.ErrUserNotFound))
	})

	t.Run("ended event still counts", func(t *testing.T) {
		res, err := uc.CheckIn(context.Background(), userID, ended.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(15), res.TotalPoints)
	})
}

func TestCheckIn_ConcurrentDuplicatesAwardOnce(t *testing.T) {
	u := newFakeUoW()
	userID := u.addUser(0)
	ev := u.addEvent(event.StatusActive, nil)
	uc := newCheckInUseCase(u)

	const n = 20
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CheckIn(context.Background(), userID, ev.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, dup int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errs.Is(err, checkin.ErrAlreadyCheckedIn):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dup)
	assert.Equal(t, int64(5), u.balance(userID))
}
