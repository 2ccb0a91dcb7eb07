package commands

import (
	"context"

	"loyalty-ledger/internal/domain/checkin"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/metrics"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckInResult struct {
	EventID      uuid.UUID
	EventTitle   string
	PointsEarned int64
	TotalPoints  int64
}

type CheckInCommands interface {
	CheckIn(ctx context.Context, userID, eventID uuid.UUID) (*CheckInResult, error)
}

type checkInUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	award   int64
	metrics *metrics.Ledger
}

func NewCheckInUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.LedgerConfig, m *metrics.Ledger) CheckInCommands {
	award := cfg.CheckInPoints
	if award <= 0 {
		award = checkin.DefaultAwardPoints
	}
	return &checkInUseCaseImpl{uow: uow, clock: clk, award: award, metrics: m}
}

// CheckIn uses the (user, event) unique key as the idempotency gate. A repeat
// scan returns AlreadyCheckedInError carrying the current balance.
func (uc *checkInUseCaseImpl) CheckIn(ctx context.Context, userID, eventID uuid.UUID) (*CheckInResult, error) {
	var result *CheckInResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Reads().EventByID(ctx, eventID)
		if err != nil {
			return notFoundAs(err, checkin.ErrEventNotFound)
		}

		c, err := checkin.NewCheckIn(userID, ev, uc.award, uc.clock.Now())
		if err != nil {
			return err
		}

		inserted, err := tx.CheckIns().Insert(ctx, c)
		if err != nil {
			return userErr(err)
		}
		if !inserted {
			total, err := tx.Reads().UserPoints(ctx, userID)
			if err != nil {
				return userErr(err)
			}
			return &checkin.AlreadyCheckedInError{TotalPoints: total}
		}

		change, err := tx.Balances().ApplyDelta(ctx, userID, c.PointsEarned(), false)
		if err != nil {
			return userErr(err)
		}

		result = &CheckInResult{
			EventID:      ev.ID,
			EventTitle:   ev.Title,
			PointsEarned: change.Applied,
			TotalPoints:  change.After,
		}
		return nil
	})
	uc.metrics.RecordOperation(opCheckIn, outcomeOf(err))
	if err != nil {
		return nil, err
	}
	return result, nil
}
