package commands

import (
	"context"

	"loyalty-ledger/internal/domain/adjustment"
	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/metrics"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type AdjustPointsRequest struct {
	UserID uuid.UUID
	Amount int64
	Reason string
}

type AdjustPointsResult struct {
	AdjustmentID    uuid.UUID
	PointsBefore    int64
	PointsAfter     int64
	AppliedAmount   int64
	RequestedAmount int64
}

type AdjustmentCommands interface {
	AdjustPoints(ctx context.Context, req AdjustPointsRequest, actor user.Actor) (*AdjustPointsResult, error)
}

type adjustmentUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Ledger
}

func NewAdjustmentUseCase(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Ledger) AdjustmentCommands {
	return &adjustmentUseCaseImpl{uow: uow, clock: clk, metrics: m}
}

// AdjustPoints clamps deductions at zero and audits the amount actually applied.
func (uc *adjustmentUseCaseImpl) AdjustPoints(ctx context.Context, req AdjustPointsRequest, actor user.Actor) (*AdjustPointsResult, error) {
	result, err := uc.adjust(ctx, req, actor)
	uc.metrics.RecordOperation(opAdjust, outcomeOf(err))
	return result, err
}

func (uc *adjustmentUseCaseImpl) adjust(ctx context.Context, req AdjustPointsRequest, actor user.Actor) (*AdjustPointsResult, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminRequired
	}
	adj, err := adjustment.NewRequest(req.UserID, req.Amount, req.Reason, actor.Identity())
	if err != nil {
		return nil, err
	}

	var result *AdjustPointsResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		change, err := tx.Balances().ApplyDelta(ctx, adj.UserID(), adj.Amount(), true)
		if err != nil {
			return userErr(err)
		}

		record, err := adj.Record(change, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Adjustments().Create(ctx, record); err != nil {
			return err
		}

		result = &AdjustPointsResult{
			AdjustmentID:    record.ID,
			PointsBefore:    record.PointsBefore,
			PointsAfter:     record.PointsAfter,
			AppliedAmount:   record.Amount,
			RequestedAmount: record.RequestedAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
