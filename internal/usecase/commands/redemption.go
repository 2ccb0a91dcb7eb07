package commands

import (
	"context"

	"loyalty-ledger/internal/domain/event"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/metrics"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedeemRequest struct {
	ItemID  uuid.UUID
	Method  redemption.DeliveryMethod
	Details redemption.DeliveryDetails
}

type RedeemResult struct {
	RedemptionID    uuid.UUID
	PointsUsed      int64
	RemainingPoints int64
	Status          redemption.Status
}

type CancelResult struct {
	RedemptionID   uuid.UUID
	RefundedPoints int64
	TotalPoints    int64
}

type SetStatusRequest struct {
	Status string
	Notes  *string
}

type SetStatusResult struct {
	RedemptionID   uuid.UUID
	Status         redemption.Status
	RefundedPoints int64
}

type RedemptionCommands interface {
	Redeem(ctx context.Context, userID uuid.UUID, req RedeemRequest) (*RedeemResult, error)
	Cancel(ctx context.Context, redemptionID, userID uuid.UUID) (*CancelResult, error)
	SetStatus(ctx context.Context, redemptionID uuid.UUID, req SetStatusRequest) (*SetStatusResult, error)
}

type redemptionUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Ledger
}

func NewRedemptionUseCase(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Ledger) RedemptionCommands {
	return &redemptionUseCaseImpl{uow: uow, clock: clk, metrics: m}
}

// Redeem takes stock before points. Both happen in one transaction, so a
// failed balance check also undoes the stock decrement.
func (uc *redemptionUseCaseImpl) Redeem(ctx context.Context, userID uuid.UUID, req RedeemRequest) (*RedeemResult, error) {
	var result *RedeemResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Reads().ItemByID(ctx, req.ItemID)
		if err != nil {
			return notFoundAs(err, redemption.ErrItemNotFound)
		}

		pickup, err := uc.pickupEvent(ctx, tx, req)
		if err != nil {
			return err
		}

		order, err := redemption.NewRedemption(*item, userID, req.Method, req.Details, pickup, uc.clock.Now())
		if err != nil {
			return err
		}

		if item.HasFiniteStock() {
			taken, err := tx.Items().DecrementStock(ctx, item.ID)
			if err != nil {
				return err
			}
			if !taken {
				return redemption.ErrOutOfStock
			}
			order.MarkStockReserved()
		}

		change, err := tx.Balances().ApplyDelta(ctx, userID, -order.PointsUsed(), false)
		if err != nil {
			return userErr(err)
		}

		if err := tx.Redemptions().Create(ctx, order); err != nil {
			return err
		}

		result = &RedeemResult{
			RedemptionID:    order.ID(),
			PointsUsed:      order.PointsUsed(),
			RemainingPoints: change.After,
			Status:          order.Status(),
		}
		return nil
	})
	uc.metrics.RecordOperation(opRedeem, outcomeOf(err))
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *redemptionUseCaseImpl) pickupEvent(ctx context.Context, tx shared.Tx, req RedeemRequest) (*event.Event, error) {
	if req.Method != redemption.DeliveryMethodPickup || req.Details.PickupEventID == nil {
		return nil, nil
	}
	ev, err := tx.Reads().EventByID(ctx, *req.Details.PickupEventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ev, nil
}

// Cancel is the owner's cancellation from pending or processing.
func (uc *redemptionUseCaseImpl) Cancel(ctx context.Context, redemptionID, userID uuid.UUID) (*CancelResult, error) {
	var result *CancelResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		order, err := tx.Redemptions().FindForUpdate(ctx, redemptionID)
		if err != nil {
			return notFoundAs(err, redemption.ErrRedemptionNotFound)
		}

		if err := order.Cancel(userID, uc.clock.Now()); err != nil {
			return err
		}

		total, err := refund(ctx, tx, order)
		if err != nil {
			return err
		}
		if err := tx.Redemptions().UpdateStatus(ctx, order); err != nil {
			return err
		}

		result = &CancelResult{
			RedemptionID:   order.ID(),
			RefundedPoints: order.PointsUsed(),
			TotalPoints:    total,
		}
		return nil
	})
	uc.metrics.RecordOperation(opCancelRedemption, outcomeOf(err))
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetStatus is the admin transition. Cancelling through it refunds the same
// way the owner's cancellation does.
func (uc *redemptionUseCaseImpl) SetStatus(ctx context.Context, redemptionID uuid.UUID, req SetStatusRequest) (*SetStatusResult, error) {
	result, err := uc.setStatus(ctx, redemptionID, req)
	uc.metrics.RecordOperation(opSetStatus, outcomeOf(err))
	return result, err
}

func (uc *redemptionUseCaseImpl) setStatus(ctx context.Context, redemptionID uuid.UUID, req SetStatusRequest) (*SetStatusResult, error) {
	target, err := redemption.NewStatus(req.Status)
	if err != nil {
		return nil, err
	}

	var result *SetStatusResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		order, err := tx.Redemptions().FindForUpdate(ctx, redemptionID)
		if err != nil {
			return notFoundAs(err, redemption.ErrRedemptionNotFound)
		}

		needsRefund, err := order.AdvanceTo(target, req.Notes, uc.clock.Now())
		if err != nil {
			return err
		}

		var refunded int64
		if needsRefund {
			if _, err := refund(ctx, tx, order); err != nil {
				return err
			}
			refunded = order.PointsUsed()
		}

		if err := tx.Redemptions().UpdateStatus(ctx, order); err != nil {
			return err
		}

		result = &SetStatusResult{
			RedemptionID:   order.ID(),
			Status:         order.Status(),
			RefundedPoints: refunded,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// refund restores stock before crediting points so every path locks the item
// row ahead of the user row. Only orders that took a unit give one back, and
// the query guard leaves items that became unlimited since untouched.
func refund(ctx context.Context, tx shared.Tx, order *redemption.Redemption) (int64, error) {
	if order.StockReserved() {
		if _, err := tx.Items().RestoreStock(ctx, order.ItemID()); err != nil {
			return 0, err
		}
	}
	change, err := tx.Balances().ApplyDelta(ctx, order.UserID(), order.PointsUsed(), false)
	if err != nil {
		return 0, userErr(err)
	}
	return change.After, nil
}
