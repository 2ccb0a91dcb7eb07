package commands

import (
	"context"

	"loyalty-ledger/internal/domain/promo"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/metrics"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromoUseResult struct {
	PromoID uuid.UUID
	Code    string
	Title   string
	Benefit promo.Benefit
}

type PromoCommands interface {
	UsePromo(ctx context.Context, userID, promoID uuid.UUID) (*PromoUseResult, error)
}

type promoUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Ledger
}

func NewPromoUseCase(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Ledger) PromoCommands {
	return &promoUseCaseImpl{uow: uow, clock: clk, metrics: m}
}

// UsePromo records one use per user. The usage row and the counter move
// together: if the guarded increment finds the cap reached, the usage insert
// is rolled back with it.
func (uc *promoUseCaseImpl) UsePromo(ctx context.Context, userID, promoID uuid.UUID) (*PromoUseResult, error) {
	var result *PromoUseResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PromoByID(ctx, promoID)
		if err != nil {
			return notFoundAs(err, promo.ErrPromoNotFound)
		}

		now := uc.clock.Now()
		if err := p.ValidateUsage(now); err != nil {
			return err
		}

		inserted, err := tx.Promos().InsertUsage(ctx, userID, p.ID(), now)
		if err != nil {
			return userErr(err)
		}
		if !inserted {
			return promo.ErrAlreadyUsed
		}

		incremented, err := tx.Promos().IncrementUsage(ctx, p.ID())
		if err != nil {
			return err
		}
		if !incremented {
			return promo.ErrPromoUsageLimitReached
		}

		result = &PromoUseResult{
			PromoID: p.ID(),
			Code:    p.Code().String(),
			Title:   p.Title(),
			Benefit: p.Benefit(),
		}
		return nil
	})
	uc.metrics.RecordOperation(opUsePromo, outcomeOf(err))
	if err != nil {
		return nil, err
	}
	return result, nil
}
