package queries

import (
	"context"

	"loyalty-ledger/internal/domain/promo"

	"github.com/google/uuid"
)

type PromoQueries interface {
	GetByCode(ctx context.Context, code string) (*PromoView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PromoView, error)
}

type PromoViewRepo interface {
	PromoByCode(ctx context.Context, code string) (*PromoView, error)
	PromoByID(ctx context.Context, id uuid.UUID) (*PromoView, error)
}

type promoQueriesImpl struct {
	repo PromoViewRepo
}

func NewPromoQueries(repo PromoViewRepo) PromoQueries {
	return &promoQueriesImpl{repo: repo}
}

func (q *promoQueriesImpl) GetByCode(ctx context.Context, code string) (*PromoView, error) {
	normalized, err := promo.NewCode(code)
	if err != nil {
		return nil, err
	}
	view, err := q.repo.PromoByCode(ctx, normalized.String())
	if err != nil {
		return nil, notFoundAs(err, promo.ErrPromoNotFound)
	}
	return view, nil
}

func (q *promoQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PromoView, error) {
	view, err := q.repo.PromoByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, promo.ErrPromoNotFound)
	}
	return view, nil
}
