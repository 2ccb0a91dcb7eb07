package queries

import (
	"context"

	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/pkg/config"

	"github.com/google/uuid"
)

type RedemptionQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*RedemptionView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*RedemptionView, error)
}

type RedemptionViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RedemptionView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*RedemptionView, error)
}

type redemptionQueriesImpl struct {
	repo  RedemptionViewRepo
	limit int32
}

func NewRedemptionQueries(repo RedemptionViewRepo, cfg config.LedgerConfig) RedemptionQueries {
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &redemptionQueriesImpl{repo: repo, limit: limit}
}

// GetByID returns the order to its owner or to an admin. Anyone else gets
// ErrNotOrderOwner.
func (q *redemptionQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*RedemptionView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, redemption.ErrRedemptionNotFound)
	}
	if view.UserID != actor.ID && !actor.IsAdmin() {
		return nil, redemption.ErrNotOrderOwner
	}
	return view, nil
}

func (q *redemptionQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*RedemptionView, error) {
	return q.repo.ListByUser(ctx, userID, q.limit)
}
