package queries

import (
	"context"

	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type BalanceQueries interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
}

type BalanceViewRepo interface {
	BalanceSummary(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
}

type balanceQueriesImpl struct {
	repo BalanceViewRepo
}

func NewBalanceQueries(repo BalanceViewRepo) BalanceQueries {
	return &balanceQueriesImpl{repo: repo}
}

func (q *balanceQueriesImpl) GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error) {
	view, err := q.repo.BalanceSummary(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return view, nil
}

type HistoryQueries interface {
	CheckIns(ctx context.Context, userID uuid.UUID) ([]*CheckInView, error)
	Adjustments(ctx context.Context, userID uuid.UUID) ([]*AdjustmentView, error)
}

type HistoryViewRepo interface {
	CheckIns(ctx context.Context, userID uuid.UUID, limit int32) ([]*CheckInView, error)
	Adjustments(ctx context.Context, userID uuid.UUID, limit int32) ([]*AdjustmentView, error)
}

type historyQueriesImpl struct {
	repo  HistoryViewRepo
	limit int32
}

// NewHistoryQueries bounds every history read by cfg.HistoryLimit, newest first.
func NewHistoryQueries(repo HistoryViewRepo, cfg config.LedgerConfig) HistoryQueries {
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &historyQueriesImpl{repo: repo, limit: limit}
}

func (q *historyQueriesImpl) CheckIns(ctx context.Context, userID uuid.UUID) ([]*CheckInView, error) {
	return q.repo.CheckIns(ctx, userID, q.limit)
}

func (q *historyQueriesImpl) Adjustments(ctx context.Context, userID uuid.UUID) ([]*AdjustmentView, error) {
	return q.repo.Adjustments(ctx, userID, q.limit)
}

const defaultHistoryLimit int32 = 100

func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
