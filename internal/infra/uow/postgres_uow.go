package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"loyalty-ledger/internal/domain/event"
	"loyalty-ledger/internal/domain/promo"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/infra/readstore"
	"loyalty-ledger/internal/infra/repository"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/metrics"
	"loyalty-ledger/internal/pkg/pgconv"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
	retryBase  time.Duration
	metrics    *metrics.Ledger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.LedgerConfig, m *metrics.Ledger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: cfg.TxMaxRetries,
		retryBase:  cfg.TxRetryBase,
		metrics:    m,
	}
}

// ReadCommitted is enough here: every contended row is either locked with
// FOR UPDATE or changed through a guarded UPDATE/INSERT.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !pgconv.IsRetryable(err) {
			return err
		}
		if attempt >= u.maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, ErrMaxRetriesExceeded)
		}

		u.metrics.RecordTxRetry(pgconv.PgErrorCode(err))
		waitTime := calculateBackoff(attempt, u.retryBase)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	balances     shared.BalanceStore
	checkIns     shared.CheckInRepository
	promos       shared.PromoRepository
	items        shared.ItemRepository
	redemptions  shared.RedemptionRepository
	adjustments  shared.AdjustmentRepository
	commandReads shared.CommandReads
}

func (t *pgTx) Balances() shared.BalanceStore {
	if t.balances == nil {
		t.balances = repository.NewBalanceRepository(t.uow.q, t.dbtx)
	}
	return t.balances
}

func (t *pgTx) CheckIns() shared.CheckInRepository {
	if t.checkIns == nil {
		t.checkIns = repository.NewCheckInRepository(t.uow.q, t.dbtx)
	}
	return t.checkIns
}

func (t *pgTx) Promos() shared.PromoRepository {
	if t.promos == nil {
		t.promos = repository.NewPromoRepository(t.uow.q, t.dbtx)
	}
	return t.promos
}

func (t *pgTx) Items() shared.ItemRepository {
	if t.items == nil {
		t.items = repository.NewItemRepository(t.uow.q, t.dbtx)
	}
	return t.items
}

func (t *pgTx) Redemptions() shared.RedemptionRepository {
	if t.redemptions == nil {
		t.redemptions = repository.NewRedemptionRepository(t.uow.q, t.dbtx)
	}
	return t.redemptions
}

func (t *pgTx) Adjustments() shared.AdjustmentRepository {
	if t.adjustments == nil {
		t.adjustments = repository.NewAdjustmentRepository(t.uow.q, t.dbtx)
	}
	return t.adjustments
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	catalogStore *readstore.CatalogReadStore
	userStore    *readstore.UserReadStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}
	return r.catalogStore
}

func (r *commandReads) EventByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	view, err := r.catalog().EventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &event.Event{
		ID:       view.ID,
		Title:    view.Title,
		Status:   event.Status(view.Status),
		StartsAt: view.StartsAt,
		EndsAt:   view.EndsAt,
	}, nil
}

func (r *commandReads) PromoByID(ctx context.Context, id uuid.UUID) (*promo.Promo, error) {
	view, err := r.catalog().PromoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	benefit, err := promo.NewBenefit(promo.BenefitType(view.BenefitType), view.BenefitValue, view.Description)
	if err != nil {
		return nil, errs.Wrapf(err, "promo %s has an invalid benefit", view.ID)
	}

	return promo.ReconstructPromo(
		view.ID,
		promo.Code(view.Code),
		view.Title,
		promo.Status(view.Status),
		benefit,
		view.ValidFrom,
		view.ValidUntil,
		view.MaxUsage,
		view.CurrentUsage,
	), nil
}

func (r *commandReads) ItemByID(ctx context.Context, id uuid.UUID) (*redemption.ItemSpec, error) {
	view, err := r.catalog().ItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &redemption.ItemSpec{
		ID:                view.ID,
		Name:              view.Name,
		PointsRequired:    view.PointsRequired,
		StockQuantity:     view.StockQuantity,
		IsActive:          view.IsActive,
		DeliveryAvailable: view.DeliveryAvailable,
		PickupAvailable:   view.PickupAvailable,
	}, nil
}

func (r *commandReads) UserPoints(ctx context.Context, userID uuid.UUID) (int64, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore.Points(ctx, userID)
}
