package shared

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/adjustment"
	"loyalty-ledger/internal/domain/balance"
	"loyalty-ledger/internal/domain/checkin"
	"loyalty-ledger/internal/domain/event"
	"loyalty-ledger/internal/domain/promo"
	"loyalty-ledger/internal/domain/redemption"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Balances() BalanceStore
	CheckIns() CheckInRepository
	Promos() PromoRepository
	Items() ItemRepository
	Redemptions() RedemptionRepository
	Adjustments() AdjustmentRepository
	Reads() CommandReads
}

type CommandReads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	PromoByID(ctx context.Context, id uuid.UUID) (*promo.Promo, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*redemption.ItemSpec, error)
	UserPoints(ctx context.Context, userID uuid.UUID) (int64, error)
}

// BalanceStore is the only writer of a user's point balance. ApplyDelta
// locks the row for the rest of the surrounding transaction.
type BalanceStore interface {
	ApplyDelta(ctx context.Context, userID uuid.UUID, delta int64, clampToZero bool) (balance.Change, error)
}

type CheckInRepository interface {
	// Insert reports false when the user already checked in to the event.
	Insert(ctx context.Context, c *checkin.CheckIn) (bool, error)
}

type PromoRepository interface {
	InsertUsage(ctx context.Context, userID, promoID uuid.UUID, usedAt time.Time) (bool, error)
	IncrementUsage(ctx context.Context, promoID uuid.UUID) (bool, error)
}

type ItemRepository interface {
	DecrementStock(ctx context.Context, itemID uuid.UUID) (bool, error)
	RestoreStock(ctx context.Context, itemID uuid.UUID) (bool, error)
}

type RedemptionRepository interface {
	Create(ctx context.Context, r *redemption.Redemption) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*redemption.Redemption, error)
	UpdateStatus(ctx context.Context, r *redemption.Redemption) error
}

type AdjustmentRepository interface {
	Create(ctx context.Context, a *adjustment.PointAdjustment) error
}
