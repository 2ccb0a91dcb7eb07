//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/checkin"
	"loyalty-ledger/internal/domain/event"
	"loyalty-ledger/internal/infra"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedgerQueries struct {
	mock.Mock
}

func (m *MockLedgerQueries) InsertCheckIn(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCheckInParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerQueries) InsertPromoUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPromoUsageParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerQueries) IncrementPromoUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerQueries) DecrementItemStock(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerQueries) RestoreItemStock(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerQueries) InsertRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertRedemptionParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockLedgerQueries) GetRedemptionForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Redemptions, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Redemptions), args.Error(1)
}

func (m *MockLedgerQueries) UpdateRedemptionStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRedemptionStatusParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func TestCheckInRepository_Insert(t *testing.T) {
	ev := &event.Event{ID: uuid.New(), Title: "Launch party", Status: event.StatusActive}
	c, err := checkin.NewCheckIn(uuid.New(), ev, 5, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name     string
		rows     int64
		err      error
		want     bool
		wantKind infra.RepositoryErrorKind
	}{
		{name: "first scan", rows: 1, want: true},
		{name: "repeat scan", rows: 0, want: false},
		{name: "unknown user", err: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, wantKind: infra.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockLedgerQueries)
			q.On("InsertCheckIn", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.InsertCheckInParams) bool {
				return p.EventID == ev.ID && p.EventTitle == "Launch party" && p.PointsEarned == 5
			})).Return(tt.rows, tt.err)

			got, err := NewCheckInRepository(q, nil).Insert(context.Background(), c)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPromoRepository_Guards(t *testing.T) {
	ctx := context.Background()
	userID, promoID := uuid.New(), uuid.New()

	q := new(MockLedgerQueries)
	q.On("InsertPromoUsage", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	q.On("IncrementPromoUsage", mock.Anything, mock.Anything, promoID).Return(int64(0), nil).Once()
	q.On("IncrementPromoUsage", mock.Anything, mock.Anything, promoID).Return(int64(1), nil).Once()

	repo := NewPromoRepository(q, nil)

	inserted, err := repo.InsertUsage(ctx, userID, promoID, time.Now())
	require.NoError(t, err)
	assert.False(t, inserted)

	ok, err := repo.IncrementUsage(ctx, promoID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.IncrementUsage(ctx, promoID)
	require.NoError(t, err)
	assert.True(t, ok)

	q.AssertExpectations(t)
}

func TestItemRepository_Stock(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()

	q := new(MockLedgerQueries)
	q.On("DecrementItemStock", mock.Anything, mock.Anything, itemID).Return(int64(0), nil)
	q.On("RestoreItemStock", mock.Anything, mock.Anything, itemID).Return(int64(0), assert.AnError)

	repo := NewItemRepository(q, nil)

	ok, err := repo.DecrementStock(ctx, itemID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.RestoreStock(ctx, itemID)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestRedemptionRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		q := new(MockLedgerQueries)
		q.On("GetRedemptionForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Redemptions{}, pgx.ErrNoRows)

		got, err := NewRedemptionRepository(q, nil).FindForUpdate(ctx, id)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("found", func(t *testing.T) {
		row := sqlc.Redemptions{
			ID:             id,
			UserID:         uuid.New(),
			ItemID:         uuid.New(),
			PointsUsed:     300,
			DeliveryMethod: "pickup",
			Status:         "processing",
			StockReserved:  true,
		}
		q := new(MockLedgerQueries)
		q.On("GetRedemptionForUpdate", mock.Anything, mock.Anything, id).Return(row, nil)

		got, err := NewRedemptionRepository(q, nil).FindForUpdate(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(300), got.PointsUsed())
		assert.Equal(t, "processing", got.Status().String())
		assert.Nil(t, got.Address())
		assert.True(t, got.StockReserved())
	})
}
