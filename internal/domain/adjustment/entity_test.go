//go:build unit

package adjustment_test

import (
	"strings"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/adjustment"
	"loyalty-ledger/internal/domain/balance"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name   string
		amount int64
		reason string
		admin  string
		errIs  error
	}{
		{name: "award", amount: 100, reason: "compensation", admin: "admin:x"},
		{name: "deduction", amount: -50, reason: "duplicate award", admin: "admin:x"},
		{name: "zero", amount: 0, reason: "noop", admin: "admin:x", errIs: adjustment.ErrZeroAdjustment},
		{name: "blank reason", amount: 10, reason: "  \t", admin: "admin:x", errIs: adjustment.ErrInvalidReason},
		{name: "reason too long", amount: 10, reason: strings.Repeat("a", 501), admin: "admin:x", errIs: adjustment.ErrInvalidReason},
		{name: "no admin", amount: 10, reason: "fix", admin: "", errIs: adjustment.ErrMissingAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := adjustment.NewRequest(userID, tt.amount, tt.reason, tt.admin)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.amount, req.Amount())
			assert.Equal(t, strings.TrimSpace(tt.reason), req.Reason())
		})
	}
}

func TestRequest_Record(t *testing.T) {
	now := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()

	req, err := adjustment.NewRequest(userID, -500, " over-award ", "admin:"+userID.String())
	require.NoError(t, err)

	change, err := balance.ApplyDelta(120, req.Amount(), true)
	require.NoError(t, err)

	got, err := req.Record(change, now)
	require.NoError(t, err)

	want := &adjustment.PointAdjustment{
		UserID:          userID,
		AdminIdentity:   "admin:" + userID.String(),
		PointsBefore:    120,
		PointsAfter:     0,
		Amount:          -120,
		RequestedAmount: -500,
		Reason:          "over-award",
		CreatedAt:       now,
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(adjustment.PointAdjustment{}, "ID")); diff != "" {
		t.Errorf("Record() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, got.Clamped())
	assert.Equal(t, got.PointsAfter-got.PointsBefore, got.Amount)

	_, err = req.Record(balance.Change{Before: 10, After: 5, Applied: -4}, now)
	assert.ErrorIs(t, err, adjustment.ErrInconsistentAudit)
}
