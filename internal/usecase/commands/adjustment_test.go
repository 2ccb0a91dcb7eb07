//go:build unit

package commands_test

import (
	"context"
	"testing"

	"loyalty-ledger/internal/domain/adjustment"
	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustPoints(t *testing.T) {
	ctx := context.Background()
	u := newFakeUoW()
	uc := commands.NewAdjustmentUseCase(u, clock.NewMockClock(testNow), nil)
	admin := user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	userID := u.addUser(40)

	res, err := uc.AdjustPoints(ctx, commands.AdjustPointsRequest{UserID: userID, Amount: 60, Reason: "event bonus"}, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(40), res.PointsBefore)
	assert.Equal(t, int64(100), res.PointsAfter)
	assert.Equal(t, int64(60), res.AppliedAmount)

	res, err = uc.AdjustPoints(ctx, commands.AdjustPointsRequest{UserID: userID, Amount: -250, Reason: "fraud reversal"}, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.PointsAfter)
	assert.Equal(t, int64(-100), res.AppliedAmount)
	assert.Equal(t, int64(-250), res.RequestedAmount)

	require.Len(t, u.state.adjustments, 2)
	var replayed int64 = 40
	for _, a := range u.state.adjustments {
		assert.Equal(t, a.PointsAfter-a.PointsBefore, a.Amount)
		assert.Equal(t, replayed, a.PointsBefore)
		assert.Equal(t, admin.Identity(), a.AdminIdentity)
		replayed += a.Amount
	}
	assert.Equal(t, u.balance(userID), replayed)
}

func TestAdjustPoints_Rejections(t *testing.T) {
	ctx := context.Background()
	u := newFakeUoW()
	uc := commands.NewAdjustmentUseCase(u, clock.NewMockClock(testNow), nil)
	admin := user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	userID := u.addUser(40)

	tests := []struct {
		name  string
		req   commands.AdjustPointsRequest
		actor user.Actor
		errIs error
	}{
		{name: "zero", req: commands.AdjustPointsRequest{UserID: userID, Amount: 0, Reason: "x"}, actor: admin, errIs: adjustment.ErrZeroAdjustment},
		{name: "blank reason", req: commands.AdjustPointsRequest{UserID: userID, Amount: 5, Reason: "   "}, actor: admin, errIs: adjustment.ErrInvalidReason},
		{name: "not admin", req: commands.AdjustPointsRequest{UserID: userID, Amount: 5, Reason: "x"}, actor: user.Actor{ID: uuid.New(), Role: user.RoleStaff}, errIs: commands.ErrAdminRequired},
		{name: "unknown user", req: commands.AdjustPointsRequest{UserID: uuid.New(), Amount: 5, Reason: "x"}, actor: admin, errIs: commands.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.AdjustPoints(ctx, tt.req, tt.actor)
			assert.True(t, errs.Is(err, tt.errIs), "got %v", err)
		})
	}
	assert.Empty(t, u.state.adjustments)
	assert.Equal(t, int64(40), u.balance(userID))
}
