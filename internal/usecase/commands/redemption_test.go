//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/balance"
	"loyalty-ledger/internal/domain/event"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func deliveryRequest(itemID uuid.UUID) commands.RedeemRequest {
	return commands.RedeemRequest{
		ItemID: itemID,
		Method: redemption.DeliveryMethodDelivery,
		Details: redemption.DeliveryDetails{
			Address: strPtr("1-2-3 Shibuya, Tokyo"),
			Phone:   strPtr("0312345678"),
		},
	}
}

func TestRedeem_CheckInThenSpendScenario(t *testing.T) {
	ctx := context.Background()
	u := newFakeUoW()
	userID := u.addUser(0)
	ev := u.addEvent(event.StatusActive, nil)
	item := u.addItem(5, 3)

	checkIns := newCheckInUseCase(u)
	redeem := commands.NewRedemptionUseCase(u, clock.NewMockClock(testNow), nil)

	res, err := checkIns.CheckIn(ctx, userID, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.TotalPoints)

	order, err := redeem.Redeem(ctx, userID, deliveryRequest(item.ID))
	require.NoError(t, err)
	assert.Equal(t, redemption.StatusPending, order.Status)
	assert.Equal(t, int64(0), order.RemainingPoints)
	assert.Equal(t, int32(2), u.stock(item.ID))

	_, err = redeem.Redeem(ctx, userID, deliveryRequest(item.ID))
	require.Error(t, err)
	var insufficient *balance.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(5), insufficient.Need)
	assert.Equal(t, int64(0), insufficient.Have)
	assert.Equal(t, int32(2), u.stock(item.ID), "failed spend must not consume stock")
}

func TestRedeem_Failures(t *testing.T) {
	ctx := context.Background()
	u := newFakeUoW()
	rich := u.addUser(10_000)
	uc := commands.NewRedemptionUseCase(u, clock.NewMockClock(testNow), nil)

	soldOut := u.addItem(100, 0)
	unlimited := u.addItem(100, redemption.UnlimitedStock)
	inactive := u.addItem(100, 5)
	inactive.IsActive = false
	u.state.items[inactive.ID] = inactive
	deliveryOnly := u.addItem(100, 5)
	deliveryOnly.PickupAvailable = false
	u.state.items[deliveryOnly.ID] = deliveryOnly

	ended := testNow.Add(-time.Minute)
	pastEvent := u.addEvent(event.StatusActive, &ended)

	t.Run("out of stock", func(t *testing.T) {
		_, err := uc.Redeem(ctx, rich, deliveryRequest(soldOut.ID))
		assert.True(t, errs.Is(err, redemption.ErrOutOfStock))
		assert.Equal(t, int64(10_000), u.balance(rich))
	})

	t.Run("unlimited stock is never decremented", func(t *testing.T) {
		_, err := uc.Redeem(ctx, rich, deliveryRequest(unlimited.ID))
		require.NoError(t, err)
		assert.Equal(t, redemption.UnlimitedStock, u.stock(unlimited.ID))
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := uc.Redeem(ctx, rich, deliveryRequest(uuid.New()))
		assert.True(t, errs.Is(err, redemption.ErrItemNotFound))
	})

	t.Run("inactive item", func(t *testing.T) {
		_, err := uc.Redeem(ctx, rich, deliveryRequest(inactive.ID))
		assert.True(t, errs.Is(err, redemption.ErrItemInactive))
	})

	t.Run("pickup not offered", func(t *testing.T) {
		req := commands.RedeemRequest{ItemID: deliveryOnly.ID, Method: redemption.DeliveryMethodPickup}
		_, err := uc.Redeem(ctx, rich, req)
		assert.True(t, errs.Is(err, redemption.ErrDeliveryMethodUnavailable))
	})

	t.Run("pickup at finished event", func(t *testing.T) {
		req := commands.RedeemRequest{
			ItemID:  unlimited.ID,
			Method:  redemption.DeliveryMethodPickup,
			Details: redemption.DeliveryDetails{PickupEventID: &pastEvent.ID},
		}
		_, err := uc.Redeem(ctx, rich, req)
		assert.True(t, errs.Is(err, redemption.ErrInvalidDeliveryDetails))
	})

	t.Run("pickup at unknown event", func(t *testing.T) {
		missing := uuid.New()
		req := commands.RedeemRequest{
			ItemID:  unlimited.ID,
			Method:  redemption.DeliveryMethodPickup,
			Details: redemption.DeliveryDetails{PickupEventID: &missing},
		}
		_, err := uc.Redeem(ctx, rich, req)
		assert.True(t, errs.Is(err, redemption.ErrInvalidDeliveryDetails))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.Redeem(ctx, uuid.New(), deliveryRequest(unlimited.ID))
		assert.True(t, errs.Is(err, commands.ErrUserNotFound))
	})
}

func TestCancel_RefundsExactlyAndRestoresStock(t *testing.T) {
	ctx := context.Background()
	u := newFakeUoW()
	owner := u.addUser(300)
	item := u.addItem(300, 4)
	uc := commands.NewRedemptionUseCase(u, clock.NewMockClock(testNow), nil)

	order, err := uc.Redeem(ctx, owner, deliveryRequest(item.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(0), u.balance(owner))
	assert.Equal(t, int32(3), u.stock(item.ID))

	// a later price change must not affect the refund
	repriced := u.state.items[item.ID]
	repriced.PointsRequired = 999
	u.state.items[item.ID] = repriced

	_, err = uc.Cancel(ctx, order.RedemptionID, uuid.New())
	assert.True(t, errs.Is(err, redemption.ErrNotOrderOwner))

	res, err := uc.Cancel(ctx, order.RedemptionID, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(300), res.RefundedPoints)
	assert.Equal(t, int64(300), res.TotalPoints)
	assert.Equal(t, int32(4), u.stock(item.ID))

	_, err = uc.Cancel(ctx, order.RedemptionID, owner)
	assert.True(t, errs.Is(err, redemption.ErrInvalidTransition))
	assert.Equal(t, int64(300), u.balance(owner))

	_, err = uc.Cancel(ctx, uuid.New(), owner)
	assert.True(t, errs.Is(err, redemption.ErrRedemptionNotFound))
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	u := newFakeUoW()
	owner := u.addUser(1000)
	item := u.addItem(300, 2)
	uc := commands.NewRedemptionUseCase(u, clock.NewMockClock(testNow), nil)

	order, err := uc.Redeem(ctx, owner, deliveryRequest(item.ID))
	require.NoError(t, err)

	res, err := uc.SetStatus(ctx, order.RedemptionID, commands.SetStatusRequest{Status: "shipped", Notes: strPtr("tracking 123")})
	require.NoError(t, err)
	assert.Equal(t, redemption.StatusShipped, res.Status)
	assert.Zero(t, res.RefundedPoints)

	_, err = uc.SetStatus(ctx, order.RedemptionID, commands.SetStatusRequest{Status: "cancelled"})
	assert.True(t, errs.Is(err, redemption.ErrInvalidTransition))

	_, err = uc.Cancel(ctx, order.RedemptionID, owner)
	assert.True(t, errs.Is(err, redemption.ErrInvalidTransition))

	res, err = uc.SetStatus(ctx, order.RedemptionID, commands.SetStatusRequest{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, redemption.StatusDelivered, res.Status)

	_, err = uc.SetStatus(ctx, order.RedemptionID, commands.SetStatusRequest{Status: "bogus"})
	assert.True(t, errs.Is(err, redemption.ErrInvalidStatus))

	assert.Equal(t, int64(700), u.balance(owner))
	assert.Equal(t, int32(1), u.stock(item.ID))
	assert.Equal(t, "tracking 123", *u.state.redemptions[order.RedemptionID].AdminNotes())

	t.Run("admin cancellation refunds", func(t *testing.T) {
		second, err := uc.Redeem(ctx, owner, deliveryRequest(item.ID))
		require.NoError(t, err)
		assert.Equal(t, int64(400), u.balance(owner))

		res, err := uc.SetStatus(ctx, second.RedemptionID, commands.SetStatusRequest{Status: "cancelled", Notes: strPtr("customer request")})
		require.NoError(t, err)
		assert.Equal(t, int64(300), res.RefundedPoints)
		assert.Equal(t, int64(700), u.balance(owner))
		assert.Equal(t, int32(1), u.stock(item.ID))
	})
}

func TestCancel_RestoresOnlyStockTheOrderTook(t *testing.T) {
	ctx := context.Background()
	u := newFakeUoW()
	owner := u.addUser(1000)
	item := u.addItem(100, redemption.UnlimitedStock)
	uc := commands.NewRedemptionUseCase(u, clock.NewMockClock(testNow), nil)

	unlimitedOrder, err := uc.Redeem(ctx, owner, deliveryRequest(item.ID))
	require.NoError(t, err)
	adminCancelled, err := uc.Redeem(ctx, owner, deliveryRequest(item.ID))
	require.NoError(t, err)

	restocked := u.state.items[item.ID]
	restocked.StockQuantity = 5
	u.state.items[item.ID] = restocked

	finiteOrder, err := uc.Redeem(ctx, owner, deliveryRequest(item.ID))
	require.NoError(t, err)
	assert.Equal(t, int32(4), u.stock(item.ID))

	_, err = uc.Cancel(ctx, unlimitedOrder.RedemptionID, owner)
	require.NoError(t, err)
	assert.Equal(t, int32(4), u.stock(item.ID))

	_, err = uc.SetStatus(ctx, adminCancelled.RedemptionID, commands.SetStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, int32(4), u.stock(item.ID))

	_, err = uc.Cancel(ctx, finiteOrder.RedemptionID, owner)
	require.NoError(t, err)
	assert.Equal(t, int32(5), u.stock(item.ID))
	assert.Equal(t, int64(1000), u.balance(owner))
}

func TestSetStatus_FollowsDeliveryMethod(t *testing.T) {
	ctx := context.Background()
	u := newFakeUoW()
	owner := u.addUser(1000)
	item := u.addItem(100, 5)
	ev := u.addEvent(event.StatusActive, nil)
	uc := commands.NewRedemptionUseCase(u, clock.NewMockClock(testNow), nil)

	pickup, err := uc.Redeem(ctx, owner, commands.RedeemRequest{
		ItemID:  item.ID,
		Method:  redemption.DeliveryMethodPickup,
		Details: redemption.DeliveryDetails{PickupEventID: &ev.ID},
	})
	require.NoError(t, err)

	_, err = uc.SetStatus(ctx, pickup.RedemptionID, commands.SetStatusRequest{Status: "shipped"})
	assert.True(t, errs.Is(err, redemption.ErrInvalidTransition))
	_, err = uc.SetStatus(ctx, pickup.RedemptionID, commands.SetStatusRequest{Status: "delivered"})
	assert.True(t, errs.Is(err, redemption.ErrInvalidTransition))

	res, err := uc.SetStatus(ctx, pickup.RedemptionID, commands.SetStatusRequest{Status: "picked_up"})
	require.NoError(t, err)
	assert.Equal(t, redemption.StatusPickedUp, res.Status)

	delivery, err := uc.Redeem(ctx, owner, deliveryRequest(item.ID))
	require.NoError(t, err)
	_, err = uc.SetStatus(ctx, delivery.RedemptionID, commands.SetStatusRequest{Status: "picked_up"})
	assert.True(t, errs.Is(err, redemption.ErrInvalidTransition))
	assert.Equal(t, redemption.StatusPending, u.state.redemptions[delivery.RedemptionID].Status())
}
