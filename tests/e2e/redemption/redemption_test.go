//go:build e2e

package redemption_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/handler/dto/request"
	"loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/tests/common/authtest"
	"loyalty-ledger/tests/common/dbtest"
	"loyalty-ledger/tests/common/httptest"
	"loyalty-ledger/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	redemptionsURL  = "/api/redemptions"
	redemptionURL   = "/api/redemptions/%s"
	cancelURL       = "/api/redemptions/%s/cancel"
	checkInURL      = "/api/events/%s/check-in"
	adminStatusURL  = "/api/admin/redemptions/%s/status"
	adminAdjustURL  = "/api/admin/users/%s/adjustments"
	deliveryAddress = "1-2-3 Shibuya, Tokyo"
	deliveryPhone   = "090-1234-5678"
)

type RedemptionSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *RedemptionSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestRedemptionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedemptionSuite))
}

func deliveryRequest(itemID uuid.UUID) request.RedeemRequest {
	address, phone := deliveryAddress, deliveryPhone
	return request.RedeemRequest{
		ItemID:         itemID,
		DeliveryMethod: "delivery",
		Address:        &address,
		Phone:          &phone,
	}
}

func (s *RedemptionSuite) redeem(t *testing.T, token string, itemID uuid.UUID) *response.RedeemResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, deliveryRequest(itemID), token)
	var res response.RedeemResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return &res
}

func (s *RedemptionSuite) TestCheckInThenSpend() {
	s.Run("Normal case: earn by check-in, spend it, then fail on an empty balance", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "u1", string(user.RoleMember), 0)
		eventID := dbtest.CreateTestEvent(t, s.DB, "Event 7", "active", nil)
		itemID := dbtest.CreateTestItem(t, s.DB, "Sticker", 5, 3)
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(checkInURL, eventID), nil, token)
		var checkIn response.CheckInResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &checkIn)
		require.Equal(t, int64(5), checkIn.TotalPoints)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(checkInURL, eventID), nil, token)
		require.Equal(t, http.StatusConflict, w.Code)

		res := s.redeem(t, token, itemID)
		require.Equal(t, int64(0), res.RemainingPoints)
		require.Equal(t, "pending", res.Status)
		require.Equal(t, int32(2), dbtest.ItemStock(t, s.DB, itemID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, deliveryRequest(itemID), token)
		resp := httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Insufficient points: need 5, have 0")
		require.Equal(t, "INSUFFICIENT_BALANCE", resp.Error.Code)
		require.Equal(t, int32(2), dbtest.ItemStock(t, s.DB, itemID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "redemptions", userID))
	})
}

func (s *RedemptionSuite) TestRedeem() {
	s.Run("Normal case: created redemption is readable by its owner", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "buyer", string(user.RoleMember), 100)
		itemID := dbtest.CreateTestItem(t, s.DB, "Tote Bag", 40, -1)
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, deliveryRequest(itemID), token)
		var created response.RedeemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "/api/redemptions/"+created.RedemptionID.String(), w.Header().Get("Location"))
		require.Equal(t, int64(60), created.RemainingPoints)
		require.Equal(t, int32(-1), dbtest.ItemStock(t, s.DB, itemID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(redemptionURL, created.RedemptionID), nil, token)
		var got response.RedemptionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		address, phone := deliveryAddress, deliveryPhone
		want := response.RedemptionResponse{
			ID:             created.RedemptionID,
			UserID:         userID,
			ItemID:         itemID,
			ItemName:       "Tote Bag",
			PointsUsed:     40,
			DeliveryMethod: "delivery",
			Address:        &address,
			Phone:          &phone,
			Status:         "pending",
		}
		opts := cmpopts.IgnoreFields(response.RedemptionResponse{}, "RedeemedAt", "UpdatedAt")
		if diff := cmp.Diff(want, got, opts); diff != "" {
			t.Errorf("redemption mismatch (-want +got):\n%s", diff)
		}

		other := dbtest.CreateTestUser(t, s.DB, "stranger", string(user.RoleMember), 0)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(redemptionURL, created.RedemptionID), nil,
			s.jwt.GenerateToken(t, other, user.RoleMember))
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Concurrency: the last unit of stock goes to exactly one buyer", func() {
		t := s.T()

		itemID := dbtest.CreateTestItem(t, s.DB, "Signed Poster", 10, 1)

		const buyers = 10
		tokens := make([]string, buyers)
		userIDs := make([]uuid.UUID, buyers)
		for i := range buyers {
			userIDs[i] = dbtest.CreateTestUser(t, s.DB, fmt.Sprintf("buyer-%d", i), string(user.RoleMember), 10)
			tokens[i] = s.jwt.GenerateToken(t, userIDs[i], user.RoleMember)
		}

		codes := make([]int, buyers)
		var wg sync.WaitGroup
		for i := range buyers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, deliveryRequest(itemID), tokens[i])
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		var won int
		var spent int64
		for i, code := range codes {
			switch code {
			case http.StatusCreated:
				won++
			case http.StatusConflict:
			default:
				t.Fatalf("unexpected status %d for buyer %d", code, i)
			}
			spent += 10 - dbtest.UserPoints(t, s.DB, userIDs[i])
		}
		require.Equal(t, 1, won)
		require.Equal(t, int64(10), spent)
		require.Zero(t, dbtest.ItemStock(t, s.DB, itemID))
	})

	s.Run("Atomicity: a rejected spend leaves stock and balance untouched", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "short", string(user.RoleMember), 3)
		itemID := dbtest.CreateTestItem(t, s.DB, "Mug", 10, 4)
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, deliveryRequest(itemID), token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		require.Equal(t, int32(4), dbtest.ItemStock(t, s.DB, itemID))
		require.Equal(t, int64(3), dbtest.UserPoints(t, s.DB, userID))
		require.Zero(t, dbtest.CountRows(t, s.DB, "redemptions", userID))
	})

	s.Run("Error case: pickup requires a live pickup event", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "picker", string(user.RoleMember), 50)
		itemID := dbtest.CreateTestItem(t, s.DB, "Cap", 10, 5)
		ended := dbtest.CreateTestEvent(t, s.DB, "Yesterday", "ended", nil)
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, request.RedeemRequest{
			ItemID:         itemID,
			DeliveryMethod: "pickup",
			PickupEventID:  &ended,
		}, token)
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "INVALID_DELIVERY_DETAILS")
		require.Equal(t, int32(5), dbtest.ItemStock(t, s.DB, itemID))
		require.Equal(t, int64(50), dbtest.UserPoints(t, s.DB, userID))
	})
}

func (s *RedemptionSuite) TestCancel() {
	s.Run("Normal case: cancelling an order placed while stock was unlimited adds no unit", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "early", string(user.RoleMember), 100)
		itemID := dbtest.CreateTestItem(t, s.DB, "Sticker", 10, -1)
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		created := s.redeem(t, token, itemID)

		_, err := s.DB.Exec(t.Context(), "UPDATE redemption_items SET stock_quantity = 5 WHERE id = $1", itemID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.RedemptionID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, int32(5), dbtest.ItemStock(t, s.DB, itemID))
		require.Equal(t, int64(100), dbtest.UserPoints(t, s.DB, userID))
	})

	s.Run("Normal case: cancellation refunds exactly the recorded amount and restores stock", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "returner", string(user.RoleMember), 500)
		itemID := dbtest.CreateTestItem(t, s.DB, "Headphones", 300, 2)
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		created := s.redeem(t, token, itemID)
		require.Equal(t, int64(200), created.RemainingPoints)

		_, err := s.DB.Exec(t.Context(), "UPDATE redemption_items SET points_required = 450 WHERE id = $1", itemID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.RedemptionID), nil, token)
		var cancelled response.CancelRedemptionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, int64(300), cancelled.RefundedPoints)
		require.Equal(t, int64(500), cancelled.TotalPoints)
		require.Equal(t, int32(2), dbtest.ItemStock(t, s.DB, itemID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.RedemptionID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Invalid status transition")
		require.Equal(t, int64(500), dbtest.UserPoints(t, s.DB, userID))
	})

	s.Run("Normal case: admin moves an order along and an admin cancel refunds", func() {
		t := s.T()

		adminID := dbtest.CreateTestUser(t, s.DB, "admin", string(user.RoleAdmin), 0)
		userID := dbtest.CreateTestUser(t, s.DB, "member", string(user.RoleMember), 100)
		itemID := dbtest.CreateTestItem(t, s.DB, "Notebook", 25, 10)
		adminToken := s.jwt.GenerateToken(t, adminID, user.RoleAdmin)
		memberToken := s.jwt.GenerateToken(t, userID, user.RoleMember)

		shipped := s.redeem(t, memberToken, itemID)
		notes := "tracking JP123"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(adminStatusURL, shipped.RedemptionID),
			request.SetRedemptionStatusRequest{Status: "shipped", AdminNotes: &notes}, adminToken)
		var res response.SetRedemptionStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "shipped", res.Status)
		require.Zero(t, res.RefundedPoints)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, shipped.RedemptionID), nil, memberToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		pending := s.redeem(t, memberToken, itemID)
		require.Equal(t, int64(50), dbtest.UserPoints(t, s.DB, userID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(adminStatusURL, pending.RedemptionID),
			request.SetRedemptionStatusRequest{Status: "cancelled"}, adminToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, int64(25), res.RefundedPoints)
		require.Equal(t, int64(75), dbtest.UserPoints(t, s.DB, userID))
		require.Equal(t, int32(9), dbtest.ItemStock(t, s.DB, itemID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, redemptionsURL, nil, memberToken)
		var list []response.RedemptionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 2)
		require.Equal(t, pending.RedemptionID, list[0].ID)
		require.Equal(t, "cancelled", list[0].Status)
		require.Equal(t, &notes, list[1].AdminNotes)
	})

	s.Run("Error case: a pickup order never ships and a delivery order is never picked up", func() {
		t := s.T()

		adminID := dbtest.CreateTestUser(t, s.DB, "admin", string(user.RoleAdmin), 0)
		userID := dbtest.CreateTestUser(t, s.DB, "member", string(user.RoleMember), 100)
		itemID := dbtest.CreateTestItem(t, s.DB, "Tote", 20, 10)
		eventID := dbtest.CreateTestEvent(t, s.DB, "Market Day", "active", nil)
		adminToken := s.jwt.GenerateToken(t, adminID, user.RoleAdmin)
		memberToken := s.jwt.GenerateToken(t, userID, user.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, request.RedeemRequest{
			ItemID:         itemID,
			DeliveryMethod: "pickup",
			PickupEventID:  &eventID,
		}, memberToken)
		var pickup response.RedeemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &pickup)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(adminStatusURL, pickup.RedemptionID),
			request.SetRedemptionStatusRequest{Status: "shipped"}, adminToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "INVALID_TRANSITION")

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(adminStatusURL, pickup.RedemptionID),
			request.SetRedemptionStatusRequest{Status: "picked_up"}, adminToken)
		var res response.SetRedemptionStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "picked_up", res.Status)

		delivery := s.redeem(t, memberToken, itemID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(adminStatusURL, delivery.RedemptionID),
			request.SetRedemptionStatusRequest{Status: "picked_up"}, adminToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "INVALID_TRANSITION")
	})

	s.Run("Error case: members cannot drive admin transitions", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "member", string(user.RoleMember), 100)
		itemID := dbtest.CreateTestItem(t, s.DB, "Pen", 5, -1)
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)
		created := s.redeem(t, token, itemID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(adminStatusURL, created.RedemptionID),
			request.SetRedemptionStatusRequest{Status: "delivered"}, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *RedemptionSuite) TestBalanceAfterRedemptions() {
	s.Run("Normal case: summary stays consistent across spend and refund", func() {
		t := s.T()

		adminID := dbtest.CreateTestUser(t, s.DB, "admin", string(user.RoleAdmin), 0)
		userID := dbtest.CreateTestUser(t, s.DB, "member", string(user.RoleMember), 0)
		itemID := dbtest.CreateTestItem(t, s.DB, "Badge", 15, -1)
		adminToken := s.jwt.GenerateToken(t, adminID, user.RoleAdmin)
		token := s.jwt.GenerateToken(t, userID, user.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(adminAdjustURL, userID),
			request.AdjustPointsRequest{Amount: 40, Reason: "welcome bonus"}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		kept := s.redeem(t, token, itemID)
		refunded := s.redeem(t, token, itemID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, refunded.RedemptionID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NotEqual(t, kept.RedemptionID, refunded.RedemptionID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/me/balance", nil, token)
		var balance response.BalanceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &balance)
		require.Equal(t, response.BalanceResponse{UserID: userID, Points: 25, LifetimeEarned: 40, LifetimeSpent: 15}, balance)
	})
}
