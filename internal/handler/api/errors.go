package api

import (
	"errors"
	"fmt"
	"net/http"

	"loyalty-ledger/internal/domain/adjustment"
	"loyalty-ledger/internal/domain/balance"
	"loyalty-ledger/internal/domain/checkin"
	"loyalty-ledger/internal/domain/promo"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgInternal = "Something went wrong, please try again later"

type errorMapping struct {
	target  error
	code    string
	status  int
	message string
}

// errorTable is searched in order; the first match decides the response.
var errorTable = []errorMapping{
	{checkin.ErrAlreadyCheckedIn, "ALREADY_CHECKED_IN", http.StatusConflict, "Already checked in to this event"},
	{checkin.ErrEventNotFound, "EVENT_NOT_FOUND", http.StatusNotFound, "Event not found"},

	{promo.ErrAlreadyUsed, "PROMO_ALREADY_USED", http.StatusConflict, "Promo already used"},
	{promo.ErrPromoUsageLimitReached, "PROMO_USAGE_LIMIT_REACHED", http.StatusConflict, "Promo usage limit reached"},
	{promo.ErrPromoNotFound, "PROMO_NOT_FOUND", http.StatusNotFound, "Promo not found"},
	{promo.ErrPromoNotActive, "PROMO_NOT_ACTIVE", http.StatusBadRequest, "Promo is not active"},
	{promo.ErrPromoNotYetValid, "PROMO_NOT_YET_VALID", http.StatusBadRequest, "Promo is not yet valid"},
	{promo.ErrPromoExpired, "PROMO_EXPIRED", http.StatusBadRequest, "Promo has expired"},
	{promo.ErrInvalidPromoCode, "INVALID_PROMO_CODE", http.StatusBadRequest, "Invalid promo code"},

	{redemption.ErrOutOfStock, "OUT_OF_STOCK", http.StatusConflict, "Item is out of stock"},
	{redemption.ErrInvalidTransition, "INVALID_TRANSITION", http.StatusConflict, "Invalid status transition"},
	{redemption.ErrItemInactive, "ITEM_INACTIVE", http.StatusUnprocessableEntity, "Item is not available"},
	{redemption.ErrItemNotFound, "ITEM_NOT_FOUND", http.StatusNotFound, "Item not found"},
	{redemption.ErrRedemptionNotFound, "REDEMPTION_NOT_FOUND", http.StatusNotFound, "Redemption not found"},
	{redemption.ErrNotOrderOwner, "NOT_ORDER_OWNER", http.StatusForbidden, "Not your redemption"},
	{redemption.ErrDeliveryMethodUnavailable, "DELIVERY_METHOD_UNAVAILABLE", http.StatusBadRequest, "Delivery method not available for this item"},
	{redemption.ErrInvalidDeliveryDetails, "INVALID_DELIVERY_DETAILS", http.StatusBadRequest, "Invalid delivery details"},
	{redemption.ErrInvalidStatus, "INVALID_STATUS", http.StatusBadRequest, "Invalid status"},
	{redemption.ErrNotesTooLong, "NOTES_TOO_LONG", http.StatusBadRequest, "Admin notes too long"},

	{adjustment.ErrZeroAdjustment, "ZERO_ADJUSTMENT", http.StatusBadRequest, "Adjustment amount must not be zero"},
	{adjustment.ErrInvalidReason, "INVALID_REASON", http.StatusBadRequest, "Invalid reason"},
	{adjustment.ErrMissingAdmin, "ADMIN_REQUIRED", http.StatusForbidden, "Admin identity is required"},
	{balance.ErrBalanceOverflow, "BALANCE_OVERFLOW", http.StatusUnprocessableEntity, "Resulting balance is too large"},

	{commands.ErrAdminRequired, "ADMIN_REQUIRED", http.StatusForbidden, "Admin role required"},
	{commands.ErrUserNotFound, "USER_NOT_FOUND", http.StatusNotFound, "User not found"},
	{queries.ErrUserNotFound, "USER_NOT_FOUND", http.StatusNotFound, "User not found"},
}

// abortWithUseCaseError maps a use case error onto the HTTP response. Errors
// that carry data are handled before the table.
func abortWithUseCaseError(c *gin.Context, err error) {
	var insufficient *balance.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		msg := fmt.Sprintf("Insufficient points: need %d, have %d", insufficient.Need, insufficient.Have)
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, "INSUFFICIENT_BALANCE", err, msg, gin.H{
			"need": insufficient.Need,
			"have": insufficient.Have,
		})
		return
	}

	var already *checkin.AlreadyCheckedInError
	if errors.As(err, &already) {
		httperr.AbortWithCode(c, http.StatusConflict, "ALREADY_CHECKED_IN", err, "Already checked in to this event", gin.H{
			"total_points": already.TotalPoints,
		})
		return
	}

	for _, m := range errorTable {
		if errs.Is(err, m.target) {
			httperr.AbortWithCode(c, m.status, m.code, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
}
