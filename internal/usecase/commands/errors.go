package commands

import (
	"loyalty-ledger/internal/domain/adjustment"
	"loyalty-ledger/internal/domain/balance"
	"loyalty-ledger/internal/domain/checkin"
	"loyalty-ledger/internal/domain/promo"
	"loyalty-ledger/internal/domain/redemption"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/metrics"
)

var (
	ErrUserNotFound  = errs.New("user not found")
	ErrAdminRequired = errs.New("admin role required")
)

const (
	opCheckIn          = "check_in"
	opUsePromo         = "use_promo"
	opRedeem           = "redeem"
	opCancelRedemption = "cancel_redemption"
	opSetStatus        = "set_redemption_status"
	opAdjust           = "adjust_points"
)

// userErr turns a missing user row into ErrUserNotFound. A missing row shows
// up as no rows on the balance lock or as a foreign key violation on insert.
func userErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Mark(err, ErrUserNotFound)
	}
	return err
}

func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

var outcomes = []struct {
	err   error
	label string
}{
	{checkin.ErrAlreadyCheckedIn, "already_checked_in"},
	{checkin.ErrEventNotFound, "event_not_found"},
	{promo.ErrAlreadyUsed, "already_used"},
	{promo.ErrPromoUsageLimitReached, "usage_limit_reached"},
	{promo.ErrPromoExpired, "expired"},
	{promo.ErrPromoNotYetValid, "not_yet_valid"},
	{promo.ErrPromoNotActive, "not_active"},
	{promo.ErrPromoNotFound, "promo_not_found"},
	{balance.ErrInsufficientBalance, "insufficient_balance"},
	{redemption.ErrOutOfStock, "out_of_stock"},
	{redemption.ErrItemNotFound, "item_not_found"},
	{redemption.ErrItemInactive, "item_inactive"},
	{redemption.ErrDeliveryMethodUnavailable, "method_unavailable"},
	{redemption.ErrInvalidDeliveryDetails, "invalid_details"},
	{redemption.ErrInvalidTransition, "invalid_transition"},
	{redemption.ErrNotOrderOwner, "not_owner"},
	{redemption.ErrRedemptionNotFound, "redemption_not_found"},
	{adjustment.ErrZeroAdjustment, "zero_adjustment"},
	{adjustment.ErrInvalidReason, "invalid_reason"},
	{adjustment.ErrMissingAdmin, "missing_admin"},
	{balance.ErrBalanceOverflow, "balance_overflow"},
	{ErrUserNotFound, "user_not_found"},
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	for _, o := range outcomes {
		if errs.Is(err, o.err) {
			return o.label
		}
	}
	return "error"
}
