package redemption

import (
	"errors"
	"time"

	"loyalty-ledger/internal/domain/event"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound              = errors.New("redemption item not found")
	ErrItemInactive              = errors.New("redemption item is not active")
	ErrDeliveryMethodUnavailable = errors.New("delivery method not available for this item")
	ErrInvalidDeliveryDetails    = errors.New("invalid delivery details")
	ErrOutOfStock                = errors.New("item is out of stock")
	ErrInvalidTransition         = errors.New("invalid redemption status transition")
	ErrInvalidStatus             = errors.New("invalid redemption status")
	ErrNotOrderOwner             = errors.New("redemption belongs to another user")
	ErrRedemptionNotFound        = errors.New("redemption not found")
	ErrInvalidItemPrice          = errors.New("item price must be positive")
	ErrNotesTooLong              = errors.New("admin notes too long")
)

type Redemption struct {
	id             uuid.UUID
	userID         uuid.UUID
	itemID         uuid.UUID
	pointsUsed     int64
	deliveryMethod DeliveryMethod
	pickupEventID  *uuid.UUID
	address        *string
	phone          *string
	status         Status
	adminNotes     *string
	stockReserved  bool
	redeemedAt     time.Time
	updatedAt      time.Time
}

// NewRedemption validates the request against the item and builds a pending
// order whose price is frozen at the item's current cost. pickupEvent is the
// resolved event for DeliveryDetails.PickupEventID, nil when none was found.
func NewRedemption(
	item ItemSpec,
	userID uuid.UUID,
	method DeliveryMethod,
	details DeliveryDetails,
	pickupEvent *event.Event,
	now time.Time,
) (*Redemption, error) {
	if !item.IsActive {
		return nil, ErrItemInactive
	}
	if item.PointsRequired <= 0 {
		return nil, ErrInvalidItemPrice
	}
	if !item.Supports(method) {
		return nil, ErrDeliveryMethodUnavailable
	}

	details = details.Normalized()
	r := &Redemption{
		id:             uuid.New(),
		userID:         userID,
		itemID:         item.ID,
		pointsUsed:     item.PointsRequired,
		deliveryMethod: method,
		status:         StatusPending,
		redeemedAt:     now,
		updatedAt:      now,
	}

	switch method {
	case DeliveryMethodDelivery:
		if err := details.validateDelivery(); err != nil {
			return nil, err
		}
		r.address = details.Address
		r.phone = details.Phone
	case DeliveryMethodPickup:
		if details.PickupEventID == nil || pickupEvent == nil || pickupEvent.ID != *details.PickupEventID {
			return nil, ErrInvalidDeliveryDetails
		}
		if !pickupEvent.IsLive(now) {
			return nil, ErrInvalidDeliveryDetails
		}
		id := pickupEvent.ID
		r.pickupEventID = &id
		r.phone = details.Phone
	default:
		return nil, ErrInvalidDeliveryDetails
	}

	return r, nil
}

func ReconstructRedemption(
	id, userID, itemID uuid.UUID,
	pointsUsed int64,
	method DeliveryMethod,
	pickupEventID *uuid.UUID,
	address, phone *string,
	status Status,
	adminNotes *string,
	stockReserved bool,
	redeemedAt, updatedAt time.Time,
) *Redemption {
	return &Redemption{
		id:             id,
		userID:         userID,
		itemID:         itemID,
		pointsUsed:     pointsUsed,
		deliveryMethod: method,
		pickupEventID:  pickupEventID,
		address:        address,
		phone:          phone,
		status:         status,
		adminNotes:     adminNotes,
		stockReserved:  stockReserved,
		redeemedAt:     redeemedAt,
		updatedAt:      updatedAt,
	}
}

// Cancel is the owner's cancellation. The caller refunds PointsUsed and
// restores stock in the same transaction.
func (r *Redemption) Cancel(actorID uuid.UUID, now time.Time) error {
	if r.userID != actorID {
		return ErrNotOrderOwner
	}
	if !r.status.IsUserCancellable() {
		return ErrInvalidTransition
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

// AdvanceTo is the admin transition. It returns true when the new status
// requires a refund.
func (r *Redemption) AdvanceTo(target Status, notes *string, now time.Time) (bool, error) {
	if !target.IsValid() {
		return false, ErrInvalidStatus
	}
	if r.status.IsTerminal() || !r.status.CanAdvanceTo(target) || !r.deliveryMethod.Fulfils(target) {
		return false, ErrInvalidTransition
	}
	normalized, err := NormalizeNotes(notes)
	if err != nil {
		return false, err
	}

	r.status = target
	if normalized != nil {
		r.adminNotes = normalized
	}
	r.updatedAt = now
	return target == StatusCancelled, nil
}

// MarkStockReserved records that a finite stock unit was taken for this
// order. Only such orders give a unit back on cancellation.
func (r *Redemption) MarkStockReserved() {
	r.stockReserved = true
}

func (r *Redemption) ID() uuid.UUID                  { return r.id }
func (r *Redemption) UserID() uuid.UUID              { return r.userID }
func (r *Redemption) ItemID() uuid.UUID              { return r.itemID }
func (r *Redemption) PointsUsed() int64              { return r.pointsUsed }
func (r *Redemption) DeliveryMethod() DeliveryMethod { return r.deliveryMethod }
func (r *Redemption) PickupEventID() *uuid.UUID      { return r.pickupEventID }
func (r *Redemption) Address() *string               { return r.address }
func (r *Redemption) Phone() *string                 { return r.phone }
func (r *Redemption) Status() Status                 { return r.status }
func (r *Redemption) AdminNotes() *string            { return r.adminNotes }
func (r *Redemption) StockReserved() bool            { return r.stockReserved }
func (r *Redemption) RedeemedAt() time.Time          { return r.redeemedAt }
func (r *Redemption) UpdatedAt() time.Time           { return r.updatedAt }
