package redemption

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	UnlimitedStock   int32 = -1
	maxAddressLength       = 500
	maxNotesLength         = 1000
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{5,19}$`)

// DeliveryDetails holds the caller supplied fields for either method.
type DeliveryDetails struct {
	PickupEventID *uuid.UUID
	Address       *string
	Phone         *string
}

// Normalized trims text fields and drops the ones that are blank.
func (d DeliveryDetails) Normalized() DeliveryDetails {
	return DeliveryDetails{
		PickupEventID: d.PickupEventID,
		Address:       trimmedOrNil(d.Address),
		Phone:         trimmedOrNil(d.Phone),
	}
}

func (d DeliveryDetails) validateDelivery() error {
	if d.Address == nil || d.Phone == nil {
		return ErrInvalidDeliveryDetails
	}
	if len(*d.Address) > maxAddressLength {
		return ErrInvalidDeliveryDetails
	}
	if !phoneRegex.MatchString(*d.Phone) {
		return ErrInvalidDeliveryDetails
	}
	return nil
}

// ItemSpec is the catalog row as seen by the redemption path.
type ItemSpec struct {
	ID                uuid.UUID
	Name              string
	PointsRequired    int64
	StockQuantity     int32
	IsActive          bool
	DeliveryAvailable bool
	PickupAvailable   bool
}

func (i ItemSpec) HasFiniteStock() bool {
	return i.StockQuantity != UnlimitedStock
}

func (i ItemSpec) Supports(method DeliveryMethod) bool {
	switch method {
	case DeliveryMethodDelivery:
		return i.DeliveryAvailable
	case DeliveryMethodPickup:
		return i.PickupAvailable
	default:
		return false
	}
}

func NormalizeNotes(notes *string) (*string, error) {
	n := trimmedOrNil(notes)
	if n != nil && len(*n) > maxNotesLength {
		return nil, ErrNotesTooLong
	}
	return n, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
