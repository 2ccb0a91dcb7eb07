package redemption

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusPickedUp   Status = "picked_up"
	StatusCancelled  Status = "cancelled"
)

// next lists the direct edges of the order lifecycle.
var next = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusPickedUp, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusPickedUp, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  nil,
	StatusPickedUp:   nil,
	StatusCancelled:  nil,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := next[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(next[s]) == 0
}

func (s Status) IsUserCancellable() bool {
	return s == StatusPending || s == StatusProcessing
}

// CanAdvanceTo reports whether target is reachable from s along the
// lifecycle graph, so admins may skip intermediate states.
func (s Status) CanAdvanceTo(target Status) bool {
	if !s.IsValid() || !target.IsValid() || s == target {
		return false
	}
	seen := map[Status]bool{s: true}
	queue := []Status{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range next[cur] {
			if n == target {
				return true
			}
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type DeliveryMethod string

const (
	DeliveryMethodPickup   DeliveryMethod = "pickup"
	DeliveryMethodDelivery DeliveryMethod = "delivery"
)

func (m DeliveryMethod) String() string {
	return string(m)
}

// Fulfils reports whether s lies on the fulfilment path of m. Shipping
// belongs to delivery orders and pickup to pickup orders.
func (m DeliveryMethod) Fulfils(s Status) bool {
	switch s {
	case StatusShipped, StatusDelivered:
		return m == DeliveryMethodDelivery
	case StatusPickedUp:
		return m == DeliveryMethodPickup
	default:
		return true
	}
}

func NewDeliveryMethod(s string) (DeliveryMethod, error) {
	switch m := DeliveryMethod(s); m {
	case DeliveryMethodPickup, DeliveryMethodDelivery:
		return m, nil
	default:
		return "", ErrInvalidDeliveryDetails
	}
}
