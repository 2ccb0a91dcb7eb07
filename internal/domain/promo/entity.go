package promo

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPromoNotFound          = errors.New("promo not found")
	ErrPromoNotActive         = errors.New("promo is not active")
	ErrPromoNotYetValid       = errors.New("promo is not yet valid")
	ErrPromoExpired           = errors.New("promo has expired")
	ErrPromoUsageLimitReached = errors.New("promo usage limit reached")
	ErrAlreadyUsed            = errors.New("promo already used by this user")
)

type Promo struct {
	id           uuid.UUID
	code         Code
	title        string
	status       Status
	benefit      Benefit
	validFrom    *time.Time
	validUntil   *time.Time
	maxUsage     *int32
	currentUsage int32
}

func ReconstructPromo(
	id uuid.UUID,
	code Code,
	title string,
	status Status,
	benefit Benefit,
	validFrom, validUntil *time.Time,
	maxUsage *int32,
	currentUsage int32,
) *Promo {
	return &Promo{
		id:           id,
		code:         code,
		title:        title,
		status:       status,
		benefit:      benefit,
		validFrom:    validFrom,
		validUntil:   validUntil,
		maxUsage:     maxUsage,
		currentUsage: currentUsage,
	}
}

func (p *Promo) IsValidAt(t time.Time) bool {
	if p.validFrom != nil && t.Before(*p.validFrom) {
		return false
	}
	if p.validUntil != nil && t.After(*p.validUntil) {
		return false
	}
	return true
}

func (p *Promo) HasCapacity() bool {
	return p.maxUsage == nil || p.currentUsage < *p.maxUsage
}

// ValidateUsage is the read-side check. The usage counter is re-checked by
// the guarded increment when the claim is written.
func (p *Promo) ValidateUsage(t time.Time) error {
	if p.status != StatusActive {
		return ErrPromoNotActive
	}
	if p.validFrom != nil && t.Before(*p.validFrom) {
		return ErrPromoNotYetValid
	}
	if p.validUntil != nil && t.After(*p.validUntil) {
		return ErrPromoExpired
	}
	if !p.HasCapacity() {
		return ErrPromoUsageLimitReached
	}
	return nil
}

func (p *Promo) ID() uuid.UUID          { return p.id }
func (p *Promo) Code() Code             { return p.code }
func (p *Promo) Title() string          { return p.title }
func (p *Promo) Status() Status         { return p.status }
func (p *Promo) Benefit() Benefit       { return p.benefit }
func (p *Promo) ValidFrom() *time.Time  { return p.validFrom }
func (p *Promo) ValidUntil() *time.Time { return p.validUntil }
func (p *Promo) MaxUsage() *int32       { return p.maxUsage }
func (p *Promo) CurrentUsage() int32    { return p.currentUsage }
