package promo

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPromoCode    = errors.New("invalid promo code format")
	ErrInvalidBenefitType  = errors.New("invalid benefit type")
	ErrInvalidBenefitValue = errors.New("invalid benefit value")
)

var promoCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !promoCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidPromoCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type BenefitType string

const (
	BenefitPercent BenefitType = "percent"
	BenefitAmount  BenefitType = "amount"
	BenefitPerk    BenefitType = "perk"
)

var hundred = decimal.NewFromInt(100)

// Benefit describes what the promo grants. Applying it to a price happens
// outside the ledger.
type Benefit struct {
	kind        BenefitType
	value       decimal.Decimal
	description string
}

func NewBenefit(kind BenefitType, value *decimal.Decimal, description string) (Benefit, error) {
	description = strings.TrimSpace(description)

	switch kind {
	case BenefitPercent:
		if value == nil || !value.IsPositive() || value.GreaterThan(hundred) {
			return Benefit{}, ErrInvalidBenefitValue
		}
	case BenefitAmount:
		if value == nil || !value.IsPositive() {
			return Benefit{}, ErrInvalidBenefitValue
		}
	case BenefitPerk:
		if description == "" {
			return Benefit{}, ErrInvalidBenefitValue
		}
		return Benefit{kind: kind, description: description}, nil
	default:
		return Benefit{}, ErrInvalidBenefitType
	}

	return Benefit{kind: kind, value: *value, description: description}, nil
}

func (b Benefit) Type() BenefitType      { return b.kind }
func (b Benefit) Value() decimal.Decimal { return b.value }
func (b Benefit) Description() string    { return b.description }

// Summary is the human readable form shown after a successful claim.
func (b Benefit) Summary() string {
	if b.description != "" {
		return b.description
	}
	switch b.kind {
	case BenefitPercent:
		return b.value.String() + "% off"
	case BenefitAmount:
		return b.value.StringFixed(2) + " off"
	default:
		return ""
	}
}
