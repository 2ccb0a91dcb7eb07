package response

import (
	"time"

	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BenefitResponse struct {
	Type        string           `json:"type"`
	Value       *decimal.Decimal `json:"value,omitempty"`
	Description string           `json:"description"`
}

type PromoUseResponse struct {
	PromoID uuid.UUID       `json:"promo_id"`
	Code    string          `json:"code"`
	Title   string          `json:"title"`
	Benefit BenefitResponse `json:"benefit"`
}

func FromPromoUseResult(r *commands.PromoUseResult) *PromoUseResponse {
	benefit := BenefitResponse{
		Type:        string(r.Benefit.Type()),
		Description: r.Benefit.Summary(),
	}
	if v := r.Benefit.Value(); !v.IsZero() {
		benefit.Value = &v
	}
	return &PromoUseResponse{
		PromoID: r.PromoID,
		Code:    r.Code,
		Title:   r.Title,
		Benefit: benefit,
	}
}

type PromoResponse struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	Title      string          `json:"title"`
	Status     string          `json:"status"`
	Benefit    BenefitResponse `json:"benefit"`
	ValidFrom  *time.Time      `json:"valid_from,omitempty"`
	ValidUntil *time.Time      `json:"valid_until,omitempty"`
	// Remaining is nil for promos without a usage cap.
	Remaining *int32 `json:"remaining,omitempty"`
}

func FromPromoView(v *queries.PromoView) *PromoResponse {
	res := &PromoResponse{
		ID:     v.ID,
		Code:   v.Code,
		Title:  v.Title,
		Status: v.Status,
		Benefit: BenefitResponse{
			Type:        v.BenefitType,
			Value:       v.BenefitValue,
			Description: v.Description,
		},
		ValidFrom:  v.ValidFrom,
		ValidUntil: v.ValidUntil,
	}
	if v.MaxUsage != nil {
		remaining := max(*v.MaxUsage-v.CurrentUsage, 0)
		res.Remaining = &remaining
	}
	return res
}
