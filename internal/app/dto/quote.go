package dto

import (
	"github.com/shopspring/decimal"

	"marketplace-admin/internal/app/pricing"
)

// ============ Расчет цены (Quote) ============

// QuoteRequest: метод задается id или именем/сокращением
type QuoteRequest struct {
	MethodID      uint              `json:"methodId" binding:"required_without=Method"`
	Method        string            `json:"method" binding:"required_without=MethodID"`
	Quantity      decimal.Decimal   `json:"quantity" binding:"decimal_gte0"`
	LevelsSpanned int               `json:"levelsSpanned" binding:"min=0"`
	CustomFields  map[string]string `json:"customFields" binding:"omitempty,dive,keys,fieldkey,endkeys"`
}

// QuoteContext: количество по умолчанию 1
func (r QuoteRequest) QuoteContext() pricing.QuoteContext {
	qty := r.Quantity
	if qty.IsZero() {
		qty = decimal.NewFromInt(1)
	}
	return pricing.QuoteContext{
		Quantity:      qty,
		LevelsSpanned: r.LevelsSpanned,
		CustomFields:  r.CustomFields,
	}
}

type BreakdownLineResponse struct {
	ModifierID   uint                `json:"modifierId"`
	ModifierName string              `json:"modifierName"`
	DisplayType  pricing.DisplayType `json:"displayType"`
	Delta        decimal.Decimal     `json:"delta"`
	RunningPrice decimal.Decimal     `json:"runningPrice"`
}

type QuoteResponse struct {
	MethodID   uint                    `json:"methodId"`
	BasePrice  decimal.Decimal         `json:"basePrice"`
	FinalPrice decimal.Decimal         `json:"finalPrice"`
	Breakdown  []BreakdownLineResponse `json:"breakdown"`
}

func NewQuoteResponse(q pricing.Quote) QuoteResponse {
	lines := make([]BreakdownLineResponse, len(q.Breakdown))
	for i, l := range q.Breakdown {
		lines[i] = BreakdownLineResponse{
			ModifierID:   l.ModifierID,
			ModifierName: l.ModifierName,
			DisplayType:  l.DisplayType,
			Delta:        l.Delta,
			RunningPrice: l.RunningPrice,
		}
	}
	return QuoteResponse{
		MethodID:   q.MethodID,
		BasePrice:  q.BasePrice,
		FinalPrice: q.FinalPrice,
		Breakdown:  lines,
	}
}
