package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"marketplace-admin/internal/app/pricing"
)

// ============ Модификаторы (Service Modifiers) ============

type ModifierResponse struct {
	ID           uint                 `json:"id"`
	ServiceID    uint                 `json:"serviceId"`
	Name         string               `json:"name"`
	ModifierType pricing.ModifierType `json:"modifierType"`
	Value        decimal.Decimal      `json:"value"`
	DisplayType  pricing.DisplayType  `json:"displayType"`
	Priority     int                  `json:"priority"`
	Condition    json.RawMessage      `json:"condition"`
	Active       bool                 `json:"active"`
}

func NewModifierResponse(m pricing.Modifier) (ModifierResponse, error) {
	cond, err := pricing.EncodeCondition(m.Condition)
	if err != nil {
		return ModifierResponse{}, err
	}
	return ModifierResponse{
		ID:           m.ID,
		ServiceID:    m.ServiceID,
		Name:         m.Name,
		ModifierType: m.Type,
		Value:        m.Value,
		DisplayType:  m.DisplayType,
		Priority:     m.Priority,
		Condition:    cond,
		Active:       m.Active,
	}, nil
}

type ModifierListResponse struct {
	Modifiers []ModifierResponse `json:"modifiers"`
	Total     int                `json:"total"`
}

type CreateModifierRequest struct {
	Name         string               `json:"name"`
	ModifierType pricing.ModifierType `json:"modifierType"`
	Value        *decimal.Decimal     `json:"value"`
	DisplayType  pricing.DisplayType  `json:"displayType"`
	Priority     int                  `json:"priority"`
	Condition    json.RawMessage      `json:"condition"`
	Active       *bool                `json:"active"`
}

// Draft разбирает условие; ошибка разбора возвращается как ValidationError
func (r CreateModifierRequest) Draft() (pricing.ModifierDraft, error) {
	cond, err := pricing.DecodeCondition(r.Condition)
	if err != nil {
		return pricing.ModifierDraft{}, conditionError(err)
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return pricing.ModifierDraft{
		Name:        r.Name,
		Type:        r.ModifierType,
		Value:       r.Value,
		DisplayType: r.DisplayType,
		Priority:    r.Priority,
		Condition:   cond,
		Active:      active,
	}, nil
}

// UpdateModifierRequest: отсутствующее condition не меняется, null снимает условие
type UpdateModifierRequest struct {
	Name         *string               `json:"name"`
	ModifierType *pricing.ModifierType `json:"modifierType"`
	Value        *decimal.Decimal      `json:"value"`
	DisplayType  *pricing.DisplayType  `json:"displayType"`
	Priority     *int                  `json:"priority"`
	Condition    json.RawMessage       `json:"condition"`
	Active       *bool                 `json:"active"`
}

func (r UpdateModifierRequest) Patch() (pricing.ModifierPatch, error) {
	p := pricing.ModifierPatch{
		Name:        r.Name,
		Type:        r.ModifierType,
		Value:       r.Value,
		DisplayType: r.DisplayType,
		Priority:    r.Priority,
		Active:      r.Active,
	}
	if len(r.Condition) == 0 {
		return p, nil
	}
	cond, err := pricing.DecodeCondition(r.Condition)
	if err != nil {
		return pricing.ModifierPatch{}, conditionError(err)
	}
	if cond == nil {
		p.ClearCondition = true
	} else {
		p.Condition = cond
	}
	return p, nil
}

func conditionError(err error) error {
	return &pricing.ValidationError{Fields: []pricing.FieldError{pricing.ConditionFieldError(err)}}
}
