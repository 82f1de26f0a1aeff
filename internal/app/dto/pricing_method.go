package dto

import (
	"github.com/shopspring/decimal"

	"marketplace-admin/internal/app/pricing"
)

// ============ Методы ценообразования (Pricing Methods) ============

type PricingMethodResponse struct {
	ID           uint                `json:"id"`
	ServiceID    uint                `json:"serviceId"`
	Name         string              `json:"name"`
	GroupName    string              `json:"groupName,omitempty"`
	PricingUnit  pricing.PricingUnit `json:"pricingUnit"`
	BasePrice    decimal.Decimal     `json:"basePrice"`
	StartLevel   *int                `json:"startLevel,omitempty"`
	EndLevel     *int                `json:"endLevel,omitempty"`
	Shortcuts    []string            `json:"shortcuts"`
	DisplayOrder int                 `json:"displayOrder"`
	Active       bool                `json:"active"`
}

func NewPricingMethodResponse(m pricing.PricingMethod) PricingMethodResponse {
	shortcuts := m.Shortcuts
	if shortcuts == nil {
		shortcuts = []string{}
	}
	return PricingMethodResponse{
		ID:           m.ID,
		ServiceID:    m.ServiceID,
		Name:         m.Name,
		GroupName:    m.GroupName,
		PricingUnit:  m.PricingUnit,
		BasePrice:    m.BasePrice,
		StartLevel:   m.StartLevel,
		EndLevel:     m.EndLevel,
		Shortcuts:    shortcuts,
		DisplayOrder: m.DisplayOrder,
		Active:       m.Active,
	}
}

type PricingMethodListResponse struct {
	PricingMethods []PricingMethodResponse `json:"pricingMethods"`
	Total          int                     `json:"total"`
}

// MethodRow - строка пакета методов. Проверка полей целиком на валидаторе
type MethodRow struct {
	Name         string              `json:"name"`
	GroupName    string              `json:"groupName"`
	PricingUnit  pricing.PricingUnit `json:"pricingUnit"`
	BasePrice    decimal.Decimal     `json:"basePrice"`
	StartLevel   *int                `json:"startLevel,omitempty"`
	EndLevel     *int                `json:"endLevel,omitempty"`
	Shortcuts    []string            `json:"shortcuts"`
	DisplayOrder int                 `json:"displayOrder"`
	Active       *bool               `json:"active,omitempty"`
}

// Draft накладывает строку на значения по умолчанию
func (r MethodRow) Draft(defaults pricing.MethodDraft) pricing.MethodDraft {
	d := defaults
	d.Name = r.Name
	d.GroupName = r.GroupName
	if r.PricingUnit != "" {
		d.PricingUnit = r.PricingUnit
	}
	d.BasePrice = r.BasePrice
	d.StartLevel = r.StartLevel
	d.EndLevel = r.EndLevel
	if r.Shortcuts != nil {
		d.Shortcuts = r.Shortcuts
	}
	d.DisplayOrder = r.DisplayOrder
	if r.Active != nil {
		d.Active = *r.Active
	}
	return d
}

func NewMethodRow(d pricing.MethodDraft) MethodRow {
	active := d.Active
	return MethodRow{
		Name:         d.Name,
		GroupName:    d.GroupName,
		PricingUnit:  d.PricingUnit,
		BasePrice:    d.BasePrice,
		StartLevel:   d.StartLevel,
		EndLevel:     d.EndLevel,
		Shortcuts:    d.Shortcuts,
		DisplayOrder: d.DisplayOrder,
		Active:       &active,
	}
}

type CreatePricingMethodRequest struct {
	ServiceID    uint                `json:"serviceId" binding:"required"`
	Name         string              `json:"name" binding:"required"`
	GroupName    string              `json:"groupName"`
	PricingUnit  pricing.PricingUnit `json:"pricingUnit" binding:"required"`
	BasePrice    decimal.Decimal     `json:"basePrice" binding:"decimal_gt0"`
	StartLevel   *int                `json:"startLevel"`
	EndLevel     *int                `json:"endLevel"`
	Shortcuts    []string            `json:"shortcuts"`
	DisplayOrder int                 `json:"displayOrder"`
	Active       *bool               `json:"active"`
}

func (r CreatePricingMethodRequest) Draft(defaults pricing.MethodDraft) pricing.MethodDraft {
	return MethodRow{
		Name:         r.Name,
		GroupName:    r.GroupName,
		PricingUnit:  r.PricingUnit,
		BasePrice:    r.BasePrice,
		StartLevel:   r.StartLevel,
		EndLevel:     r.EndLevel,
		Shortcuts:    r.Shortcuts,
		DisplayOrder: r.DisplayOrder,
		Active:       r.Active,
	}.Draft(defaults)
}

// UpdatePricingMethodRequest - отсутствующее поле не меняется
type UpdatePricingMethodRequest struct {
	Name         *string              `json:"name"`
	GroupName    *string              `json:"groupName"`
	PricingUnit  *pricing.PricingUnit `json:"pricingUnit"`
	BasePrice    *decimal.Decimal     `json:"basePrice" binding:"omitempty,decimal_gt0"`
	StartLevel   *int                 `json:"startLevel"`
	EndLevel     *int                 `json:"endLevel"`
	ClearLevels  bool                 `json:"clearLevels"`
	Shortcuts    *[]string            `json:"shortcuts"`
	DisplayOrder *int                 `json:"displayOrder"`
	Active       *bool                `json:"active"`
}

func (r UpdatePricingMethodRequest) Patch() pricing.MethodPatch {
	p := pricing.MethodPatch{
		Name:         r.Name,
		GroupName:    r.GroupName,
		PricingUnit:  r.PricingUnit,
		BasePrice:    r.BasePrice,
		StartLevel:   r.StartLevel,
		EndLevel:     r.EndLevel,
		ClearLevels:  r.ClearLevels,
		DisplayOrder: r.DisplayOrder,
		Active:       r.Active,
	}
	if r.Shortcuts != nil {
		p.Shortcuts = *r.Shortcuts
		p.SetShortcuts = true
	}
	return p
}
