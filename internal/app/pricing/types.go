// Package pricing описывает методы ценообразования услуг, модификаторы цены,
// общий валидатор конфигурации и расчет итоговой цены.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

type PricingUnit string

const (
	UnitFixed    PricingUnit = "FIXED"
	UnitPerLevel PricingUnit = "PER_LEVEL"
	UnitPerKill  PricingUnit = "PER_KILL"
	UnitPerItem  PricingUnit = "PER_ITEM"
	UnitPerHour  PricingUnit = "PER_HOUR"
)

func (u PricingUnit) Valid() bool {
	switch u {
	case UnitFixed, UnitPerLevel, UnitPerKill, UnitPerItem, UnitPerHour:
		return true
	}
	return false
}

type ModifierType string

const (
	ModifierPercentage ModifierType = "PERCENTAGE"
	ModifierFixed      ModifierType = "FIXED"
)

func (t ModifierType) Valid() bool {
	return t == ModifierPercentage || t == ModifierFixed
}

// DisplayType - только подсказка для отображения, на сумму не влияет
type DisplayType string

const (
	DisplayNormal   DisplayType = "NORMAL"
	DisplayUpcharge DisplayType = "UPCHARGE"
	DisplayDiscount DisplayType = "DISCOUNT"
	DisplayNote     DisplayType = "NOTE"
	DisplayWarning  DisplayType = "WARNING"
)

func (d DisplayType) Valid() bool {
	switch d {
	case DisplayNormal, DisplayUpcharge, DisplayDiscount, DisplayNote, DisplayWarning:
		return true
	}
	return false
}

// Service - услуга каталога. Полностью управляется CRUD-слоем,
// здесь нужна только для пакетного создания.
type Service struct {
	ID          uint
	CategoryID  uint
	Name        string
	Emoji       string
	Description string
	IconURL     string
	Active      bool
}

type ServiceDraft struct {
	CategoryID  uint
	Name        string
	Emoji       string
	Description string
	Active      bool
}

func (d ServiceDraft) ToService() Service {
	return Service{
		CategoryID:  d.CategoryID,
		Name:        strings.TrimSpace(d.Name),
		Emoji:       strings.TrimSpace(d.Emoji),
		Description: d.Description,
		Active:      d.Active,
	}
}

// PricingMethod - базовое правило цены услуги
type PricingMethod struct {
	ID           uint
	ServiceID    uint
	Name         string
	GroupName    string
	PricingUnit  PricingUnit
	BasePrice    decimal.Decimal
	StartLevel   *int
	EndLevel     *int
	Shortcuts    []string
	DisplayOrder int
	Active       bool
}

type MethodDraft struct {
	Name         string
	GroupName    string
	PricingUnit  PricingUnit
	BasePrice    decimal.Decimal
	StartLevel   *int
	EndLevel     *int
	Shortcuts    []string
	DisplayOrder int
	Active       bool
}

// Normalized обрезает пробелы и чистит список сокращений
func (d MethodDraft) Normalized() MethodDraft {
	d.Name = strings.TrimSpace(d.Name)
	d.GroupName = strings.TrimSpace(d.GroupName)
	d.Shortcuts = NormalizeShortcuts(d.Shortcuts)
	return d
}

func (d MethodDraft) ToMethod(serviceID uint) PricingMethod {
	d = d.Normalized()
	return PricingMethod{
		ServiceID:    serviceID,
		Name:         d.Name,
		GroupName:    d.GroupName,
		PricingUnit:  d.PricingUnit,
		BasePrice:    d.BasePrice,
		StartLevel:   d.StartLevel,
		EndLevel:     d.EndLevel,
		Shortcuts:    d.Shortcuts,
		DisplayOrder: d.DisplayOrder,
		Active:       d.Active,
	}
}

func (m PricingMethod) Draft() MethodDraft {
	return MethodDraft{
		Name:         m.Name,
		GroupName:    m.GroupName,
		PricingUnit:  m.PricingUnit,
		BasePrice:    m.BasePrice,
		StartLevel:   m.StartLevel,
		EndLevel:     m.EndLevel,
		Shortcuts:    m.Shortcuts,
		DisplayOrder: m.DisplayOrder,
		Active:       m.Active,
	}
}

// MethodPatch - частичное изменение метода; nil означает "не менять"
type MethodPatch struct {
	Name         *string
	GroupName    *string
	PricingUnit  *PricingUnit
	BasePrice    *decimal.Decimal
	StartLevel   *int
	EndLevel     *int
	ClearLevels  bool
	Shortcuts    []string
	SetShortcuts bool
	DisplayOrder *int
	Active       *bool
}

func (p MethodPatch) Apply(m PricingMethod) PricingMethod {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.GroupName != nil {
		m.GroupName = *p.GroupName
	}
	if p.PricingUnit != nil {
		m.PricingUnit = *p.PricingUnit
	}
	if p.BasePrice != nil {
		m.BasePrice = *p.BasePrice
	}
	if p.ClearLevels {
		m.StartLevel, m.EndLevel = nil, nil
	}
	if p.StartLevel != nil {
		m.StartLevel = p.StartLevel
	}
	if p.EndLevel != nil {
		m.EndLevel = p.EndLevel
	}
	if p.SetShortcuts {
		m.Shortcuts = p.Shortcuts
	}
	if p.DisplayOrder != nil {
		m.DisplayOrder = *p.DisplayOrder
	}
	if p.Active != nil {
		m.Active = *p.Active
	}
	return m
}

// Modifier - условная корректировка цены, действует на все методы услуги
type Modifier struct {
	// ID выдается хранилищем по возрастанию и задает порядок создания
	ID          uint
	ServiceID   uint
	Name        string
	Type        ModifierType
	Value       decimal.Decimal
	DisplayType DisplayType
	Priority    int
	Condition   Condition
	Active      bool
}

type ModifierDraft struct {
	Name        string
	Type        ModifierType
	Value       *decimal.Decimal
	DisplayType DisplayType
	Priority    int
	Condition   Condition
	Active      bool
}

func (d ModifierDraft) Normalized() ModifierDraft {
	d.Name = strings.TrimSpace(d.Name)
	if d.DisplayType == "" {
		d.DisplayType = DisplayNormal
	}
	return d
}

func (m Modifier) Draft() ModifierDraft {
	value := m.Value
	return ModifierDraft{
		Name:        m.Name,
		Type:        m.Type,
		Value:       &value,
		DisplayType: m.DisplayType,
		Priority:    m.Priority,
		Condition:   m.Condition,
		Active:      m.Active,
	}
}

type ModifierPatch struct {
	Name           *string
	Type           *ModifierType
	Value          *decimal.Decimal
	DisplayType    *DisplayType
	Priority       *int
	Condition      Condition
	ClearCondition bool
	Active         *bool
}

func (p ModifierPatch) Apply(m Modifier) Modifier {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Value != nil {
		m.Value = *p.Value
	}
	if p.DisplayType != nil {
		m.DisplayType = *p.DisplayType
	}
	if p.Priority != nil {
		m.Priority = *p.Priority
	}
	if p.ClearCondition {
		m.Condition = nil
	}
	if p.Condition != nil {
		m.Condition = p.Condition
	}
	if p.Active != nil {
		m.Active = *p.Active
	}
	return m
}

// NormalizeName - ключ для поиска дублей: без пробелов по краям и в нижнем регистре
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeShortcuts обрезает пробелы, выкидывает пустые и дубли (без учета регистра).
// Сохраняется первое написание.
func NormalizeShortcuts(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
