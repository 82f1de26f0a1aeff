package pricing

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// QuoteContext - входные данные расчета.
// Quantity может быть дробным (например, часы для PER_HOUR).
type QuoteContext struct {
	Quantity      decimal.Decimal
	LevelsSpanned int
	CustomFields  map[string]string
}

// BreakdownLine - вклад одного сработавшего модификатора
type BreakdownLine struct {
	ModifierID   uint
	ModifierName string
	DisplayType  DisplayType
	Delta        decimal.Decimal
	// Цена после применения этого модификатора
	RunningPrice decimal.Decimal
}

type Quote struct {
	MethodID   uint
	BasePrice  decimal.Decimal
	FinalPrice decimal.Decimal
	Breakdown  []BreakdownLine
}

// Applicable оставляет активные модификаторы и сортирует их по приоритету.
// При равном приоритете порядок - по порядку создания (ID).
func Applicable(mods []Modifier) []Modifier {
	out := make([]Modifier, 0, len(mods))
	for _, m := range mods {
		if m.Active {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// BasePriceForQuote считает цену метода до модификаторов
func BasePriceForQuote(m PricingMethod, qc QuoteContext) decimal.Decimal {
	switch m.PricingUnit {
	case UnitFixed:
		return m.BasePrice
	case UnitPerKill, UnitPerItem, UnitPerHour:
		return m.BasePrice.Mul(qc.Quantity)
	case UnitPerLevel:
		return m.BasePrice.Mul(levelSpan(m, qc))
	default:
		return m.BasePrice
	}
}

// levelSpan: явный диапазон из запроса, иначе диапазон метода, иначе количество
func levelSpan(m PricingMethod, qc QuoteContext) decimal.Decimal {
	if qc.LevelsSpanned > 0 {
		return decimal.NewFromInt(int64(qc.LevelsSpanned))
	}
	if m.StartLevel != nil && m.EndLevel != nil {
		return decimal.NewFromInt(int64(*m.EndLevel - *m.StartLevel))
	}
	return qc.Quantity
}

// Compute применяет модификаторы к базовой цене метода.
// Условие price_range проверяется по текущей цене после предыдущих модификаторов.
// Итог не ограничивается снизу: цепочка скидок может дать отрицательную цену.
func Compute(m PricingMethod, mods []Modifier, qc QuoteContext) Quote {
	base := BasePriceForQuote(m, qc)
	running := base
	breakdown := make([]BreakdownLine, 0, len(mods))

	for _, mod := range Applicable(mods) {
		if !Matches(mod.Condition, running, qc) {
			continue
		}

		var delta decimal.Decimal
		switch mod.Type {
		case ModifierPercentage:
			delta = running.Mul(mod.Value).Div(hundred)
		case ModifierFixed:
			delta = mod.Value
		default:
			continue
		}

		running = running.Add(delta)
		breakdown = append(breakdown, BreakdownLine{
			ModifierID:   mod.ID,
			ModifierName: mod.Name,
			DisplayType:  mod.DisplayType,
			Delta:        delta,
			RunningPrice: running,
		})
	}

	return Quote{
		MethodID:   m.ID,
		BasePrice:  base,
		FinalPrice: running,
		Breakdown:  breakdown,
	}
}
