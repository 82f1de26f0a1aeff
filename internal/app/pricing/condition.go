package pricing

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type ConditionKind string

const (
	ConditionPriceRange    ConditionKind = "price_range"
	ConditionQuantityRange ConditionKind = "quantity_range"
	ConditionCustomField   ConditionKind = "custom_field"
)

// Condition - закрытый набор условий модификатора.
// nil означает, что модификатор применяется всегда.
type Condition interface {
	Kind() ConditionKind
	sealed()
}

// PriceRange сравнивает текущую (уже скорректированную) цену с [Min, Max] включительно
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// QuantityRange сравнивает количество из контекста расчета с [Min, Max] включительно
type QuantityRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// CustomField требует точного совпадения значения поля из контекста
type CustomField struct {
	Field string
	Value string
}

func (PriceRange) Kind() ConditionKind    { return ConditionPriceRange }
func (QuantityRange) Kind() ConditionKind { return ConditionQuantityRange }
func (CustomField) Kind() ConditionKind   { return ConditionCustomField }

func (PriceRange) sealed()    {}
func (QuantityRange) sealed() {}
func (CustomField) sealed()   {}

// Matches проверяет условие для текущей цены и контекста
func Matches(c Condition, running decimal.Decimal, qc QuoteContext) bool {
	switch c := c.(type) {
	case nil:
		return true
	case PriceRange:
		return inRange(running, c.Min, c.Max)
	case QuantityRange:
		return inRange(qc.Quantity, c.Min, c.Max)
	case CustomField:
		v, ok := qc.CustomFields[c.Field]
		return ok && v == c.Value
	default:
		return false
	}
}

func inRange(v, min, max decimal.Decimal) bool {
	return v.GreaterThanOrEqual(min) && v.LessThanOrEqual(max)
}

// conditionWire - формат условия в JSON (API и колонка jsonb)
type conditionWire struct {
	Type  string       `json:"type"`
	Min   *json.Number `json:"min,omitempty"`
	Max   *json.Number `json:"max,omitempty"`
	Field *string      `json:"field,omitempty"`
	Value *string      `json:"value,omitempty"`
}

// DecodeCondition разбирает условие из JSON. Пустое тело и null дают nil.
// Неизвестный type - ошибка ErrUnknownConditionType.
func DecodeCondition(raw []byte) (Condition, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var w conditionWire
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("malformed condition: %w", err)
	}

	switch ConditionKind(w.Type) {
	case ConditionPriceRange, ConditionQuantityRange:
		min, err := wireNumber("min", w.Min)
		if err != nil {
			return nil, err
		}
		max, err := wireNumber("max", w.Max)
		if err != nil {
			return nil, err
		}
		if ConditionKind(w.Type) == ConditionPriceRange {
			return PriceRange{Min: min, Max: max}, nil
		}
		return QuantityRange{Min: min, Max: max}, nil
	case ConditionCustomField:
		if w.Field == nil {
			return nil, fmt.Errorf("custom_field condition: field is required")
		}
		if w.Value == nil {
			return nil, fmt.Errorf("custom_field condition: value is required")
		}
		return CustomField{Field: *w.Field, Value: *w.Value}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownConditionType, w.Type)
	}
}

func wireNumber(name string, n *json.Number) (decimal.Decimal, error) {
	if n == nil {
		return decimal.Decimal{}, fmt.Errorf("range condition: %s is required", name)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("range condition: %s is not a number: %w", name, err)
	}
	return d, nil
}

// EncodeCondition - обратное к DecodeCondition; nil кодируется как null
func EncodeCondition(c Condition) ([]byte, error) {
	var w conditionWire
	switch c := c.(type) {
	case nil:
		return []byte("null"), nil
	case PriceRange:
		w = rangeWire(ConditionPriceRange, c.Min, c.Max)
	case QuantityRange:
		w = rangeWire(ConditionQuantityRange, c.Min, c.Max)
	case CustomField:
		field, value := c.Field, c.Value
		w = conditionWire{Type: string(ConditionCustomField), Field: &field, Value: &value}
	default:
		return nil, fmt.Errorf("%w %T", ErrUnknownConditionType, c)
	}
	return json.Marshal(w)
}

func rangeWire(kind ConditionKind, min, max decimal.Decimal) conditionWire {
	lo, hi := json.Number(min.String()), json.Number(max.String())
	return conditionWire{Type: string(kind), Min: &lo, Max: &hi}
}
