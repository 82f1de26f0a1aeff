package pricing

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	maxNameLength  = 100
	maxEmojiLength = 32

	// колонки decimal(12,2) и decimal(12,4)
	basePriceScale     = 2
	modifierValueScale = 4
)

var (
	basePriceLimit     = decimal.New(1, 12-basePriceScale)
	modifierValueLimit = decimal.New(1, 12-modifierValueScale)
)

// ValidatePricingMethod проверяет черновик метода.
// siblings - уже сохраненные методы той же услуги без самого метода.
func ValidatePricingMethod(d MethodDraft, siblings []PricingMethod) []FieldError {
	var errs []FieldError
	d = d.Normalized()

	errs = append(errs, validateName(d.Name)...)

	if !d.PricingUnit.Valid() {
		errs = append(errs, FieldError{
			Field:   "pricingUnit",
			Code:    CodeInvalid,
			Message: fmt.Sprintf("Unknown pricing unit %q", d.PricingUnit),
		})
	}

	if !d.BasePrice.IsPositive() {
		errs = append(errs, FieldError{Field: "basePrice", Code: CodeInvalid, Message: "Base price must be greater than 0"})
	} else if fe, ok := checkColumn("basePrice", "Base price", d.BasePrice, basePriceScale, basePriceLimit); !ok {
		errs = append(errs, fe)
	}

	if d.PricingUnit == UnitPerLevel {
		errs = append(errs, validateLevels(d.StartLevel, d.EndLevel)...)
	}

	errs = append(errs, selectorConflicts(d, siblingSelectors(siblings))...)

	return errs
}

// selectorOwner - метод, которому принадлежит имя или сокращение
type selectorOwner struct {
	name       string
	isShortcut bool
}

// siblingSelectors собирает имена и сокращения методов услуги в одно пространство ключей:
// любой ключ должен однозначно выбирать один метод.
func siblingSelectors(siblings []PricingMethod) map[string]selectorOwner {
	taken := make(map[string]selectorOwner, len(siblings))
	for _, s := range siblings {
		if key := NormalizeName(s.Name); key != "" {
			taken[key] = selectorOwner{name: s.Name}
		}
	}
	for _, s := range siblings {
		for _, sc := range s.Shortcuts {
			key := NormalizeName(sc)
			if _, ok := taken[key]; key != "" && !ok {
				taken[key] = selectorOwner{name: s.Name, isShortcut: true}
			}
		}
	}
	return taken
}

func selectorConflicts(d MethodDraft, taken map[string]selectorOwner) []FieldError {
	var errs []FieldError
	nameKey := NormalizeName(d.Name)
	if owner, ok := taken[nameKey]; nameKey != "" && ok {
		msg := fmt.Sprintf("A pricing method named %q already exists for this service", owner.name)
		if owner.isShortcut {
			msg = fmt.Sprintf("Name %q is already a shortcut of pricing method %q", d.Name, owner.name)
		}
		errs = append(errs, FieldError{Field: "name", Code: CodeConflict, Message: msg})
	}
	for _, sc := range d.Shortcuts {
		key := NormalizeName(sc)
		if key == nameKey {
			continue
		}
		if owner, ok := taken[key]; ok {
			errs = append(errs, FieldError{
				Field:   "shortcuts",
				Code:    CodeConflict,
				Message: fmt.Sprintf("Shortcut %q is already used by pricing method %q", sc, owner.name),
			})
		}
	}
	return errs
}

// checkColumn: не больше scale знаков после запятой и |v| < limit
func checkColumn(field, label string, v decimal.Decimal, scale int32, limit decimal.Decimal) (FieldError, bool) {
	if !v.Equal(v.Truncate(scale)) {
		return FieldError{Field: field, Code: CodeInvalid, Message: fmt.Sprintf("%s must have at most %d decimal places", label, scale)}, false
	}
	if !v.Abs().LessThan(limit) {
		return FieldError{Field: field, Code: CodeInvalid, Message: fmt.Sprintf("%s must be less than %s in absolute value", label, limit)}, false
	}
	return FieldError{}, true
}

func validateLevels(start, end *int) []FieldError {
	var errs []FieldError
	if start != nil && *start < 1 {
		errs = append(errs, FieldError{Field: "startLevel", Code: CodeInvalid, Message: "Start level must be at least 1"})
	}
	if end != nil && *end < 1 {
		errs = append(errs, FieldError{Field: "endLevel", Code: CodeInvalid, Message: "End level must be at least 1"})
	}
	if start != nil && end != nil && *start >= *end {
		errs = append(errs, FieldError{Field: "endLevel", Code: CodeInvalid, Message: "End level must be greater than start level"})
	}
	return errs
}

func validateName(name string) []FieldError {
	if strings.TrimSpace(name) == "" {
		return []FieldError{{Field: "name", Code: CodeRequired, Message: "Name is required"}}
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return []FieldError{{Field: "name", Code: CodeInvalid, Message: fmt.Sprintf("Name must be at most %d characters", maxNameLength)}}
	}
	return nil
}

// ValidateModifier проверяет имя, значение, типы и форму условия
func ValidateModifier(d ModifierDraft) []FieldError {
	var errs []FieldError
	d = d.Normalized()

	errs = append(errs, validateName(d.Name)...)

	if !d.Type.Valid() {
		errs = append(errs, FieldError{
			Field:   "modifierType",
			Code:    CodeInvalid,
			Message: fmt.Sprintf("Unknown modifier type %q", d.Type),
		})
	}
	if d.Value == nil {
		errs = append(errs, FieldError{Field: "value", Code: CodeRequired, Message: "Value is required"})
	} else if fe, ok := checkColumn("value", "Value", *d.Value, modifierValueScale, modifierValueLimit); !ok {
		errs = append(errs, fe)
	}
	if !d.DisplayType.Valid() {
		errs = append(errs, FieldError{
			Field:   "displayType",
			Code:    CodeInvalid,
			Message: fmt.Sprintf("Unknown display type %q", d.DisplayType),
		})
	}

	errs = append(errs, validateCondition(d.Condition)...)
	return errs
}

func validateCondition(c Condition) []FieldError {
	switch c := c.(type) {
	case nil:
		return nil
	case PriceRange:
		if c.Min.GreaterThan(c.Max) {
			return []FieldError{{Field: "condition.min", Code: CodeInvalid, Message: "Minimum price must not exceed maximum price"}}
		}
		return nil
	case QuantityRange:
		var errs []FieldError
		if c.Min.IsNegative() {
			errs = append(errs, FieldError{Field: "condition.min", Code: CodeInvalid, Message: "Minimum quantity must not be negative"})
		}
		if c.Min.GreaterThan(c.Max) {
			errs = append(errs, FieldError{Field: "condition.min", Code: CodeInvalid, Message: "Minimum quantity must not exceed maximum quantity"})
		}
		return errs
	case CustomField:
		if strings.TrimSpace(c.Field) == "" {
			return []FieldError{{Field: "condition.field", Code: CodeRequired, Message: "Custom field name is required"}}
		}
		return nil
	default:
		return []FieldError{{Field: "condition", Code: CodeInvalid, Message: fmt.Sprintf("Unknown condition type %q", c.Kind())}}
	}
}

// ConditionFieldError - ошибка разбора условия в виде ошибки поля формы
func ConditionFieldError(err error) FieldError {
	return FieldError{Field: "condition", Code: CodeInvalid, Message: err.Error()}
}

// ValidateServiceDraft проверяет черновик услуги.
// siblings - уже сохраненные услуги; имя уникально в пределах категории.
func ValidateServiceDraft(d ServiceDraft, siblings []Service) []FieldError {
	var errs []FieldError
	name := strings.TrimSpace(d.Name)

	errs = append(errs, validateName(name)...)

	if d.CategoryID == 0 {
		errs = append(errs, FieldError{Field: "categoryId", Code: CodeRequired, Message: "Category is required"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Emoji)) > maxEmojiLength {
		errs = append(errs, FieldError{Field: "emoji", Code: CodeInvalid, Message: fmt.Sprintf("Emoji must be at most %d characters", maxEmojiLength)})
	}

	if name != "" {
		key := NormalizeName(name)
		for _, s := range siblings {
			if s.CategoryID == d.CategoryID && NormalizeName(s.Name) == key {
				errs = append(errs, FieldError{
					Field:   "name",
					Code:    CodeConflict,
					Message: fmt.Sprintf("A service named %q already exists in this category", s.Name),
				})
				break
			}
		}
	}

	return errs
}

// ValidateMethodRows применяет ValidatePricingMethod к каждой строке пакета и
// дополнительно ищет пересечения имен и сокращений внутри самого пакета.
// Первая строка с ключом остается валидной, повторы получают конфликт.
func ValidateMethodRows(rows []MethodDraft, persisted []PricingMethod) [][]FieldError {
	out := make([][]FieldError, len(rows))
	seen := make(map[string]int, len(rows))
	for i, row := range rows {
		errs := ValidatePricingMethod(row, persisted)
		row = row.Normalized()

		nameKey := NormalizeName(row.Name)
		if nameKey != "" {
			if first, ok := seen[nameKey]; ok {
				errs = append(errs, batchDuplicate(first))
			}
		}
		for _, sc := range row.Shortcuts {
			key := NormalizeName(sc)
			if key == nameKey {
				continue
			}
			if first, ok := seen[key]; ok {
				errs = append(errs, FieldError{
					Field:   "shortcuts",
					Code:    CodeConflict,
					Message: fmt.Sprintf("Shortcut %q duplicates a name or shortcut in batch (row %d)", sc, first+1),
				})
			}
		}

		if nameKey != "" {
			if _, ok := seen[nameKey]; !ok {
				seen[nameKey] = i
			}
		}
		for _, sc := range row.Shortcuts {
			if key := NormalizeName(sc); key != "" {
				if _, ok := seen[key]; !ok {
					seen[key] = i
				}
			}
		}
		out[i] = errs
	}
	return out
}

// ValidateServiceRows - то же для услуг; ключ дубля - категория и имя
func ValidateServiceRows(rows []ServiceDraft, persisted []Service) [][]FieldError {
	out := make([][]FieldError, len(rows))
	seen := make(map[string]int, len(rows))
	for i, row := range rows {
		errs := ValidateServiceDraft(row, persisted)
		if name := NormalizeName(row.Name); name != "" {
			key := fmt.Sprintf("%d/%s", row.CategoryID, name)
			if first, ok := seen[key]; ok {
				errs = append(errs, batchDuplicate(first))
			} else {
				seen[key] = i
			}
		}
		out[i] = errs
	}
	return out
}

func batchDuplicate(firstRow int) FieldError {
	return FieldError{
		Field:   "name",
		Code:    CodeConflict,
		Message: fmt.Sprintf("Duplicate name in batch (same as row %d)", firstRow+1),
	}
}
