package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perLevelDraft(start, end int) MethodDraft {
	return MethodDraft{
		Name:        "Leveling",
		PricingUnit: UnitPerLevel,
		BasePrice:   dec("1.5"),
		StartLevel:  intPtr(start),
		EndLevel:    intPtr(end),
		Active:      true,
	}
}

func hasField(errs []FieldError, field, code string) bool {
	for _, e := range errs {
		if e.Field == field && e.Code == code {
			return true
		}
	}
	return false
}

func TestValidatePricingMethodLevels(t *testing.T) {
	errs := ValidatePricingMethod(perLevelDraft(40, 30), nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "endLevel", errs[0].Field)
	assert.Equal(t, "End level must be greater than start level", errs[0].Message)

	assert.Empty(t, ValidatePricingMethod(perLevelDraft(40, 50), nil))
	assert.True(t, hasField(ValidatePricingMethod(perLevelDraft(40, 40), nil), "endLevel", CodeInvalid))
	assert.True(t, hasField(ValidatePricingMethod(perLevelDraft(0, 5), nil), "startLevel", CodeInvalid))
}

func TestValidatePricingMethodIgnoresLevelsForOtherUnits(t *testing.T) {
	d := perLevelDraft(40, 30)
	d.PricingUnit = UnitFixed
	assert.Empty(t, ValidatePricingMethod(d, nil))
}

func TestValidatePricingMethodFields(t *testing.T) {
	errs := ValidatePricingMethod(MethodDraft{Name: "   ", PricingUnit: "PER_YEAR", BasePrice: decimal.Zero}, nil)

	assert.True(t, hasField(errs, "name", CodeRequired))
	assert.True(t, hasField(errs, "pricingUnit", CodeInvalid))
	assert.True(t, hasField(errs, "basePrice", CodeInvalid))
}

func TestValidatePricingMethodDuplicateName(t *testing.T) {
	siblings := []PricingMethod{{ID: 1, ServiceID: 1, Name: "Express"}}
	d := MethodDraft{Name: "  express ", PricingUnit: UnitFixed, BasePrice: dec("10")}

	errs := ValidatePricingMethod(d, siblings)

	require.Len(t, errs, 1)
	assert.Equal(t, CodeConflict, errs[0].Code)

	var ce *ConflictError
	assert.True(t, errors.As(FieldsError(errs), &ce))
}

func TestValidatePricingMethodSelectorCollisions(t *testing.T) {
	siblings := []PricingMethod{{ID: 1, ServiceID: 1, Name: "Express", Shortcuts: []string{"fast", "exp"}}}

	tests := []struct {
		name      string
		draftName string
		shortcuts []string
		field     string
	}{
		{"name equals sibling shortcut", "FAST", nil, "name"},
		{"shortcut equals sibling name", "Turbo", []string{" express "}, "shortcuts"},
		{"shortcut equals sibling shortcut", "Turbo", []string{"t", "EXP"}, "shortcuts"},
		{"shortcut equals own name", "Turbo", []string{"turbo"}, ""},
		{"disjoint keys", "Turbo", []string{"t"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := MethodDraft{Name: tt.draftName, PricingUnit: UnitFixed, BasePrice: dec("10"), Shortcuts: tt.shortcuts}
			errs := ValidatePricingMethod(d, siblings)
			if tt.field == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, CodeConflict, errs[0].Code)
			assert.Contains(t, errs[0].Message, "Express")
		})
	}
}

func TestValidatePricingMethodBasePriceFitsColumn(t *testing.T) {
	tests := []struct {
		price string
		valid bool
	}{
		{"0.01", true},
		{"1.50", true},
		{"1.500", true},
		{"9999999999.99", true},
		{"0.004", false},
		{"1.505", false},
		{"10000000000", false},
		{"123456789012.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			errs := ValidatePricingMethod(MethodDraft{Name: "Normal", PricingUnit: UnitFixed, BasePrice: dec(tt.price)}, nil)
			if tt.valid {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "basePrice", errs[0].Field)
			assert.Equal(t, CodeInvalid, errs[0].Code)
		})
	}
}

func TestValidateModifierValueFitsColumn(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"-5", true},
		{"12.3456", true},
		{"-99999999.9999", true},
		{"12.34567", false},
		{"0.00001", false},
		{"100000000", false},
		{"-100000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			v := dec(tt.value)
			errs := ValidateModifier(ModifierDraft{Name: "Promo", Type: ModifierFixed, Value: &v})
			if tt.valid {
				assert.Empty(t, errs)
				return
			}
			assert.True(t, hasField(errs, "value", CodeInvalid), "got %v", errs)
		})
	}
}

func TestFieldsErrorMixedIsValidation(t *testing.T) {
	err := FieldsError([]FieldError{
		{Field: "name", Code: CodeConflict},
		{Field: "basePrice", Code: CodeInvalid},
	})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	fields, ok := FieldsOf(err)
	assert.True(t, ok)
	assert.Len(t, fields, 2)
	assert.NoError(t, FieldsError(nil))
}

func TestValidateModifier(t *testing.T) {
	v := dec("10")
	ok := ModifierDraft{Name: "Express", Type: ModifierPercentage, Value: &v}
	assert.Empty(t, ValidateModifier(ok))

	errs := ValidateModifier(ModifierDraft{Name: "", Type: "RATIO", DisplayType: "LOUD"})
	assert.True(t, hasField(errs, "name", CodeRequired))
	assert.True(t, hasField(errs, "modifierType", CodeInvalid))
	assert.True(t, hasField(errs, "value", CodeRequired))
	assert.True(t, hasField(errs, "displayType", CodeInvalid))
}

func TestValidateModifierCondition(t *testing.T) {
	v := dec("-5")
	base := ModifierDraft{Name: "Cond", Type: ModifierFixed, Value: &v}

	d := base
	d.Condition = PriceRange{Min: dec("100"), Max: dec("50")}
	assert.True(t, hasField(ValidateModifier(d), "condition.min", CodeInvalid))

	d.Condition = QuantityRange{Min: dec("-1"), Max: dec("5")}
	assert.True(t, hasField(ValidateModifier(d), "condition.min", CodeInvalid))

	d.Condition = CustomField{Field: " ", Value: "x"}
	assert.True(t, hasField(ValidateModifier(d), "condition.field", CodeRequired))

	d.Condition = QuantityRange{Min: dec("0"), Max: dec("0")}
	assert.Empty(t, ValidateModifier(d))
}

func TestValidateServiceDraft(t *testing.T) {
	siblings := []Service{{ID: 1, CategoryID: 2, Name: "Raid carry"}}

	errs := ValidateServiceDraft(ServiceDraft{CategoryID: 2, Name: "raid CARRY"}, siblings)
	require.Len(t, errs, 1)
	assert.Equal(t, CodeConflict, errs[0].Code)

	assert.Empty(t, ValidateServiceDraft(ServiceDraft{CategoryID: 3, Name: "Raid carry"}, siblings))

	errs = ValidateServiceDraft(ServiceDraft{}, nil)
	assert.True(t, hasField(errs, "name", CodeRequired))
	assert.True(t, hasField(errs, "categoryId", CodeRequired))
}

func TestValidateMethodRowsFlagsBatchDuplicates(t *testing.T) {
	rows := []MethodDraft{
		{Name: "Express", PricingUnit: UnitFixed, BasePrice: dec("10")},
		{Name: "Normal", PricingUnit: UnitFixed, BasePrice: dec("5")},
		{Name: "EXPRESS", PricingUnit: UnitFixed, BasePrice: dec("12")},
		{Name: "Existing", PricingUnit: UnitFixed, BasePrice: dec("1")},
	}
	persisted := []PricingMethod{{ID: 9, Name: "existing"}}

	out := ValidateMethodRows(rows, persisted)

	require.Len(t, out, 4)
	assert.Empty(t, out[0])
	assert.Empty(t, out[1])
	require.Len(t, out[2], 1)
	assert.Equal(t, "Duplicate name in batch (same as row 1)", out[2][0].Message)
	assert.True(t, hasField(out[3], "name", CodeConflict))
}

func TestValidateMethodRowsShortcutsShareKeySpace(t *testing.T) {
	rows := []MethodDraft{
		{Name: "Express", PricingUnit: UnitFixed, BasePrice: dec("10"), Shortcuts: []string{"fast"}},
		{Name: "Fast", PricingUnit: UnitFixed, BasePrice: dec("5")},
		{Name: "Turbo", PricingUnit: UnitFixed, BasePrice: dec("7"), Shortcuts: []string{"EXPRESS"}},
		{Name: "Slow", PricingUnit: UnitFixed, BasePrice: dec("3"), Shortcuts: []string{"slow", "s"}},
		{Name: "Old", PricingUnit: UnitFixed, BasePrice: dec("3"), Shortcuts: []string{"legacy"}},
	}
	persisted := []PricingMethod{{ID: 9, Name: "Legacy"}}

	out := ValidateMethodRows(rows, persisted)

	require.Len(t, out, 5)
	assert.Empty(t, out[0])
	require.Len(t, out[1], 1)
	assert.Equal(t, "Duplicate name in batch (same as row 1)", out[1][0].Message)
	require.Len(t, out[2], 1)
	assert.Equal(t, "shortcuts", out[2][0].Field)
	assert.Contains(t, out[2][0].Message, "row 1")
	assert.Empty(t, out[3])
	assert.True(t, hasField(out[4], "shortcuts", CodeConflict))
}

func TestValidateServiceRowsKeyIncludesCategory(t *testing.T) {
	rows := []ServiceDraft{
		{CategoryID: 1, Name: "Boost"},
		{CategoryID: 2, Name: "Boost"},
		{CategoryID: 1, Name: "boost"},
	}

	out := ValidateServiceRows(rows, nil)

	assert.Empty(t, out[0])
	assert.Empty(t, out[1])
	assert.True(t, hasField(out[2], "name", CodeConflict))
}

func TestNormalizeShortcuts(t *testing.T) {
	got := NormalizeShortcuts([]string{" exp ", "", "EXP", "fast"})
	assert.Equal(t, []string{"exp", "fast"}, got)
}
