package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"marketplace-admin/internal/app/ds"
	"marketplace-admin/internal/app/pricing"
)

func toPricingMethod(m ds.PricingMethod) (pricing.PricingMethod, error) {
	shortcuts := []string{}
	if len(m.Shortcuts) > 0 {
		if err := json.Unmarshal(m.Shortcuts, &shortcuts); err != nil {
			return pricing.PricingMethod{}, fmt.Errorf("pricing method %d: bad shortcuts: %w", m.ID, err)
		}
	}
	return pricing.PricingMethod{
		ID:           m.ID,
		ServiceID:    m.ServiceID,
		Name:         m.Name,
		GroupName:    m.GroupName,
		PricingUnit:  pricing.PricingUnit(m.PricingUnit),
		BasePrice:    m.BasePrice,
		StartLevel:   m.StartLevel,
		EndLevel:     m.EndLevel,
		Shortcuts:    shortcuts,
		DisplayOrder: m.DisplayOrder,
		Active:       m.IsActive,
	}, nil
}

func shortcutsJSON(shortcuts []string) (datatypes.JSON, error) {
	if shortcuts == nil {
		shortcuts = []string{}
	}
	raw, err := json.Marshal(shortcuts)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (r *Repository) CreateMethod(ctx context.Context, method pricing.PricingMethod) (pricing.PricingMethod, error) {
	shortcuts, err := shortcutsJSON(method.Shortcuts)
	if err != nil {
		return pricing.PricingMethod{}, err
	}
	row := ds.PricingMethod{
		ServiceID:    method.ServiceID,
		Name:         method.Name,
		GroupName:    method.GroupName,
		PricingUnit:  string(method.PricingUnit),
		BasePrice:    method.BasePrice,
		StartLevel:   method.StartLevel,
		EndLevel:     method.EndLevel,
		Shortcuts:    shortcuts,
		DisplayOrder: method.DisplayOrder,
		IsActive:     method.Active,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return pricing.PricingMethod{}, err
	}
	return toPricingMethod(row)
}

// UpdateMethod перезаписывает все изменяемые поля; created_at не трогается
func (r *Repository) UpdateMethod(ctx context.Context, method pricing.PricingMethod) (pricing.PricingMethod, error) {
	shortcuts, err := shortcutsJSON(method.Shortcuts)
	if err != nil {
		return pricing.PricingMethod{}, err
	}

	res := r.db.WithContext(ctx).Model(&ds.PricingMethod{}).Where("id = ?", method.ID).Updates(map[string]interface{}{
		"name":          method.Name,
		"group_name":    method.GroupName,
		"pricing_unit":  string(method.PricingUnit),
		"base_price":    method.BasePrice,
		"start_level":   method.StartLevel,
		"end_level":     method.EndLevel,
		"shortcuts":     shortcuts,
		"display_order": method.DisplayOrder,
		"is_active":     method.Active,
	})
	if res.Error != nil {
		return pricing.PricingMethod{}, res.Error
	}
	if res.RowsAffected == 0 {
		return pricing.PricingMethod{}, notFound(gorm.ErrRecordNotFound, "pricing method", method.ID)
	}
	return r.GetMethod(ctx, method.ID)
}

func (r *Repository) GetMethod(ctx context.Context, id uint) (pricing.PricingMethod, error) {
	var row ds.PricingMethod
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return pricing.PricingMethod{}, notFound(err, "pricing method", id)
	}
	return toPricingMethod(row)
}

func (r *Repository) ListMethods(ctx context.Context, serviceID uint) ([]pricing.PricingMethod, error) {
	var rows []ds.PricingMethod
	err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("display_order, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	methods := make([]pricing.PricingMethod, 0, len(rows))
	for _, row := range rows {
		m, err := toPricingMethod(row)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}
