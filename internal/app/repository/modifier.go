package repository

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"marketplace-admin/internal/app/ds"
	"marketplace-admin/internal/app/pricing"
)

func toModifier(m ds.ServiceModifier) (pricing.Modifier, error) {
	cond, err := pricing.DecodeCondition(m.Condition)
	if err != nil {
		return pricing.Modifier{}, fmt.Errorf("modifier %d: %w", m.ID, err)
	}
	return pricing.Modifier{
		ID:          m.ID,
		ServiceID:   m.ServiceID,
		Name:        m.Name,
		Type:        pricing.ModifierType(m.ModifierType),
		Value:       m.Value,
		DisplayType: pricing.DisplayType(m.DisplayType),
		Priority:    m.Priority,
		Condition:   cond,
		Active:      m.IsActive,
	}, nil
}

// conditionJSON: отсутствующее условие хранится как SQL NULL
func conditionJSON(c pricing.Condition) (datatypes.JSON, error) {
	if c == nil {
		return nil, nil
	}
	raw, err := pricing.EncodeCondition(c)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (r *Repository) CreateModifier(ctx context.Context, modifier pricing.Modifier) (pricing.Modifier, error) {
	cond, err := conditionJSON(modifier.Condition)
	if err != nil {
		return pricing.Modifier{}, err
	}
	row := ds.ServiceModifier{
		ServiceID:    modifier.ServiceID,
		Name:         modifier.Name,
		ModifierType: string(modifier.Type),
		Value:        modifier.Value,
		DisplayType:  string(modifier.DisplayType),
		Priority:     modifier.Priority,
		Condition:    cond,
		IsActive:     modifier.Active,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return pricing.Modifier{}, err
	}
	return toModifier(row)
}

func (r *Repository) UpdateModifier(ctx context.Context, modifier pricing.Modifier) (pricing.Modifier, error) {
	cond, err := conditionJSON(modifier.Condition)
	if err != nil {
		return pricing.Modifier{}, err
	}

	res := r.db.WithContext(ctx).Model(&ds.ServiceModifier{}).
		Where("id = ? AND service_id = ?", modifier.ID, modifier.ServiceID).
		Updates(map[string]interface{}{
			"name":          modifier.Name,
			"modifier_type": string(modifier.Type),
			"value":         modifier.Value,
			"display_type":  string(modifier.DisplayType),
			"priority":      modifier.Priority,
			"condition":     cond,
			"is_active":     modifier.Active,
		})
	if res.Error != nil {
		return pricing.Modifier{}, res.Error
	}
	if res.RowsAffected == 0 {
		return pricing.Modifier{}, notFound(gorm.ErrRecordNotFound, "modifier", modifier.ID)
	}
	return r.GetModifier(ctx, modifier.ServiceID, modifier.ID)
}

func (r *Repository) DeleteModifier(ctx context.Context, serviceID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND service_id = ?", id, serviceID).
		Delete(&ds.ServiceModifier{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "modifier", id)
	}
	return nil
}

func (r *Repository) GetModifier(ctx context.Context, serviceID, id uint) (pricing.Modifier, error) {
	var row ds.ServiceModifier
	err := r.db.WithContext(ctx).Where("id = ? AND service_id = ?", id, serviceID).First(&row).Error
	if err != nil {
		return pricing.Modifier{}, notFound(err, "modifier", id)
	}
	return toModifier(row)
}

func (r *Repository) ListModifiers(ctx context.Context, serviceID uint) ([]pricing.Modifier, error) {
	var rows []ds.ServiceModifier
	err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("priority, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	mods := make([]pricing.Modifier, 0, len(rows))
	for _, row := range rows {
		m, err := toModifier(row)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, nil
}
