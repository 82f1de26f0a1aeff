package repository

import (
	"context"

	"gorm.io/gorm"

	"marketplace-admin/internal/app/ds"
	"marketplace-admin/internal/app/pricing"
)

func toService(s ds.Service) pricing.Service {
	iconURL := ""
	if s.IconURL != nil {
		iconURL = *s.IconURL
	}
	return pricing.Service{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Emoji:       s.Emoji,
		Description: s.Description,
		IconURL:     iconURL,
		Active:      s.IsActive,
	}
}

func (r *Repository) CreateService(ctx context.Context, service pricing.Service) (pricing.Service, error) {
	row := ds.Service{
		CategoryID:  service.CategoryID,
		Name:        service.Name,
		Emoji:       service.Emoji,
		Description: service.Description,
		IsActive:    service.Active,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return pricing.Service{}, err
	}
	return toService(row), nil
}

func (r *Repository) GetService(ctx context.Context, id uint) (pricing.Service, error) {
	var row ds.Service
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return pricing.Service{}, notFound(err, "service", id)
	}
	return toService(row), nil
}

func (r *Repository) ListServices(ctx context.Context) ([]pricing.Service, error) {
	var rows []ds.Service
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	services := make([]pricing.Service, len(rows))
	for i, s := range rows {
		services[i] = toService(s)
	}
	return services, nil
}

// UpdateServiceIcon сохраняет адрес загруженной иконки
func (r *Repository) UpdateServiceIcon(ctx context.Context, id uint, url string) error {
	res := r.db.WithContext(ctx).Model(&ds.Service{}).Where("id = ?", id).Update("icon_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "service", id)
	}
	return nil
}

func (r *Repository) CreateCategory(ctx context.Context, name string) (ds.Category, error) {
	category := ds.Category{Name: name}
	err := r.db.WithContext(ctx).Create(&category).Error
	return category, err
}

func (r *Repository) ListCategories(ctx context.Context) ([]ds.Category, error) {
	var categories []ds.Category
	err := r.db.WithContext(ctx).Order("id").Find(&categories).Error
	return categories, err
}
