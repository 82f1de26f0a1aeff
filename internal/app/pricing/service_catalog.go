package pricing

import (
	"context"
	"fmt"
)

// ServiceCatalog - создание одиночных услуг через тот же валидатор, что и пакетный импорт
type ServiceCatalog struct {
	store ServiceStore
}

func NewServiceCatalog(store ServiceStore) *ServiceCatalog {
	return &ServiceCatalog{store: store}
}

func (c *ServiceCatalog) Create(ctx context.Context, d ServiceDraft) (Service, error) {
	siblings, err := c.store.ListServices(ctx)
	if err != nil {
		return Service{}, fmt.Errorf("list services: %w", err)
	}
	if err := FieldsError(ValidateServiceDraft(d, siblings)); err != nil {
		return Service{}, err
	}
	return c.store.CreateService(ctx, d.ToService())
}

func (c *ServiceCatalog) Get(ctx context.Context, id uint) (Service, error) {
	return c.store.GetService(ctx, id)
}

func (c *ServiceCatalog) List(ctx context.Context) ([]Service, error) {
	return c.store.ListServices(ctx)
}

// requireService: услуга задана и существует, иначе ошибка поля или обертка ErrNotFound
func requireService(ctx context.Context, services ServiceStore, serviceID uint) error {
	if serviceID == 0 {
		return &ValidationError{Fields: []FieldError{
			{Field: "serviceId", Code: CodeRequired, Message: "Service is required"},
		}}
	}
	if _, err := services.GetService(ctx, serviceID); err != nil {
		return fmt.Errorf("get service %d: %w", serviceID, err)
	}
	return nil
}
