package pricing

import (
	"context"
	"fmt"
	"sort"
)

// MethodCatalog - методы ценообразования услуг с проверкой инвариантов на каждой записи
type MethodCatalog struct {
	store    MethodStore
	services ServiceStore
}

func NewMethodCatalog(store MethodStore, services ServiceStore) *MethodCatalog {
	return &MethodCatalog{store: store, services: services}
}

func (c *MethodCatalog) Create(ctx context.Context, serviceID uint, d MethodDraft) (PricingMethod, error) {
	if err := requireService(ctx, c.services, serviceID); err != nil {
		return PricingMethod{}, err
	}

	siblings, err := c.store.ListMethods(ctx, serviceID)
	if err != nil {
		return PricingMethod{}, fmt.Errorf("list methods of service %d: %w", serviceID, err)
	}

	if err := FieldsError(ValidatePricingMethod(d, siblings)); err != nil {
		return PricingMethod{}, err
	}

	return c.store.CreateMethod(ctx, d.ToMethod(serviceID))
}

// Update применяет patch и заново проверяет все инварианты на объединенном результате
func (c *MethodCatalog) Update(ctx context.Context, id uint, patch MethodPatch) (PricingMethod, error) {
	current, err := c.store.GetMethod(ctx, id)
	if err != nil {
		return PricingMethod{}, err
	}

	merged := patch.Apply(current)

	all, err := c.store.ListMethods(ctx, current.ServiceID)
	if err != nil {
		return PricingMethod{}, fmt.Errorf("list methods of service %d: %w", current.ServiceID, err)
	}
	siblings := make([]PricingMethod, 0, len(all))
	for _, m := range all {
		if m.ID != id {
			siblings = append(siblings, m)
		}
	}

	if err := FieldsError(ValidatePricingMethod(merged.Draft(), siblings)); err != nil {
		return PricingMethod{}, err
	}

	updated := merged.Draft().ToMethod(current.ServiceID)
	updated.ID = id
	return c.store.UpdateMethod(ctx, updated)
}

func (c *MethodCatalog) Get(ctx context.Context, id uint) (PricingMethod, error) {
	return c.store.GetMethod(ctx, id)
}

// List - все методы услуги в порядке отображения
func (c *MethodCatalog) List(ctx context.Context, serviceID uint) ([]PricingMethod, error) {
	methods, err := c.store.ListMethods(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	sortByDisplayOrder(methods)
	return methods, nil
}

// ListActive - методы, доступные для новых расчетов, в порядке отображения
func (c *MethodCatalog) ListActive(ctx context.Context, serviceID uint) ([]PricingMethod, error) {
	methods, err := c.List(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	active := methods[:0]
	for _, m := range methods {
		if m.Active {
			active = append(active, m)
		}
	}
	return active, nil
}

func sortByDisplayOrder(methods []PricingMethod) {
	sort.SliceStable(methods, func(i, j int) bool {
		if methods[i].DisplayOrder != methods[j].DisplayOrder {
			return methods[i].DisplayOrder < methods[j].DisplayOrder
		}
		return methods[i].ID < methods[j].ID
	})
}

// FindBySelector ищет активный метод без учета регистра: сначала по имени, затем по сокращению
func FindBySelector(methods []PricingMethod, selector string) (PricingMethod, bool) {
	key := NormalizeName(selector)
	if key == "" {
		return PricingMethod{}, false
	}
	for _, m := range methods {
		if m.Active && NormalizeName(m.Name) == key {
			return m, true
		}
	}
	for _, m := range methods {
		if !m.Active {
			continue
		}
		for _, s := range m.Shortcuts {
			if NormalizeName(s) == key {
				return m, true
			}
		}
	}
	return PricingMethod{}, false
}
