// Package pricingtest содержит хранилище в памяти для тестов пакетов,
// работающих с каталогом цен.
package pricingtest

import (
	"context"
	"fmt"
	"sync"

	"marketplace-admin/internal/app/pricing"
)

// MemStore реализует MethodStore, ModifierStore и ServiceStore.
// ID выдаются по возрастанию, как у автоинкремента в Postgres.
type MemStore struct {
	mu        sync.Mutex
	nextID    uint
	services  []pricing.Service
	methods   []pricing.PricingMethod
	modifiers []pricing.Modifier

	// FailCreate, если задан, вызывается перед каждой записью и может вернуть ошибку
	FailCreate func(name string) error
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *MemStore) fail(name string) error {
	if s.FailCreate == nil {
		return nil
	}
	return s.FailCreate(name)
}

func (s *MemStore) CreateService(_ context.Context, svc pricing.Service) (pricing.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(svc.Name); err != nil {
		return pricing.Service{}, err
	}
	svc.ID = s.id()
	s.services = append(s.services, svc)
	return svc, nil
}

func (s *MemStore) GetService(_ context.Context, id uint) (pricing.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return pricing.Service{}, fmt.Errorf("service %d: %w", id, pricing.ErrNotFound)
}

func (s *MemStore) ListServices(_ context.Context) ([]pricing.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]pricing.Service(nil), s.services...), nil
}

// UpdateServiceIcon - то же, что и в репозитории
func (s *MemStore) UpdateServiceIcon(_ context.Context, id uint, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == id {
			s.services[i].IconURL = url
			return nil
		}
	}
	return fmt.Errorf("service %d: %w", id, pricing.ErrNotFound)
}

func (s *MemStore) CreateMethod(_ context.Context, m pricing.PricingMethod) (pricing.PricingMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(m.Name); err != nil {
		return pricing.PricingMethod{}, err
	}
	m.ID = s.id()
	m.Shortcuts = append([]string(nil), m.Shortcuts...)
	s.methods = append(s.methods, m)
	return m, nil
}

func (s *MemStore) UpdateMethod(_ context.Context, m pricing.PricingMethod) (pricing.PricingMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.methods {
		if s.methods[i].ID == m.ID {
			s.methods[i] = m
			return m, nil
		}
	}
	return pricing.PricingMethod{}, fmt.Errorf("pricing method %d: %w", m.ID, pricing.ErrNotFound)
}

func (s *MemStore) GetMethod(_ context.Context, id uint) (pricing.PricingMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.methods {
		if m.ID == id {
			return m, nil
		}
	}
	return pricing.PricingMethod{}, fmt.Errorf("pricing method %d: %w", id, pricing.ErrNotFound)
}

func (s *MemStore) ListMethods(_ context.Context, serviceID uint) ([]pricing.PricingMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []pricing.PricingMethod
	for _, m := range s.methods {
		if m.ServiceID == serviceID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemStore) CreateModifier(_ context.Context, m pricing.Modifier) (pricing.Modifier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(m.Name); err != nil {
		return pricing.Modifier{}, err
	}
	m.ID = s.id()
	s.modifiers = append(s.modifiers, m)
	return m, nil
}

func (s *MemStore) UpdateModifier(_ context.Context, m pricing.Modifier) (pricing.Modifier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.modifiers {
		if s.modifiers[i].ID == m.ID && s.modifiers[i].ServiceID == m.ServiceID {
			s.modifiers[i] = m
			return m, nil
		}
	}
	return pricing.Modifier{}, fmt.Errorf("modifier %d: %w", m.ID, pricing.ErrNotFound)
}

func (s *MemStore) DeleteModifier(_ context.Context, serviceID, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.modifiers {
		if m.ID == id && m.ServiceID == serviceID {
			s.modifiers = append(s.modifiers[:i], s.modifiers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("modifier %d: %w", id, pricing.ErrNotFound)
}

func (s *MemStore) GetModifier(_ context.Context, serviceID, id uint) (pricing.Modifier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.modifiers {
		if m.ID == id && m.ServiceID == serviceID {
			return m, nil
		}
	}
	return pricing.Modifier{}, fmt.Errorf("modifier %d: %w", id, pricing.ErrNotFound)
}

func (s *MemStore) ListModifiers(_ context.Context, serviceID uint) ([]pricing.Modifier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []pricing.Modifier
	for _, m := range s.modifiers {
		if m.ServiceID == serviceID {
			out = append(out, m)
		}
	}
	return out, nil
}
