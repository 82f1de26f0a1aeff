package pricing

import "context"

//go:generate mockgen -source=store.go -destination=mock_pricing/store.go -package=mock_pricing

// MethodStore - внешнее хранилище методов ценообразования.
// Отсутствующая запись возвращает ошибку, оборачивающую ErrNotFound.
type MethodStore interface {
	CreateMethod(ctx context.Context, method PricingMethod) (PricingMethod, error)
	UpdateMethod(ctx context.Context, method PricingMethod) (PricingMethod, error)
	GetMethod(ctx context.Context, id uint) (PricingMethod, error)
	ListMethods(ctx context.Context, serviceID uint) ([]PricingMethod, error)
}

// ModifierStore - внешнее хранилище модификаторов услуги
type ModifierStore interface {
	CreateModifier(ctx context.Context, modifier Modifier) (Modifier, error)
	UpdateModifier(ctx context.Context, modifier Modifier) (Modifier, error)
	DeleteModifier(ctx context.Context, serviceID, id uint) error
	GetModifier(ctx context.Context, serviceID, id uint) (Modifier, error)
	ListModifiers(ctx context.Context, serviceID uint) ([]Modifier, error)
}

// ServiceStore - услуги каталога
type ServiceStore interface {
	CreateService(ctx context.Context, service Service) (Service, error)
	GetService(ctx context.Context, id uint) (Service, error)
	ListServices(ctx context.Context) ([]Service, error)
}
