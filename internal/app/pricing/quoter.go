package pricing

import (
	"context"
	"errors"
	"fmt"
)

// Quoter проверяет предусловия расчета и вызывает Compute
type Quoter struct {
	methods   MethodStore
	modifiers ModifierStore
}

func NewQuoter(methods MethodStore, modifiers ModifierStore) *Quoter {
	return &Quoter{methods: methods, modifiers: modifiers}
}

// Quote считает цену метода methodID услуги serviceID
func (q *Quoter) Quote(ctx context.Context, serviceID, methodID uint, qc QuoteContext) (Quote, error) {
	m, err := q.methods.GetMethod(ctx, methodID)
	if errors.Is(err, ErrNotFound) {
		return Quote{}, &PreconditionError{MethodID: methodID, Err: ErrMethodNotFound}
	}
	if err != nil {
		return Quote{}, fmt.Errorf("get method %d: %w", methodID, err)
	}
	if m.ServiceID != serviceID {
		return Quote{}, &PreconditionError{MethodID: methodID, Err: ErrMethodNotFound}
	}
	return q.compute(ctx, m, qc)
}

// QuoteBySelector выбирает метод по имени или сокращению
func (q *Quoter) QuoteBySelector(ctx context.Context, serviceID uint, selector string, qc QuoteContext) (Quote, error) {
	methods, err := q.methods.ListMethods(ctx, serviceID)
	if err != nil {
		return Quote{}, fmt.Errorf("list methods of service %d: %w", serviceID, err)
	}
	sortByDisplayOrder(methods)
	m, ok := FindBySelector(methods, selector)
	if !ok {
		return Quote{}, &PreconditionError{Err: fmt.Errorf("%w: %q", ErrMethodNotFound, selector)}
	}
	return q.compute(ctx, m, qc)
}

func (q *Quoter) compute(ctx context.Context, m PricingMethod, qc QuoteContext) (Quote, error) {
	if !m.Active {
		return Quote{}, &PreconditionError{MethodID: m.ID, Err: ErrMethodInactive}
	}
	mods, err := q.modifiers.ListModifiers(ctx, m.ServiceID)
	if err != nil {
		return Quote{}, fmt.Errorf("list modifiers of service %d: %w", m.ServiceID, err)
	}
	return Compute(m, mods, qc), nil
}
