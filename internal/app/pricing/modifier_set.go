package pricing

import "context"

// ModifierSet - модификаторы услуги
type ModifierSet struct {
	store    ModifierStore
	services ServiceStore
}

func NewModifierSet(store ModifierStore, services ServiceStore) *ModifierSet {
	return &ModifierSet{store: store, services: services}
}

func (s *ModifierSet) Create(ctx context.Context, serviceID uint, d ModifierDraft) (Modifier, error) {
	if err := requireService(ctx, s.services, serviceID); err != nil {
		return Modifier{}, err
	}

	d = d.Normalized()
	if err := FieldsError(ValidateModifier(d)); err != nil {
		return Modifier{}, err
	}

	return s.store.CreateModifier(ctx, Modifier{
		ServiceID:   serviceID,
		Name:        d.Name,
		Type:        d.Type,
		Value:       *d.Value,
		DisplayType: d.DisplayType,
		Priority:    d.Priority,
		Condition:   d.Condition,
		Active:      d.Active,
	})
}

func (s *ModifierSet) Update(ctx context.Context, serviceID, id uint, patch ModifierPatch) (Modifier, error) {
	current, err := s.store.GetModifier(ctx, serviceID, id)
	if err != nil {
		return Modifier{}, err
	}

	merged := patch.Apply(current)
	d := merged.Draft().Normalized()
	if err := FieldsError(ValidateModifier(d)); err != nil {
		return Modifier{}, err
	}
	merged.Name = d.Name
	merged.DisplayType = d.DisplayType

	return s.store.UpdateModifier(ctx, merged)
}

func (s *ModifierSet) Delete(ctx context.Context, serviceID, id uint) error {
	if _, err := s.store.GetModifier(ctx, serviceID, id); err != nil {
		return err
	}
	return s.store.DeleteModifier(ctx, serviceID, id)
}

// ToggleActive переключает только флаг active
func (s *ModifierSet) ToggleActive(ctx context.Context, serviceID, id uint) (Modifier, error) {
	current, err := s.store.GetModifier(ctx, serviceID, id)
	if err != nil {
		return Modifier{}, err
	}
	current.Active = !current.Active
	return s.store.UpdateModifier(ctx, current)
}

// List - все сохраненные модификаторы услуги, включая выключенные
func (s *ModifierSet) List(ctx context.Context, serviceID uint) ([]Modifier, error) {
	return s.store.ListModifiers(ctx, serviceID)
}

// ListApplicable - активные модификаторы в порядке применения
func (s *ModifierSet) ListApplicable(ctx context.Context, serviceID uint) ([]Modifier, error) {
	mods, err := s.store.ListModifiers(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return Applicable(mods), nil
}
