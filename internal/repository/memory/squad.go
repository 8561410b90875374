package memory

import (
	"context"

	"github.com/Sc-Mae/squad-service/internal/domain/entity"
	domainErrors "github.com/Sc-Mae/squad-service/internal/domain/errors"
)

// SquadRepository реализует repository.SquadRepository поверх Store
type SquadRepository struct {
	store *Store
}

// NewSquadRepository создает новый репозиторий отрядов
func NewSquadRepository(store *Store) *SquadRepository {
	return &SquadRepository{store: store}
}

// Create создает новый отряд
func (r *SquadRepository) Create(ctx context.Context, squad *entity.Squad) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.squads[squad.SquadName]; ok {
		return domainErrors.ErrSquadExists
	}

	r.store.squads[squad.SquadName] = copySquad(squad)
	r.store.squadOrder = append(r.store.squadOrder, squad.SquadName)
	return nil
}

// GetByName возвращает отряд по имени
func (r *SquadRepository) GetByName(ctx context.Context, squadName string) (*entity.Squad, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	squad, ok := r.store.squads[squadName]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return copySquad(squad), nil
}

// GetAll возвращает все отряды в порядке создания
func (r *SquadRepository) GetAll(ctx context.Context) ([]*entity.Squad, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	squads := make([]*entity.Squad, 0, len(r.store.squadOrder))
	for _, name := range r.store.squadOrder {
		squads = append(squads, copySquad(r.store.squads[name]))
	}
	return squads, nil
}

// Exists проверяет существование отряда
func (r *SquadRepository) Exists(ctx context.Context, squadName string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.squads[squadName]
	return ok, nil
}
