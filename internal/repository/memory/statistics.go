package memory

import (
	"context"

	"github.com/Sc-Mae/squad-service/internal/domain/entity"
)

// StatisticsRepository реализует repository.StatisticsRepository поверх Store
type StatisticsRepository struct {
	store *Store
}

// NewStatisticsRepository создает новый репозиторий статистики
func NewStatisticsRepository(store *Store) *StatisticsRepository {
	return &StatisticsRepository{store: store}
}

// GetStatistics возвращает общую статистику системы
func (r *StatisticsRepository) GetStatistics(ctx context.Context) (*entity.Statistics, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stats := &entity.Statistics{
		MembersBySquad: make(map[string]int),
	}

	stats.TotalSquads = len(r.store.squads)
	for _, squad := range r.store.squads {
		if squad.Active {
			stats.ActiveSquads++
		}
		stats.MembersBySquad[squad.SquadName] = len(r.store.membersBySquad[squad.SquadName])
	}

	for _, member := range r.store.membersByID {
		stats.TotalMembers++
		stats.TotalPowers += len(member.Powers)
	}

	return stats, nil
}
