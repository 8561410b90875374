package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sc-Mae/squad-service/internal/domain/entity"
)

// StatisticsRepository реализует repository.StatisticsRepository для PostgreSQL
type StatisticsRepository struct {
	pool *pgxpool.Pool
}

// NewStatisticsRepository создает новый репозиторий статистики
func NewStatisticsRepository(pool *pgxpool.Pool) *StatisticsRepository {
	return &StatisticsRepository{pool: pool}
}

// GetStatistics возвращает общую статистику системы
func (r *StatisticsRepository) GetStatistics(ctx context.Context) (*entity.Statistics, error) {
	stats := &entity.Statistics{
		MembersBySquad: make(map[string]int),
	}

	totalSquadsQuery := `SELECT COUNT(*) FROM squads`
	if err := r.pool.QueryRow(ctx, totalSquadsQuery).Scan(&stats.TotalSquads); err != nil {
		return nil, fmt.Errorf("failed to get total squads: %w", err)
	}

	activeSquadsQuery := `SELECT COUNT(*) FROM squads WHERE active = true`
	if err := r.pool.QueryRow(ctx, activeSquadsQuery).Scan(&stats.ActiveSquads); err != nil {
		return nil, fmt.Errorf("failed to get active squads: %w", err)
	}

	totalMembersQuery := `SELECT COUNT(*) FROM members`
	if err := r.pool.QueryRow(ctx, totalMembersQuery).Scan(&stats.TotalMembers); err != nil {
		return nil, fmt.Errorf("failed to get total members: %w", err)
	}

	totalPowersQuery := `SELECT COALESCE(SUM(cardinality(powers)), 0) FROM members`
	if err := r.pool.QueryRow(ctx, totalPowersQuery).Scan(&stats.TotalPowers); err != nil {
		return nil, fmt.Errorf("failed to get total powers: %w", err)
	}

	membersBySquadQuery := `
		SELECT s.squad_name, COUNT(m.member_id) as members_count
		FROM squads s
		LEFT JOIN members m ON s.squad_name = m.squad_name
		GROUP BY s.squad_name
		ORDER BY members_count DESC
	`

	rows, err := r.pool.Query(ctx, membersBySquadQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get members by squad: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var squadName string
		var count int
		if err := rows.Scan(&squadName, &count); err != nil {
			return nil, fmt.Errorf("failed to scan members by squad: %w", err)
		}
		stats.MembersBySquad[squadName] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members by squad: %w", err)
	}

	return stats, nil
}
