package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sc-Mae/squad-service/internal/domain/entity"
	domainErrors "github.com/Sc-Mae/squad-service/internal/domain/errors"
)

const uniqueViolationCode = "23505"

// SquadRepository реализует repository.SquadRepository для PostgreSQL
type SquadRepository struct {
	pool *pgxpool.Pool
}

// NewSquadRepository создает новый репозиторий отрядов
func NewSquadRepository(pool *pgxpool.Pool) *SquadRepository {
	return &SquadRepository{pool: pool}
}

// Create создает новый отряд
func (r *SquadRepository) Create(ctx context.Context, squad *entity.Squad) error {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO squads (squad_name, home_town, formed, status, secret_base, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := conn.Exec(ctx, query,
		squad.SquadName,
		squad.HomeTown,
		squad.Formed,
		squad.Status,
		squad.SecretBase,
		squad.Active,
		squad.CreatedAt,
		squad.UpdatedAt,
	)
	if err != nil {
		// 23505: нарушение первичного ключа squad_name
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domainErrors.ErrSquadExists
		}
		return fmt.Errorf("failed to create squad: %w", err)
	}

	return nil
}

// GetByName возвращает отряд по имени
func (r *SquadRepository) GetByName(ctx context.Context, squadName string) (*entity.Squad, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT squad_name, home_town, formed, status, secret_base, active, created_at, updated_at
		FROM squads
		WHERE squad_name = $1
	`

	var squad entity.Squad
	err := conn.QueryRow(ctx, query, squadName).Scan(
		&squad.SquadName,
		&squad.HomeTown,
		&squad.Formed,
		&squad.Status,
		&squad.SecretBase,
		&squad.Active,
		&squad.CreatedAt,
		&squad.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get squad: %w", err)
	}

	return &squad, nil
}

// GetAll возвращает все отряды в порядке создания
func (r *SquadRepository) GetAll(ctx context.Context) ([]*entity.Squad, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT squad_name, home_town, formed, status, secret_base, active, created_at, updated_at
		FROM squads
		ORDER BY created_at, squad_name
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get squads: %w", err)
	}
	defer rows.Close()

	var squads []*entity.Squad
	for rows.Next() {
		var squad entity.Squad
		err := rows.Scan(
			&squad.SquadName,
			&squad.HomeTown,
			&squad.Formed,
			&squad.Status,
			&squad.SecretBase,
			&squad.Active,
			&squad.CreatedAt,
			&squad.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan squad: %w", err)
		}
		squads = append(squads, &squad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate squads: %w", err)
	}

	return squads, nil
}

// Exists проверяет существование отряда
func (r *SquadRepository) Exists(ctx context.Context, squadName string) (bool, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT EXISTS(SELECT 1 FROM squads WHERE squad_name = $1)
	`

	var exists bool
	err := conn.QueryRow(ctx, query, squadName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check squad existence: %w", err)
	}

	return exists, nil
}
