package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sc-Mae/squad-service/internal/domain/entity"
	domainErrors "github.com/Sc-Mae/squad-service/internal/domain/errors"
)

// MemberRepository реализует repository.MemberRepository для PostgreSQL
type MemberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository создает новый репозиторий участников
func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

// Create создает нового участника
func (r *MemberRepository) Create(ctx context.Context, member *entity.Member) error {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO members (member_id, squad_name, name, age, secret_identity, powers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := conn.Exec(ctx, query,
		member.MemberID,
		member.SquadName,
		member.Name,
		member.Age,
		member.SecretIdentity,
		member.Powers,
		member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

// CreateBatch создает участников пакетом, сохраняя порядок добавления
func (r *MemberRepository) CreateBatch(ctx context.Context, members []*entity.Member) error {
	for _, member := range members {
		if err := r.Create(ctx, member); err != nil {
			return fmt.Errorf("failed to create member %s: %w", member.MemberID, err)
		}
	}
	return nil
}

// GetByID возвращает участника по идентификатору
func (r *MemberRepository) GetByID(ctx context.Context, memberID string) (*entity.Member, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT member_id, squad_name, name, age, secret_identity, powers, created_at
		FROM members
		WHERE member_id = $1
	`

	var member entity.Member
	err := conn.QueryRow(ctx, query, memberID).Scan(
		&member.MemberID,
		&member.SquadName,
		&member.Name,
		&member.Age,
		&member.SecretIdentity,
		&member.Powers,
		&member.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &member, nil
}

// GetBySquad возвращает участников отряда в порядке добавления
func (r *MemberRepository) GetBySquad(ctx context.Context, squadName string) ([]*entity.Member, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT member_id, squad_name, name, age, secret_identity, powers, created_at
		FROM members
		WHERE squad_name = $1
		ORDER BY joined_seq
	`

	rows, err := conn.Query(ctx, query, squadName)
	if err != nil {
		return nil, fmt.Errorf("failed to get members by squad: %w", err)
	}
	defer rows.Close()

	var members []*entity.Member
	for rows.Next() {
		var member entity.Member
		err := rows.Scan(
			&member.MemberID,
			&member.SquadName,
			&member.Name,
			&member.Age,
			&member.SecretIdentity,
			&member.Powers,
			&member.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// Delete удаляет участника по идентификатору
func (r *MemberRepository) Delete(ctx context.Context, memberID string) error {
	conn := getConn(ctx, r.pool)

	query := `
		DELETE FROM members
		WHERE member_id = $1
	`

	result, err := conn.Exec(ctx, query, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}

	return nil
}
