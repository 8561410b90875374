package repository

import (
	"context"

	"github.com/Sc-Mae/squad-service/internal/domain/entity"
)

type SquadRepository interface {
	Create(ctx context.Context, squad *entity.Squad) error
	GetByName(ctx context.Context, squadName string) (*entity.Squad, error)
	GetAll(ctx context.Context) ([]*entity.Squad, error)
	Exists(ctx context.Context, squadName string) (bool, error)
}

type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) error
	CreateBatch(ctx context.Context, members []*entity.Member) error
	GetByID(ctx context.Context, memberID string) (*entity.Member, error)
	GetBySquad(ctx context.Context, squadName string) ([]*entity.Member, error)
	Delete(ctx context.Context, memberID string) error
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type StatisticsRepository interface {
	GetStatistics(ctx context.Context) (*entity.Statistics, error)
}
