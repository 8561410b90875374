package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Sc-Mae/squad-service/internal/domain/entity"
	domainErrors "github.com/Sc-Mae/squad-service/internal/domain/errors"
	"github.com/Sc-Mae/squad-service/internal/loader"
	"github.com/Sc-Mae/squad-service/internal/repository"
)

// SquadUseCase реализует бизнес-логику для отрядов
type SquadUseCase struct {
	squadRepo  repository.SquadRepository
	memberRepo repository.MemberRepository
	txManager  repository.TransactionManager
}

// NewSquadUseCase создает новый usecase для отрядов
func NewSquadUseCase(
	squadRepo repository.SquadRepository,
	memberRepo repository.MemberRepository,
	txManager repository.TransactionManager,
) *SquadUseCase {
	return &SquadUseCase{
		squadRepo:  squadRepo,
		memberRepo: memberRepo,
		txManager:  txManager,
	}
}

// CreateSquad создает отряд с участниками
func (uc *SquadUseCase) CreateSquad(ctx context.Context, squadWithMembers *entity.SquadWithMembers) (*entity.SquadWithMembers, error) {
	var result *entity.SquadWithMembers

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		exists, err := uc.squadRepo.Exists(ctx, squadWithMembers.Squad.SquadName)
		if err != nil {
			return fmt.Errorf("failed to check squad existence: %w", err)
		}

		if exists {
			return domainErrors.NewDomainError(
				"SQUAD_EXISTS",
				"squad_name already exists",
				domainErrors.ErrSquadExists,
			)
		}

		now := time.Now()
		squad := squadWithMembers.Squad
		squad.CreatedAt = now
		squad.UpdatedAt = now

		if err := uc.squadRepo.Create(ctx, &squad); err != nil {
			// Параллельный CreateSquad мог успеть между Exists и Create
			if errors.Is(err, domainErrors.ErrSquadExists) {
				return domainErrors.NewDomainError(
					"SQUAD_EXISTS",
					"squad_name already exists",
					domainErrors.ErrSquadExists,
				)
			}
			return fmt.Errorf("failed to create squad: %w", err)
		}

		members := make([]*entity.Member, 0, len(squadWithMembers.Members))
		for i := range squadWithMembers.Members {
			member := squadWithMembers.Members[i]
			if member.MemberID == "" {
				member.MemberID = uuid.NewString()
			}
			member.SquadName = squad.SquadName
			if member.CreatedAt.IsZero() {
				member.CreatedAt = now
			}
			member.Powers = loader.DedupePowers(member.Powers)
			members = append(members, &member)
		}

		if err := uc.memberRepo.CreateBatch(ctx, members); err != nil {
			return fmt.Errorf("failed to create members: %w", err)
		}

		created := entity.SquadWithMembers{Squad: squad}
		created.Members = make([]entity.Member, 0, len(members))
		for _, m := range members {
			created.Members = append(created.Members, *m)
		}

		result = &created
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// ImportSquads читает JSON-документ и создает все отряды из него.
// Документ разбирается и проверяется целиком до записи: ни ошибка
// разбора, ни конфликт имен не оставляют частичных данных.
func (uc *SquadUseCase) ImportSquads(ctx context.Context, r io.Reader) (int, error) {
	squads, err := loader.Load(r)
	if err != nil {
		return 0, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		// Сначала проверяем все имена, чтобы неудачный импорт
		// не оставил часть отрядов в хранилище без отката
		seen := make(map[string]struct{}, len(squads))
		for _, squad := range squads {
			name := squad.Squad.SquadName
			if _, ok := seen[name]; ok {
				return domainErrors.NewDomainError(
					"SQUAD_EXISTS",
					fmt.Sprintf("duplicate squad_name %q in document", name),
					domainErrors.ErrSquadExists,
				)
			}
			seen[name] = struct{}{}

			exists, err := uc.squadRepo.Exists(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to check squad existence: %w", err)
			}
			if exists {
				return domainErrors.NewDomainError(
					"SQUAD_EXISTS",
					"squad_name already exists",
					domainErrors.ErrSquadExists,
				)
			}
		}

		for _, squad := range squads {
			if _, err := uc.CreateSquad(ctx, squad); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return 0, err
	}

	return len(squads), nil
}

// GetSquadWithMembers возвращает отряд со списком участников
func (uc *SquadUseCase) GetSquadWithMembers(ctx context.Context, squadName string) (*entity.SquadWithMembers, error) {
	squad, err := uc.squadRepo.GetByName(ctx, squadName)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NewDomainError(
				"NOT_FOUND",
				"squad not found",
				domainErrors.ErrNotFound,
			)
		}
		return nil, fmt.Errorf("failed to get squad: %w", err)
	}

	members, err := uc.memberRepo.GetBySquad(ctx, squadName)
	if err != nil {
		return nil, fmt.Errorf("failed to get squad members: %w", err)
	}

	result := &entity.SquadWithMembers{Squad: *squad}
	result.Members = make([]entity.Member, 0, len(members))
	for _, m := range members {
		result.Members = append(result.Members, *m)
	}

	return result, nil
}

// ListSquads возвращает все отряды с участниками
func (uc *SquadUseCase) ListSquads(ctx context.Context) ([]*entity.SquadWithMembers, error) {
	squads, err := uc.squadRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get squads: %w", err)
	}

	result := make([]*entity.SquadWithMembers, 0, len(squads))
	for _, squad := range squads {
		members, err := uc.memberRepo.GetBySquad(ctx, squad.SquadName)
		if err != nil {
			return nil, fmt.Errorf("failed to get members of squad %s: %w", squad.SquadName, err)
		}

		swm := &entity.SquadWithMembers{Squad: *squad}
		swm.Members = make([]entity.Member, 0, len(members))
		for _, m := range members {
			swm.Members = append(swm.Members, *m)
		}
		result = append(result, swm)
	}

	return result, nil
}
