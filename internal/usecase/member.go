package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Sc-Mae/squad-service/internal/domain/entity"
	domainErrors "github.com/Sc-Mae/squad-service/internal/domain/errors"
	"github.com/Sc-Mae/squad-service/internal/loader"
	"github.com/Sc-Mae/squad-service/internal/repository"
)

// MemberUseCase реализует бизнес-логику для участников
type MemberUseCase struct {
	memberRepo repository.MemberRepository
	squadRepo  repository.SquadRepository
}

// NewMemberUseCase создает новый usecase для участников
func NewMemberUseCase(
	memberRepo repository.MemberRepository,
	squadRepo repository.SquadRepository,
) *MemberUseCase {
	return &MemberUseCase{
		memberRepo: memberRepo,
		squadRepo:  squadRepo,
	}
}

// AddMember добавляет участника в отряд и возвращает его идентификатор
func (uc *MemberUseCase) AddMember(ctx context.Context, squadName string, member *entity.Member) (string, error) {
	exists, err := uc.squadRepo.Exists(ctx, squadName)
	if err != nil {
		return "", fmt.Errorf("failed to check squad existence: %w", err)
	}

	if !exists {
		return "", domainErrors.NewDomainError(
			"NOT_FOUND",
			"squad not found",
			domainErrors.ErrNotFound,
		)
	}

	member.MemberID = uuid.NewString()
	member.SquadName = squadName
	member.CreatedAt = time.Now()
	member.Powers = loader.DedupePowers(member.Powers)

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		return "", fmt.Errorf("failed to create member: %w", err)
	}

	return member.MemberID, nil
}

// ListMembers возвращает краткий список участников отряда
// в порядке добавления. Каждый вызов читает хранилище заново.
func (uc *MemberUseCase) ListMembers(ctx context.Context, squadName string) ([]entity.MemberSummary, error) {
	exists, err := uc.squadRepo.Exists(ctx, squadName)
	if err != nil {
		return nil, fmt.Errorf("failed to check squad existence: %w", err)
	}

	if !exists {
		return nil, domainErrors.NewDomainError(
			"NOT_FOUND",
			"squad not found",
			domainErrors.ErrNotFound,
		)
	}

	members, err := uc.memberRepo.GetBySquad(ctx, squadName)
	if err != nil {
		return nil, fmt.Errorf("failed to get squad members: %w", err)
	}

	summaries := make([]entity.MemberSummary, 0, len(members))
	for _, member := range members {
		summaries = append(summaries, entity.MemberSummary{
			MemberID: member.MemberID,
			Name:     member.Name,
		})
	}

	return summaries, nil
}

// RemoveMember удаляет участника по идентификатору
func (uc *MemberUseCase) RemoveMember(ctx context.Context, memberID string) error {
	err := uc.memberRepo.Delete(ctx, memberID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.NewDomainError(
				"NOT_FOUND",
				"member not found",
				domainErrors.ErrNotFound,
			)
		}
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}
