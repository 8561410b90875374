package memory

import (
	"context"

	"github.com/Sc-Mae/squad-service/internal/domain/entity"
	domainErrors "github.com/Sc-Mae/squad-service/internal/domain/errors"
)

// MemberRepository реализует repository.MemberRepository поверх Store
type MemberRepository struct {
	store *Store
}

// NewMemberRepository создает новый репозиторий участников
func NewMemberRepository(store *Store) *MemberRepository {
	return &MemberRepository{store: store}
}

// Create добавляет участника в конец списка его отряда
func (r *MemberRepository) Create(ctx context.Context, member *entity.Member) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := copyMember(member)
	r.store.membersByID[c.MemberID] = c
	r.store.membersBySquad[c.SquadName] = append(r.store.membersBySquad[c.SquadName], c)
	return nil
}

// CreateBatch добавляет участников, сохраняя порядок
func (r *MemberRepository) CreateBatch(ctx context.Context, members []*entity.Member) error {
	for _, member := range members {
		if err := r.Create(ctx, member); err != nil {
			return err
		}
	}
	return nil
}

// GetByID возвращает участника по идентификатору
func (r *MemberRepository) GetByID(ctx context.Context, memberID string) (*entity.Member, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	member, ok := r.store.membersByID[memberID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return copyMember(member), nil
}

// GetBySquad возвращает участников отряда в порядке добавления
func (r *MemberRepository) GetBySquad(ctx context.Context, squadName string) ([]*entity.Member, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored := r.store.membersBySquad[squadName]
	members := make([]*entity.Member, 0, len(stored))
	for _, member := range stored {
		members = append(members, copyMember(member))
	}
	return members, nil
}

// Delete удаляет участника по идентификатору
func (r *MemberRepository) Delete(ctx context.Context, memberID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	member, ok := r.store.membersByID[memberID]
	if !ok {
		return domainErrors.ErrNotFound
	}

	delete(r.store.membersByID, memberID)

	squadMembers := r.store.membersBySquad[member.SquadName]
	for i, m := range squadMembers {
		if m.MemberID == memberID {
			r.store.membersBySquad[member.SquadName] = append(squadMembers[:i], squadMembers[i+1:]...)
			break
		}
	}

	return nil
}
