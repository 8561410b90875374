package memory

import (
	"sync"

	"github.com/Sc-Mae/squad-service/internal/domain/entity"
)

// Store хранит отряды и участников в памяти. Участники каждого
// отряда лежат в срезе в порядке добавления.
type Store struct {
	mu             sync.RWMutex
	squads         map[string]*entity.Squad
	squadOrder     []string
	membersBySquad map[string][]*entity.Member
	membersByID    map[string]*entity.Member
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		squads:         make(map[string]*entity.Squad),
		membersBySquad: make(map[string][]*entity.Member),
		membersByID:    make(map[string]*entity.Member),
	}
}

func copySquad(s *entity.Squad) *entity.Squad {
	c := *s
	return &c
}

func copyMember(m *entity.Member) *entity.Member {
	c := *m
	c.Powers = append([]string(nil), m.Powers...)
	return &c
}
