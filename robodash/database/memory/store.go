// Package memory provides in-memory implementations of the repository
// interfaces. It backs the service tests and doubles as a standalone
// persistence gateway for local development without Postgres.
package memory

import (
	"sync"

	"github.com/mascotlabs/robodash/robodash/database/models"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
)

// Store holds every table behind one mutex, so the multi-step writes the
// Postgres repositories run in transactions stay atomic here too.
type Store struct {
	mu        sync.Mutex
	accounts  map[string]*models.Account
	badges    map[string][]*models.UserBadge
	mascots   map[string][]*models.UserMascot
	items     map[string][]*models.UserItem
	equipment map[string][]*models.Equipment
	nextID    int64
}

func NewStore() *Store {
	return &Store{
		accounts:  make(map[string]*models.Account),
		badges:    make(map[string][]*models.UserBadge),
		mascots:   make(map[string][]*models.UserMascot),
		items:     make(map[string][]*models.UserItem),
		equipment: make(map[string][]*models.Equipment),
	}
}

func (s *Store) Accounts() repositories.AccountRepository {
	return &accountStore{s}
}

func (s *Store) Badges() repositories.BadgeRepository {
	return &badgeStore{s}
}

func (s *Store) Mascots() repositories.MascotRepository {
	return &mascotStore{s}
}

func (s *Store) Items() repositories.ItemRepository {
	return &itemStore{s}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// debitLocked is the memory twin of the floor-checked SQL decrement.
func (s *Store) debitLocked(userID string, amount int64) error {
	account, ok := s.accounts[userID]
	if !ok || account.Points < amount {
		return repositories.ErrInsufficientPoints
	}
	account.Points -= amount
	account.Level = models.LevelForPoints(account.Points)
	return nil
}
