package memory

import (
	"context"
	"time"

	"github.com/mascotlabs/robodash/robodash/database/models"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
)

type itemStore struct {
	s *Store
}

func (r *itemStore) GetByUser(_ context.Context, userID string) ([]*models.UserItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*models.UserItem, 0, len(r.s.items[userID]))
	for _, it := range r.s.items[userID] {
		copied := *it
		out = append(out, &copied)
	}
	return out, nil
}

func (r *itemStore) Get(_ context.Context, userID, instanceID string) (*models.UserItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, it := range r.s.items[userID] {
		if it.InstanceID == instanceID {
			copied := *it
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *itemStore) Add(_ context.Context, item *models.UserItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.addLocked(item)
	return nil
}

func (r *itemStore) addLocked(item *models.UserItem) {
	if item.ObtainedAt.IsZero() {
		item.ObtainedAt = time.Now()
	}
	copied := *item
	r.s.items[item.UserID] = append(r.s.items[item.UserID], &copied)
}

func (r *itemStore) Purchase(_ context.Context, item *models.UserItem, price int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.debitLocked(item.UserID, price); err != nil {
		return 0, err
	}
	r.addLocked(item)
	return r.s.accounts[item.UserID].Points, nil
}

func (r *itemStore) Equip(_ context.Context, userID, mascotID, instanceID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := 0
	equipped := false
	for _, eq := range r.s.equipment[userID] {
		if eq.InstanceID == instanceID {
			equipped = true
		}
		if eq.MascotID == mascotID {
			count++
		}
	}
	if count >= models.MaxEquippedPerMascot {
		return repositories.ErrMascotFull
	}
	if equipped {
		return repositories.ErrAlreadyEquipped
	}

	r.s.equipment[userID] = append(r.s.equipment[userID], &models.Equipment{
		ID:         r.s.id(),
		UserID:     userID,
		MascotID:   mascotID,
		InstanceID: instanceID,
		EquippedAt: time.Now(),
	})
	return nil
}

func (r *itemStore) Unequip(_ context.Context, userID, mascotID, instanceID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	equipment := r.s.equipment[userID]
	for i, eq := range equipment {
		if eq.MascotID == mascotID && eq.InstanceID == instanceID {
			r.s.equipment[userID] = append(equipment[:i], equipment[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *itemStore) GetEquipment(_ context.Context, userID, mascotID string) ([]*models.Equipment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*models.Equipment
	for _, eq := range r.s.equipment[userID] {
		if eq.MascotID == mascotID {
			copied := *eq
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *itemStore) GetUserEquipment(_ context.Context, userID string) ([]*models.Equipment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*models.Equipment, 0, len(r.s.equipment[userID]))
	for _, eq := range r.s.equipment[userID] {
		copied := *eq
		out = append(out, &copied)
	}
	return out, nil
}

func (r *itemStore) IsEquipped(_ context.Context, userID, instanceID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, eq := range r.s.equipment[userID] {
		if eq.InstanceID == instanceID {
			return true, nil
		}
	}
	return false, nil
}
