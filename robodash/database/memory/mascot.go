package memory

import (
	"context"
	"time"

	"github.com/mascotlabs/robodash/robodash/database/models"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
)

type mascotStore struct {
	s *Store
}

func (r *mascotStore) GetByUser(_ context.Context, userID string) ([]*models.UserMascot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*models.UserMascot, 0, len(r.s.mascots[userID]))
	for _, m := range r.s.mascots[userID] {
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

func (r *mascotStore) Get(_ context.Context, userID, mascotID string) (*models.UserMascot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m := r.getLocked(userID, mascotID)
	if m == nil {
		return nil, repositories.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *mascotStore) getLocked(userID, mascotID string) *models.UserMascot {
	for _, m := range r.s.mascots[userID] {
		if m.MascotID == mascotID {
			return m
		}
	}
	return nil
}

func (r *mascotStore) GetActive(_ context.Context, userID string) (*models.UserMascot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.mascots[userID] {
		if m.IsActive {
			copied := *m
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *mascotStore) Purchase(_ context.Context, userID, mascotID string, price int64) (*models.UserMascot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.getLocked(userID, mascotID) != nil {
		return nil, repositories.ErrAlreadyOwned
	}
	if err := r.s.debitLocked(userID, price); err != nil {
		return nil, err
	}

	mascot := &models.UserMascot{
		ID:           r.s.id(),
		UserID:       userID,
		MascotID:     mascotID,
		PurchaseDate: time.Now(),
		Experience:   0,
		Level:        1,
		IsActive:     len(r.s.mascots[userID]) == 0,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.s.mascots[userID] = append(r.s.mascots[userID], mascot)

	copied := *mascot
	return &copied, nil
}

func (r *mascotStore) SetActive(_ context.Context, userID, mascotID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	target := r.getLocked(userID, mascotID)
	if target == nil {
		return repositories.ErrNotFound
	}
	for _, m := range r.s.mascots[userID] {
		m.IsActive = false
	}
	target.IsActive = true
	return nil
}

func (r *mascotStore) AddExperience(_ context.Context, userID, mascotID string, amount int64) (*models.UserMascot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	mascot := r.getLocked(userID, mascotID)
	if mascot == nil {
		return nil, repositories.ErrNotFound
	}
	mascot.Experience += amount
	mascot.Level = models.LevelForExperience(mascot.Experience)
	mascot.UpdatedAt = time.Now()

	copied := *mascot
	return &copied, nil
}
