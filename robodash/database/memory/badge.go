package memory

import (
	"context"
	"time"

	"github.com/mascotlabs/robodash/robodash/database/models"
)

type badgeStore struct {
	s *Store
}

func (r *badgeStore) GetByUser(_ context.Context, userID string) ([]*models.UserBadge, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*models.UserBadge, 0, len(r.s.badges[userID]))
	for _, b := range r.s.badges[userID] {
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *badgeStore) Has(_ context.Context, userID, badgeID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.hasLocked(userID, badgeID), nil
}

func (r *badgeStore) hasLocked(userID, badgeID string) bool {
	for _, b := range r.s.badges[userID] {
		if b.BadgeID == badgeID {
			return true
		}
	}
	return false
}

func (r *badgeStore) Insert(_ context.Context, badge *models.UserBadge) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.hasLocked(badge.UserID, badge.BadgeID) {
		return false, nil
	}
	if badge.DateAwarded.IsZero() {
		badge.DateAwarded = time.Now()
	}
	badge.ID = r.s.id()
	copied := *badge
	r.s.badges[badge.UserID] = append(r.s.badges[badge.UserID], &copied)
	return true, nil
}

func (r *badgeStore) Delete(_ context.Context, userID, badgeID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	badges := r.s.badges[userID]
	for i, b := range badges {
		if b.BadgeID == badgeID {
			r.s.badges[userID] = append(badges[:i], badges[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
