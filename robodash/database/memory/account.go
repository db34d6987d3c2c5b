package memory

import (
	"context"
	"time"

	"github.com/mascotlabs/robodash/robodash/database/models"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
)

type accountStore struct {
	s *Store
}

func copyAccount(a *models.Account) *models.Account {
	out := *a
	out.CompletedActions = make(map[string]models.ActionProgress, len(a.CompletedActions))
	for k, v := range a.CompletedActions {
		out.CompletedActions[k] = v
	}
	return &out
}

func (r *accountStore) Get(_ context.Context, userID string) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account, ok := r.s.accounts[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return copyAccount(account), nil
}

func (r *accountStore) GetOrCreate(_ context.Context, userID string) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account, ok := r.s.accounts[userID]
	if !ok {
		account = &models.Account{
			UserID:           userID,
			Points:           0,
			Level:            1,
			CompletedActions: map[string]models.ActionProgress{},
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}
		r.s.accounts[userID] = account
	}
	return copyAccount(account), nil
}

func (r *accountStore) Update(_ context.Context, account *models.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account.Level = models.LevelForPoints(account.Points)
	account.UpdatedAt = time.Now()
	r.s.accounts[account.UserID] = copyAccount(account)
	return nil
}

func (r *accountStore) Debit(_ context.Context, userID string, amount int64) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.debitLocked(userID, amount); err != nil {
		return nil, err
	}
	return copyAccount(r.s.accounts[userID]), nil
}
