// Package rewards is the points ledger: it tracks balances and derived
// levels, and awards points for named profile actions under once-only,
// once-per-day, or repeatable policies.
package rewards

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mascotlabs/robodash/robodash/database/models"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
	"github.com/mascotlabs/robodash/robodash/events"
)

type ActionKind string

const (
	ActionLogin           ActionKind = "LOGIN"
	ActionCompleteProfile ActionKind = "COMPLETE_PROFILE"
	ActionViewGuide       ActionKind = "VIEW_GUIDE"
	ActionEarnBadge       ActionKind = "EARN_BADGE"
	ActionTrainMascot     ActionKind = "TRAIN_MASCOT"
)

type policy int

const (
	policyDaily policy = iota
	policyOnce
	policyRepeatable
)

type reward struct {
	Amount int64
	Policy policy
}

var rewardTable = map[ActionKind]reward{
	ActionLogin:           {Amount: 5, Policy: policyDaily},
	ActionCompleteProfile: {Amount: 10, Policy: policyOnce},
	ActionViewGuide:       {Amount: 3, Policy: policyRepeatable},
	ActionEarnBadge:       {Amount: 15, Policy: policyRepeatable},
	ActionTrainMascot:     {Amount: 2, Policy: policyRepeatable},
}

var ErrUnknownAction = errors.New("unknown action kind")

const dateLayout = "2006-01-02"

type Service struct {
	accounts repositories.AccountRepository
	bus      *events.Bus
	now      func() time.Time
}

func NewService(accounts repositories.AccountRepository, bus *events.Bus) *Service {
	return &Service{
		accounts: accounts,
		bus:      bus,
		now:      time.Now,
	}
}

// GetAccount fetches the account, lazily creating it with a zero balance.
func (s *Service) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	return s.accounts.GetOrCreate(ctx, userID)
}

// Award grants the action's points if its completion policy allows another
// occurrence. An ineligible award is not an error: the account is returned
// unchanged with awarded=false.
func (s *Service) Award(ctx context.Context, userID string, kind ActionKind) (*models.Account, bool, error) {
	r, ok := rewardTable[kind]
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrUnknownAction, kind)
	}

	account, err := s.accounts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	today := s.now().Format(dateLayout)
	progress := account.CompletedActions[string(kind)]

	switch r.Policy {
	case policyDaily:
		if progress.LastDate == today {
			return account, false, nil
		}
	case policyOnce:
		if progress.Count > 0 {
			return account, false, nil
		}
	}

	progress.LastDate = today
	progress.Count++
	if account.CompletedActions == nil {
		account.CompletedActions = map[string]models.ActionProgress{}
	}
	account.CompletedActions[string(kind)] = progress

	account.Points += r.Amount
	if kind == ActionLogin {
		account.LastLogin = s.now()
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, false, err
	}

	slog.Debug("Points awarded",
		slog.String("user_id", userID),
		slog.String("action", string(kind)),
		slog.Int64("amount", r.Amount),
		slog.Int64("points", account.Points))

	s.publish(account)
	return account, true, nil
}

// Debit subtracts points for a purchase. The decrement is floor-checked at
// zero; overdrawing fails with ErrInsufficientPoints.
func (s *Service) Debit(ctx context.Context, userID string, amount int64) (*models.Account, error) {
	account, err := s.accounts.Debit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	s.publish(account)
	return account, nil
}

func (s *Service) publish(account *models.Account) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.Event{
		Kind:    events.KindPointsChanged,
		UserID:  account.UserID,
		Payload: account,
	})
}

// PublishBalance re-emits the current balance; used by flows that debit
// inside their own transaction (mascot and item purchases).
func (s *Service) PublishBalance(ctx context.Context, userID string) {
	account, err := s.accounts.GetOrCreate(ctx, userID)
	if err != nil {
		slog.Warn("Failed to refresh balance for notification",
			slog.String("user_id", userID),
			slog.Any("error", err))
		return
	}
	s.publish(account)
}
