// Package badges is the badge registry: a static catalog of achievement
// definitions plus per-user award records. First-time awards grant a point
// bonus through the rewards ledger; repeat awards are benign no-ops.
package badges

import (
	"context"
	"log/slog"
	"time"

	"github.com/mascotlabs/robodash/robodash/catalog"
	"github.com/mascotlabs/robodash/robodash/database/models"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
	"github.com/mascotlabs/robodash/robodash/events"
	"github.com/mascotlabs/robodash/robodash/rewards"
)

// EarlyAdopterCutoff is the account-creation date before which the
// early_adopter badge is granted.
var EarlyAdopterCutoff = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

// ProfileFacts are externally supplied profile attributes the auto-award
// rules evaluate. The registry stores nothing about them.
type ProfileFacts struct {
	CreatedAt    time.Time
	WalletLinked bool
}

type Service struct {
	badges  repositories.BadgeRepository
	rewards *rewards.Service
	bus     *events.Bus
}

func NewService(badges repositories.BadgeRepository, rewardsSvc *rewards.Service, bus *events.Bus) *Service {
	return &Service{
		badges:  badges,
		rewards: rewardsSvc,
		bus:     bus,
	}
}

func (s *Service) Catalog() []catalog.Badge {
	return catalog.Badges
}

func (s *Service) List(ctx context.Context, userID string) ([]*models.UserBadge, error) {
	return s.badges.GetByUser(ctx, userID)
}

// Award grants a badge. Awarding a badge the user already holds succeeds
// without creating a second row or granting the point bonus again.
func (s *Service) Award(ctx context.Context, userID, badgeID string) (bool, error) {
	if _, ok := catalog.BadgeByID(badgeID); !ok {
		return false, repositories.ErrNotFound
	}

	created, err := s.badges.Insert(ctx, &models.UserBadge{
		UserID:      userID,
		BadgeID:     badgeID,
		DateAwarded: time.Now(),
	})
	if err != nil {
		return false, err
	}
	if !created {
		return true, nil
	}

	if _, _, err := s.rewards.Award(ctx, userID, rewards.ActionEarnBadge); err != nil {
		// The badge row exists; the bonus can be reconciled later.
		slog.Warn("Badge awarded but point bonus failed",
			slog.String("user_id", userID),
			slog.String("badge_id", badgeID),
			slog.Any("error", err))
	}

	if s.bus != nil {
		s.bus.Publish(events.Event{
			Kind:    events.KindBadgeChanged,
			UserID:  userID,
			Payload: badgeID,
		})
	}
	return true, nil
}

func (s *Service) Remove(ctx context.Context, userID, badgeID string) (bool, error) {
	removed, err := s.badges.Delete(ctx, userID, badgeID)
	if err != nil {
		return false, err
	}
	if removed && s.bus != nil {
		s.bus.Publish(events.Event{
			Kind:    events.KindBadgeChanged,
			UserID:  userID,
			Payload: badgeID,
		})
	}
	return removed, nil
}

// AutoEvaluate applies the rule-based awards against supplied profile facts.
// It keeps no state of its own and relies on Award's idempotence, so it is
// safe to run on every profile load.
func (s *Service) AutoEvaluate(ctx context.Context, userID string, facts ProfileFacts) ([]string, error) {
	var awarded []string

	if !facts.CreatedAt.IsZero() && facts.CreatedAt.Before(EarlyAdopterCutoff) {
		if _, err := s.Award(ctx, userID, catalog.BadgeEarlyAdopter); err != nil {
			return awarded, err
		}
		awarded = append(awarded, catalog.BadgeEarlyAdopter)
	}

	if facts.WalletLinked {
		if _, err := s.Award(ctx, userID, catalog.BadgeWeb3Explorer); err != nil {
			return awarded, err
		}
		awarded = append(awarded, catalog.BadgeWeb3Explorer)
	}

	return awarded, nil
}
