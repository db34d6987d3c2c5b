// Package mascots manages the collectible roster: the static template
// catalog, per-user ownership, training experience, and the single-active
// selection.
package mascots

import (
	"context"
	"log/slog"

	"github.com/mascotlabs/robodash/robodash/catalog"
	"github.com/mascotlabs/robodash/robodash/database/models"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
	"github.com/mascotlabs/robodash/robodash/events"
	"github.com/mascotlabs/robodash/robodash/rewards"
)

// TrainExperience is the XP a mascot gains per training session.
const TrainExperience = 25

// OwnedMascot is an ownership row hydrated with its catalog template.
type OwnedMascot struct {
	*models.UserMascot
	Template catalog.MascotTemplate `json:"template"`
}

type TrainResult struct {
	NewExperience int64 `json:"new_experience"`
	NewLevel      int   `json:"new_level"`
	DidLevelUp    bool  `json:"did_level_up"`
}

type Service struct {
	mascots repositories.MascotRepository
	rewards *rewards.Service
	bus     *events.Bus
}

func NewService(mascots repositories.MascotRepository, rewardsSvc *rewards.Service, bus *events.Bus) *Service {
	return &Service{
		mascots: mascots,
		rewards: rewardsSvc,
		bus:     bus,
	}
}

func (s *Service) Catalog() []catalog.MascotTemplate {
	return catalog.Mascots
}

func (s *Service) Owned(ctx context.Context, userID string) ([]OwnedMascot, error) {
	rows, err := s.mascots.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]OwnedMascot, 0, len(rows))
	for _, row := range rows {
		template, ok := catalog.MascotByID(row.MascotID)
		if !ok {
			// Catalog entries can be retired between deploys; skip orphans.
			slog.Warn("Owned mascot references unknown template",
				slog.String("user_id", userID),
				slog.String("mascot_id", row.MascotID))
			continue
		}
		out = append(out, OwnedMascot{UserMascot: row, Template: template})
	}
	return out, nil
}

// Active returns the user's active mascot, or nil when none is owned.
func (s *Service) Active(ctx context.Context, userID string) (*OwnedMascot, error) {
	row, err := s.mascots.GetActive(ctx, userID)
	if err == repositories.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	template, _ := catalog.MascotByID(row.MascotID)
	return &OwnedMascot{UserMascot: row, Template: template}, nil
}

// Purchase debits the template price and records ownership in one
// transaction. The user's first mascot becomes active automatically.
func (s *Service) Purchase(ctx context.Context, userID, mascotID string) (*models.UserMascot, error) {
	template, ok := catalog.MascotByID(mascotID)
	if !ok {
		return nil, repositories.ErrNotFound
	}

	mascot, err := s.mascots.Purchase(ctx, userID, mascotID, template.Price)
	if err != nil {
		return nil, err
	}

	s.publishMascot(userID, mascot)
	s.rewards.PublishBalance(ctx, userID)
	return mascot, nil
}

func (s *Service) SetActive(ctx context.Context, userID, mascotID string) error {
	if err := s.mascots.SetActive(ctx, userID, mascotID); err != nil {
		return err
	}
	s.publishMascot(userID, mascotID)
	return nil
}

// AddExperience adds raw XP to an owned mascot and reports level movement.
func (s *Service) AddExperience(ctx context.Context, userID, mascotID string, amount int64) (*TrainResult, error) {
	before, err := s.mascots.Get(ctx, userID, mascotID)
	if err != nil {
		return nil, err
	}

	after, err := s.mascots.AddExperience(ctx, userID, mascotID, amount)
	if err != nil {
		return nil, err
	}

	s.publishMascot(userID, after)
	return &TrainResult{
		NewExperience: after.Experience,
		NewLevel:      after.Level,
		DidLevelUp:    after.Level > before.Level,
	}, nil
}

// Train runs one training session: fixed XP for the mascot plus the
// TRAIN_MASCOT ledger reward for the user.
func (s *Service) Train(ctx context.Context, userID, mascotID string) (*TrainResult, error) {
	result, err := s.AddExperience(ctx, userID, mascotID, TrainExperience)
	if err != nil {
		return nil, err
	}

	if _, _, err := s.rewards.Award(ctx, userID, rewards.ActionTrainMascot); err != nil {
		slog.Warn("Training reward failed",
			slog.String("user_id", userID),
			slog.String("mascot_id", mascotID),
			slog.Any("error", err))
	}
	return result, nil
}

func (s *Service) publishMascot(userID string, payload any) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.Event{
		Kind:    events.KindMascotChanged,
		UserID:  userID,
		Payload: payload,
	})
}
