package badges

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mascotlabs/robodash/robodash/catalog"
	"github.com/mascotlabs/robodash/robodash/database/memory"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
	"github.com/mascotlabs/robodash/robodash/events"
	"github.com/mascotlabs/robodash/robodash/rewards"
)

func newTestService() (*Service, *rewards.Service) {
	store := memory.NewStore()
	bus := events.NewBus()
	rewardsSvc := rewards.NewService(store.Accounts(), bus)
	return NewService(store.Badges(), rewardsSvc, bus), rewardsSvc
}

func TestService_Award_Idempotent(t *testing.T) {
	s, rewardsSvc := newTestService()
	ctx := context.Background()

	awarded, err := s.Award(ctx, "u1", catalog.BadgeEarlyAdopter)
	if err != nil || !awarded {
		t.Fatalf("first award: awarded=%v err=%v", awarded, err)
	}

	account, _ := rewardsSvc.GetAccount(ctx, "u1")
	if account.Points != 15 {
		t.Errorf("points after first award = %d, want 15", account.Points)
	}

	awarded, err = s.Award(ctx, "u1", catalog.BadgeEarlyAdopter)
	if err != nil || !awarded {
		t.Fatalf("repeat award: awarded=%v err=%v, want idempotent success", awarded, err)
	}

	account, _ = rewardsSvc.GetAccount(ctx, "u1")
	if account.Points != 15 {
		t.Errorf("points after repeat award = %d, want 15 (bonus granted once)", account.Points)
	}

	badges, _ := s.List(ctx, "u1")
	if len(badges) != 1 {
		t.Errorf("badge rows = %d, want 1", len(badges))
	}
}

func TestService_Award_InvalidBadge(t *testing.T) {
	s, _ := newTestService()

	awarded, err := s.Award(context.Background(), "u1", "time_traveler")
	if awarded || !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Award(invalid) = %v, %v, want false, ErrNotFound", awarded, err)
	}
}

func TestService_Remove(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	s.Award(ctx, "u1", catalog.BadgeCryptoWizard)

	removed, err := s.Remove(ctx, "u1", catalog.BadgeCryptoWizard)
	if err != nil || !removed {
		t.Fatalf("Remove() = %v, %v, want true removal", removed, err)
	}

	removed, err = s.Remove(ctx, "u1", catalog.BadgeCryptoWizard)
	if err != nil || removed {
		t.Errorf("second Remove() = %v, %v, want false without error", removed, err)
	}
}

func TestService_AutoEvaluate(t *testing.T) {
	s, rewardsSvc := newTestService()
	ctx := context.Background()

	facts := ProfileFacts{
		CreatedAt:    EarlyAdopterCutoff.AddDate(0, -1, 0),
		WalletLinked: true,
	}

	awarded, err := s.AutoEvaluate(ctx, "u1", facts)
	if err != nil {
		t.Fatalf("AutoEvaluate() error = %v", err)
	}
	if len(awarded) != 2 {
		t.Fatalf("awarded = %v, want early_adopter and web3_explorer", awarded)
	}

	// A second pass rides on Award's idempotence: no new rows, no new points.
	if _, err := s.AutoEvaluate(ctx, "u1", facts); err != nil {
		t.Fatalf("second AutoEvaluate() error = %v", err)
	}
	badges, _ := s.List(ctx, "u1")
	if len(badges) != 2 {
		t.Errorf("badge rows after re-evaluate = %d, want 2", len(badges))
	}
	account, _ := rewardsSvc.GetAccount(ctx, "u1")
	if account.Points != 30 {
		t.Errorf("points after re-evaluate = %d, want 30", account.Points)
	}
}

func TestService_AutoEvaluate_NewerAccount(t *testing.T) {
	s, _ := newTestService()

	awarded, err := s.AutoEvaluate(context.Background(), "u1", ProfileFacts{
		CreatedAt:    time.Now(),
		WalletLinked: false,
	})
	if err != nil {
		t.Fatalf("AutoEvaluate() error = %v", err)
	}
	if len(awarded) != 0 {
		t.Errorf("awarded = %v, want none", awarded)
	}
}
