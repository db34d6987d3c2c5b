package mascots

import (
	"context"
	"errors"
	"testing"

	"github.com/mascotlabs/robodash/robodash/database/memory"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
	"github.com/mascotlabs/robodash/robodash/events"
	"github.com/mascotlabs/robodash/robodash/rewards"
)

func newTestService(t *testing.T) (*Service, *memory.Store, *rewards.Service) {
	t.Helper()
	store := memory.NewStore()
	rewardsSvc := rewards.NewService(store.Accounts(), events.NewBus())
	return NewService(store.Mascots(), rewardsSvc, events.NewBus()), store, rewardsSvc
}

func fund(t *testing.T, store *memory.Store, userID string, points int64) {
	t.Helper()
	ctx := context.Background()
	account, err := store.Accounts().GetOrCreate(ctx, userID)
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	account.Points = points
	if err := store.Accounts().Update(ctx, account); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
}

func TestService_Purchase_FirstMascotActive(t *testing.T) {
	s, store, rewardsSvc := newTestService(t)
	ctx := context.Background()
	fund(t, store, "u1", 50)

	mascot, err := s.Purchase(ctx, "u1", "robo-scout")
	if err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if !mascot.IsActive {
		t.Error("first mascot should be activated automatically")
	}
	if mascot.Level != 1 || mascot.Experience != 0 {
		t.Errorf("new mascot = level %d, %d xp, want level 1 with 0 xp", mascot.Level, mascot.Experience)
	}

	account, _ := rewardsSvc.GetAccount(ctx, "u1")
	if account.Points != 0 {
		t.Errorf("points after exact-price purchase = %d, want 0", account.Points)
	}
}

func TestService_Purchase_SecondMascotStaysInactive(t *testing.T) {
	s, store, _ := newTestService(t)
	ctx := context.Background()
	fund(t, store, "u1", 170)

	s.Purchase(ctx, "u1", "robo-scout")
	second, err := s.Purchase(ctx, "u1", "battle-bot")
	if err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if second.IsActive {
		t.Error("second mascot must not displace the active one")
	}
}

func TestService_Purchase_AlreadyOwned(t *testing.T) {
	s, store, rewardsSvc := newTestService(t)
	ctx := context.Background()
	fund(t, store, "u1", 200)

	s.Purchase(ctx, "u1", "robo-scout")
	if _, err := s.Purchase(ctx, "u1", "robo-scout"); !errors.Is(err, repositories.ErrAlreadyOwned) {
		t.Fatalf("repeat Purchase() error = %v, want ErrAlreadyOwned", err)
	}

	account, _ := rewardsSvc.GetAccount(ctx, "u1")
	if account.Points != 150 {
		t.Errorf("points after rejected purchase = %d, want 150 (charged once)", account.Points)
	}
}

func TestService_Purchase_InsufficientPoints(t *testing.T) {
	s, store, _ := newTestService(t)
	ctx := context.Background()
	fund(t, store, "u1", 49)

	if _, err := s.Purchase(ctx, "u1", "robo-scout"); !errors.Is(err, repositories.ErrInsufficientPoints) {
		t.Fatalf("Purchase() error = %v, want ErrInsufficientPoints", err)
	}

	owned, _ := s.Owned(ctx, "u1")
	if len(owned) != 0 {
		t.Errorf("owned = %d mascots after rejected purchase, want 0", len(owned))
	}
}

func TestService_Purchase_UnknownMascot(t *testing.T) {
	s, store, _ := newTestService(t)
	fund(t, store, "u1", 1000)

	if _, err := s.Purchase(context.Background(), "u1", "mecha-kraken"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Purchase(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestService_SetActive_SingleActive(t *testing.T) {
	s, store, _ := newTestService(t)
	ctx := context.Background()
	fund(t, store, "u1", 170)

	s.Purchase(ctx, "u1", "robo-scout")
	s.Purchase(ctx, "u1", "battle-bot")

	if err := s.SetActive(ctx, "u1", "battle-bot"); err != nil {
		t.Fatalf("SetActive() error = %v", err)
	}

	owned, _ := s.Owned(ctx, "u1")
	active := 0
	for _, m := range owned {
		if m.IsActive {
			active++
			if m.MascotID != "battle-bot" {
				t.Errorf("active mascot = %s, want battle-bot", m.MascotID)
			}
		}
	}
	if active != 1 {
		t.Errorf("active mascots = %d, want exactly 1", active)
	}

	if err := s.SetActive(ctx, "u1", "nova-titan"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("SetActive(unowned) error = %v, want ErrNotFound", err)
	}
}

func TestService_Active_NoneOwned(t *testing.T) {
	s, _, _ := newTestService(t)

	active, err := s.Active(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if active != nil {
		t.Errorf("Active() = %+v, want nil for empty roster", active)
	}
}

func TestService_Train_LevelUpAndReward(t *testing.T) {
	s, store, rewardsSvc := newTestService(t)
	ctx := context.Background()
	fund(t, store, "u1", 50)
	s.Purchase(ctx, "u1", "robo-scout")

	var last *TrainResult
	for i := 0; i < 4; i++ {
		result, err := s.Train(ctx, "u1", "robo-scout")
		if err != nil {
			t.Fatalf("Train() #%d error = %v", i+1, err)
		}
		if i < 3 && result.DidLevelUp {
			t.Errorf("session #%d reported a level up at %d xp", i+1, result.NewExperience)
		}
		last = result
	}

	if last.NewExperience != 100 || last.NewLevel != 2 || !last.DidLevelUp {
		t.Errorf("after 4 sessions: %d xp, level %d, levelUp=%v; want 100 xp, level 2, levelUp",
			last.NewExperience, last.NewLevel, last.DidLevelUp)
	}

	// Each session also pays the trainer.
	account, _ := rewardsSvc.GetAccount(ctx, "u1")
	if account.Points != 8 {
		t.Errorf("trainer points = %d, want 8 (4 sessions at 2 each)", account.Points)
	}
}

func TestService_AddExperience_UnownedMascot(t *testing.T) {
	s, _, _ := newTestService(t)

	if _, err := s.AddExperience(context.Background(), "u1", "robo-scout", 25); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("AddExperience(unowned) error = %v, want ErrNotFound", err)
	}
}
