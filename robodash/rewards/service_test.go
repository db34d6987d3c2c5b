package rewards

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/mascotlabs/robodash/robodash/database/memory"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
	"github.com/mascotlabs/robodash/robodash/events"
	"github.com/mascotlabs/robodash/robodash/rewards/mock"
)

func newTestService() (*Service, *events.Bus) {
	bus := events.NewBus()
	return NewService(memory.NewStore().Accounts(), bus), bus
}

func TestService_GetAccount_LazyCreate(t *testing.T) {
	s, _ := newTestService()

	account, err := s.GetAccount(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetAccount() error = %v", err)
	}
	if account.Points != 0 || account.Level != 1 {
		t.Errorf("new account = %d points, level %d, want 0 points, level 1", account.Points, account.Level)
	}
}

func TestService_Award_LoginOncePerDay(t *testing.T) {
	s, _ := newTestService()
	day1 := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day1 }

	account, awarded, err := s.Award(context.Background(), "u1", ActionLogin)
	if err != nil {
		t.Fatalf("Award() error = %v", err)
	}
	if !awarded || account.Points != 5 {
		t.Errorf("first login: awarded=%v points=%d, want awarded with 5 points", awarded, account.Points)
	}
	if account.LastLogin.IsZero() {
		t.Error("first login should set last_login")
	}

	account, awarded, err = s.Award(context.Background(), "u1", ActionLogin)
	if err != nil {
		t.Fatalf("Award() error = %v", err)
	}
	if awarded || account.Points != 5 {
		t.Errorf("same-day login: awarded=%v points=%d, want no award and 5 points", awarded, account.Points)
	}

	s.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	account, awarded, err = s.Award(context.Background(), "u1", ActionLogin)
	if err != nil {
		t.Fatalf("Award() error = %v", err)
	}
	if !awarded || account.Points != 10 {
		t.Errorf("next-day login: awarded=%v points=%d, want awarded with 10 points", awarded, account.Points)
	}
}

func TestService_Award_OnceOnly(t *testing.T) {
	s, _ := newTestService()

	_, awarded, err := s.Award(context.Background(), "u1", ActionCompleteProfile)
	if err != nil || !awarded {
		t.Fatalf("first award: awarded=%v err=%v", awarded, err)
	}

	account, awarded, err := s.Award(context.Background(), "u1", ActionCompleteProfile)
	if err != nil {
		t.Fatalf("Award() error = %v", err)
	}
	if awarded || account.Points != 10 {
		t.Errorf("repeat once-only: awarded=%v points=%d, want no award and 10 points", awarded, account.Points)
	}
}

func TestService_Award_RepeatableAndLevelInvariant(t *testing.T) {
	s, _ := newTestService()

	var points int64
	for i := 0; i < 17; i++ {
		account, awarded, err := s.Award(context.Background(), "u1", ActionViewGuide)
		if err != nil {
			t.Fatalf("Award() #%d error = %v", i+1, err)
		}
		if !awarded {
			t.Fatalf("repeatable award #%d was rejected", i+1)
		}
		points = account.Points
		wantLevel := int(points/50) + 1
		if account.Level != wantLevel {
			t.Fatalf("level invariant broken at %d points: level=%d want %d", points, account.Level, wantLevel)
		}
	}
	if points != 51 {
		t.Errorf("points after 17 guide views = %d, want 51", points)
	}

	account, _ := s.GetAccount(context.Background(), "u1")
	if account.Level != 2 {
		t.Errorf("level at 51 points = %d, want 2", account.Level)
	}
	if got := account.CompletedActions[string(ActionViewGuide)].Count; got != 17 {
		t.Errorf("view guide count = %d, want 17", got)
	}
}

func TestService_Award_UnknownAction(t *testing.T) {
	s, _ := newTestService()

	_, _, err := s.Award(context.Background(), "u1", ActionKind("SOLVE_RIDDLE"))
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Award() error = %v, want ErrUnknownAction", err)
	}
}

func TestService_Debit(t *testing.T) {
	s, _ := newTestService()

	if _, err := s.Debit(context.Background(), "u1", 10); !errors.Is(err, repositories.ErrInsufficientPoints) {
		t.Errorf("overdraw: error = %v, want ErrInsufficientPoints", err)
	}

	for i := 0; i < 17; i++ {
		s.Award(context.Background(), "u1", ActionViewGuide)
	}

	account, err := s.Debit(context.Background(), "u1", 50)
	if err != nil {
		t.Fatalf("Debit() error = %v", err)
	}
	if account.Points != 1 || account.Level != 1 {
		t.Errorf("after debit: %d points, level %d, want 1 point, level 1", account.Points, account.Level)
	}
}

func TestService_Award_PublishesPointsChanged(t *testing.T) {
	s, bus := newTestService()

	var got []events.Event
	bus.Subscribe(func(e events.Event) { got = append(got, e) })

	s.Award(context.Background(), "u1", ActionViewGuide)
	s.Award(context.Background(), "u1", ActionLogin)
	s.Award(context.Background(), "u1", ActionLogin) // ineligible, no event

	if len(got) != 2 {
		t.Fatalf("published %d events, want 2", len(got))
	}
	for _, e := range got {
		if e.Kind != events.KindPointsChanged || e.UserID != "u1" {
			t.Errorf("unexpected event %+v", e)
		}
	}
}

func TestService_Award_RepositoryError(t *testing.T) {
	repo := mock.NewMockAccountRepository(gomock.NewController(t))
	repo.EXPECT().
		GetOrCreate(gomock.Any(), "u1").
		Return(nil, errors.New("connection refused"))

	s := NewService(repo, events.NewBus())
	if _, _, err := s.Award(context.Background(), "u1", ActionLogin); err == nil {
		t.Error("Award() should surface repository errors")
	}
}
