package items

import (
	"context"
	"errors"
	"testing"

	"github.com/mascotlabs/robodash/robodash/catalog"
	"github.com/mascotlabs/robodash/robodash/database/memory"
	"github.com/mascotlabs/robodash/robodash/database/models"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
	"github.com/mascotlabs/robodash/robodash/events"
	"github.com/mascotlabs/robodash/robodash/rewards"
)

func newTestService(t *testing.T) (*Service, *memory.Store, *rewards.Service) {
	t.Helper()
	store := memory.NewStore()
	rewardsSvc := rewards.NewService(store.Accounts(), events.NewBus())
	s := NewService(store.Items(), store.Mascots(), rewardsSvc, events.NewBus(), NewGenerator(1))
	return s, store, rewardsSvc
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

func ownMascot(t *testing.T, store *memory.Store, userID, mascotID string) {
	t.Helper()
	ctx := context.Background()
	if _, err := store.Accounts().GetOrCreate(ctx, userID); err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if _, err := store.Mascots().Purchase(ctx, userID, mascotID, 0); err != nil {
		t.Fatalf("mascot setup failed: %v", err)
	}
}

func addItem(t *testing.T, s *Service, userID string, template catalog.ItemTemplate) *models.UserItem {
	t.Helper()
	item, err := s.AddToInventory(context.Background(), userID, template)
	if err != nil {
		t.Fatalf("AddToInventory(%s) error = %v", template.ID, err)
	}
	return item
}

func TestService_SeedStarter_RepeatSafe(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	minted, err := s.SeedStarter(ctx, "u1")
	if err != nil {
		t.Fatalf("SeedStarter() error = %v", err)
	}
	if len(minted) != StarterItemCount {
		t.Fatalf("minted %d starter items, want %d", len(minted), StarterItemCount)
	}

	minted, err = s.SeedStarter(ctx, "u1")
	if err != nil {
		t.Fatalf("second SeedStarter() error = %v", err)
	}
	if minted != nil {
		t.Errorf("second seed minted %d items, want none", len(minted))
	}

	owned, _ := s.Owned(ctx, "u1")
	if len(owned) != StarterItemCount {
		t.Errorf("inventory = %d items after re-seed, want %d", len(owned), StarterItemCount)
	}
}

func TestService_PurchaseRandom(t *testing.T) {
	s, store, _ := newTestService(t)
	ctx := context.Background()
	fund(t, store, "u1", RandomItemPrice)

	result, err := s.PurchaseRandom(ctx, "u1")
	if err != nil {
		t.Fatalf("PurchaseRandom() error = %v", err)
	}
	if result.RemainingPoints != 0 {
		t.Errorf("remaining = %d, want 0", result.RemainingPoints)
	}
	if result.Item.TemplateID != result.Template.ID {
		t.Errorf("instance template %s does not match drawn template %s", result.Item.TemplateID, result.Template.ID)
	}

	if _, err := s.PurchaseRandom(ctx, "u1"); !errors.Is(err, repositories.ErrInsufficientPoints) {
		t.Fatalf("broke PurchaseRandom() error = %v, want ErrInsufficientPoints", err)
	}

	owned, _ := s.Owned(ctx, "u1")
	if len(owned) != 1 {
		t.Errorf("inventory = %d items after rejected draw, want 1", len(owned))
	}
}

func TestService_Equip_SlotCap(t *testing.T) {
	s, store, _ := newTestService(t)
	ctx := context.Background()
	ownMascot(t, store, "u1", "robo-scout")

	var instances []string
	for _, template := range catalog.SampleItems(4) {
		instances = append(instances, addItem(t, s, "u1", template).InstanceID)
	}

	for i := 0; i < models.MaxEquippedPerMascot; i++ {
		if _, err := s.Equip(ctx, "u1", "robo-scout", instances[i]); err != nil {
			t.Fatalf("Equip() #%d error = %v", i+1, err)
		}
	}

	if _, err := s.Equip(ctx, "u1", "robo-scout", instances[3]); !errors.Is(err, repositories.ErrMascotFull) {
		t.Fatalf("fourth Equip() error = %v, want ErrMascotFull", err)
	}

	equipped, _ := s.Equipped(ctx, "u1", "robo-scout")
	if len(equipped) != models.MaxEquippedPerMascot {
		t.Errorf("equipped = %d items, want %d", len(equipped), models.MaxEquippedPerMascot)
	}
}

func TestService_Equip_InstanceExclusive(t *testing.T) {
	s, store, _ := newTestService(t)
	ctx := context.Background()
	ownMascot(t, store, "u1", "robo-scout")
	ownMascot(t, store, "u1", "battle-bot")

	item := addItem(t, s, "u1", catalog.Items[0])
	if _, err := s.Equip(ctx, "u1", "robo-scout", item.InstanceID); err != nil {
		t.Fatalf("Equip() error = %v", err)
	}

	if _, err := s.Equip(ctx, "u1", "battle-bot", item.InstanceID); !errors.Is(err, repositories.ErrAlreadyEquipped) {
		t.Fatalf("cross-mascot Equip() error = %v, want ErrAlreadyEquipped", err)
	}

	equipped, err := s.IsEquipped(ctx, "u1", item.InstanceID)
	if err != nil || !equipped {
		t.Errorf("IsEquipped() = %v, %v, want true", equipped, err)
	}
}

func TestService_Equip_NotFound(t *testing.T) {
	s, store, _ := newTestService(t)
	ctx := context.Background()
	ownMascot(t, store, "u1", "robo-scout")
	item := addItem(t, s, "u1", catalog.Items[0])

	if _, err := s.Equip(ctx, "u1", "robo-scout", "ghost-instance"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Equip(unknown item) error = %v, want ErrNotFound", err)
	}
	if _, err := s.Equip(ctx, "u1", "nova-titan", item.InstanceID); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Equip(unowned mascot) error = %v, want ErrNotFound", err)
	}
}

func TestService_Unequip(t *testing.T) {
	s, store, _ := newTestService(t)
	ctx := context.Background()
	ownMascot(t, store, "u1", "robo-scout")
	item := addItem(t, s, "u1", catalog.Items[0])

	if _, err := s.Unequip(ctx, "u1", "robo-scout", item.InstanceID); !errors.Is(err, repositories.ErrNotEquipped) {
		t.Fatalf("Unequip(before equip) error = %v, want ErrNotEquipped", err)
	}

	s.Equip(ctx, "u1", "robo-scout", item.InstanceID)
	if _, err := s.Unequip(ctx, "u1", "robo-scout", item.InstanceID); err != nil {
		t.Fatalf("Unequip() error = %v", err)
	}

	equipped, _ := s.IsEquipped(ctx, "u1", item.InstanceID)
	if equipped {
		t.Error("instance still reported equipped after unequip")
	}
}

func TestService_InventoryValue(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	scrap, _ := catalog.ItemByID("scrap-plating")   // common, 10
	visor, _ := catalog.ItemByID("chrono-visor")    // legendary, 250
	addItem(t, s, "u1", scrap)
	addItem(t, s, "u1", visor)

	value, err := s.InventoryValue(ctx, "u1")
	if err != nil {
		t.Fatalf("InventoryValue() error = %v", err)
	}
	if value != 260 {
		t.Errorf("InventoryValue() = %d, want 260", value)
	}
}

func TestService_MintedInstanceIDsAreUnique(t *testing.T) {
	s, _, _ := newTestService(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		item := addItem(t, s, "u1", catalog.Items[0])
		if seen[item.InstanceID] {
			t.Fatalf("duplicate instance id %s", item.InstanceID)
		}
		seen[item.InstanceID] = true
	}
}
