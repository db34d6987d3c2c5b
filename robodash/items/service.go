// Package items is the inventory and equip engine: owned item instances,
// rarity-weighted acquisition, and the per-mascot equipment rules (three
// slots per mascot, one mascot per item instance).
package items

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/mascotlabs/robodash/robodash/catalog"
	"github.com/mascotlabs/robodash/robodash/database/models"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
	"github.com/mascotlabs/robodash/robodash/events"
	"github.com/mascotlabs/robodash/robodash/rewards"
)

// RandomItemPrice is the fixed cost of a random item draw.
const RandomItemPrice = 50

// StarterItemCount is how many catalog samples a brand-new profile gets.
const StarterItemCount = 3

// OwnedItem is an instance row hydrated with its catalog template.
type OwnedItem struct {
	*models.UserItem
	Template catalog.ItemTemplate `json:"template"`
}

type PurchaseResult struct {
	Item            *models.UserItem     `json:"item"`
	Template        catalog.ItemTemplate `json:"template"`
	RemainingPoints int64                `json:"remaining_points"`
}

type Service struct {
	items     repositories.ItemRepository
	mascots   repositories.MascotRepository
	rewards   *rewards.Service
	bus       *events.Bus
	generator *Generator
}

func NewService(items repositories.ItemRepository, mascots repositories.MascotRepository, rewardsSvc *rewards.Service, bus *events.Bus, generator *Generator) *Service {
	return &Service{
		items:     items,
		mascots:   mascots,
		rewards:   rewardsSvc,
		bus:       bus,
		generator: generator,
	}
}

func (s *Service) Catalog() []catalog.ItemTemplate {
	return catalog.Items
}

func (s *Service) Generate() catalog.ItemTemplate {
	return s.generator.Generate()
}

func (s *Service) Owned(ctx context.Context, userID string) ([]OwnedItem, error) {
	rows, err := s.items.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]OwnedItem, 0, len(rows))
	for _, row := range rows {
		template, ok := catalog.ItemByID(row.TemplateID)
		if !ok {
			slog.Warn("Owned item references unknown template",
				slog.String("user_id", userID),
				slog.String("template_id", row.TemplateID))
			continue
		}
		out = append(out, OwnedItem{UserItem: row, Template: template})
	}
	return out, nil
}

// SeedStarter mints the sample items for a brand-new profile. A non-empty
// inventory is left untouched, so the call is repeat-safe.
func (s *Service) SeedStarter(ctx context.Context, userID string) ([]*models.UserItem, error) {
	existing, err := s.items.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, nil
	}

	var minted []*models.UserItem
	for _, template := range catalog.SampleItems(StarterItemCount) {
		item, err := s.AddToInventory(ctx, userID, template)
		if err != nil {
			return minted, err
		}
		minted = append(minted, item)
	}
	return minted, nil
}

// AddToInventory mints a fresh instance of the template for the user.
func (s *Service) AddToInventory(ctx context.Context, userID string, template catalog.ItemTemplate) (*models.UserItem, error) {
	item := &models.UserItem{
		InstanceID: s.mintInstanceID(template.ID),
		TemplateID: template.ID,
		UserID:     userID,
		ObtainedAt: time.Now(),
	}
	if err := s.items.Add(ctx, item); err != nil {
		return nil, err
	}

	s.publishItem(userID, item)
	return item, nil
}

// PurchaseRandom debits the fixed draw price and mints a weighted-random
// item, as one transaction.
func (s *Service) PurchaseRandom(ctx context.Context, userID string) (*PurchaseResult, error) {
	template := s.generator.Generate()
	item := &models.UserItem{
		InstanceID: s.mintInstanceID(template.ID),
		TemplateID: template.ID,
		UserID:     userID,
		ObtainedAt: time.Now(),
	}

	remaining, err := s.items.Purchase(ctx, item, RandomItemPrice)
	if err != nil {
		return nil, err
	}

	s.publishItem(userID, item)
	s.rewards.PublishBalance(ctx, userID)
	return &PurchaseResult{
		Item:            item,
		Template:        template,
		RemainingPoints: remaining,
	}, nil
}

// Equip assigns an owned instance to an owned mascot, subject to the
// three-slot cap and the one-mascot-per-instance rule.
func (s *Service) Equip(ctx context.Context, userID, mascotID, instanceID string) (*models.UserItem, error) {
	item, err := s.items.Get(ctx, userID, instanceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.mascots.Get(ctx, userID, mascotID); err != nil {
		return nil, err
	}

	if err := s.items.Equip(ctx, userID, mascotID, instanceID); err != nil {
		return nil, err
	}

	s.publishItem(userID, item)
	return item, nil
}

func (s *Service) Unequip(ctx context.Context, userID, mascotID, instanceID string) (*models.UserItem, error) {
	removed, err := s.items.Unequip(ctx, userID, mascotID, instanceID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, repositories.ErrNotEquipped
	}

	item, err := s.items.Get(ctx, userID, instanceID)
	if err != nil {
		return nil, err
	}
	s.publishItem(userID, item)
	return item, nil
}

// IsEquipped reports whether the instance is assigned to any of the user's
// mascots.
func (s *Service) IsEquipped(ctx context.Context, userID, instanceID string) (bool, error) {
	return s.items.IsEquipped(ctx, userID, instanceID)
}

// Equipped lists the items currently assigned to a mascot, hydrated.
func (s *Service) Equipped(ctx context.Context, userID, mascotID string) ([]OwnedItem, error) {
	assignments, err := s.items.GetEquipment(ctx, userID, mascotID)
	if err != nil {
		return nil, err
	}

	out := make([]OwnedItem, 0, len(assignments))
	for _, eq := range assignments {
		item, err := s.items.Get(ctx, userID, eq.InstanceID)
		if err != nil {
			return nil, err
		}
		template, ok := catalog.ItemByID(item.TemplateID)
		if !ok {
			continue
		}
		out = append(out, OwnedItem{UserItem: item, Template: template})
	}
	return out, nil
}

// InventoryValue sums the display value of every owned instance.
func (s *Service) InventoryValue(ctx context.Context, userID string) (int, error) {
	rows, err := s.items.GetByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, row := range rows {
		total += catalog.ItemValue(row.TemplateID)
	}
	return total, nil
}

// mintInstanceID builds a globally unique instance id: template, snowflake
// (which encodes the acquisition millisecond), and a short random suffix.
func (s *Service) mintInstanceID(templateID string) string {
	return fmt.Sprintf("%s-%d-%04x", templateID, snowflake.New(time.Now()), s.generator.intn(0x10000))
}

func (s *Service) publishItem(userID string, item *models.UserItem) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.Event{
		Kind:    events.KindItemChanged,
		UserID:  userID,
		Payload: item,
	})
}
