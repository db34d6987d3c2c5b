package items

import (
	"context"

	"github.com/mascotlabs/robodash/robodash/catalog"
)

// statFloor is the minimum any aggregated stat can reach, no matter how
// negative the equipped deltas sum.
const statFloor = 1

// TotalStats sums a mascot's base stats with each equipped template's
// deltas, clamping every field at the floor.
func TotalStats(base catalog.StatBlock, equipped []catalog.ItemTemplate) catalog.StatBlock {
	total := base
	for _, it := range equipped {
		total.HP += it.Deltas.HP
		total.MP += it.Deltas.MP
		total.Agility += it.Deltas.Agility
		total.Power += it.Deltas.Power
		total.Defense += it.Deltas.Defense
	}

	clamp := func(v int) int {
		if v < statFloor {
			return statFloor
		}
		return v
	}
	total.HP = clamp(total.HP)
	total.MP = clamp(total.MP)
	total.Agility = clamp(total.Agility)
	total.Power = clamp(total.Power)
	total.Defense = clamp(total.Defense)
	return total
}

// MascotStats computes the aggregate stat block for one of the user's
// mascots from its template and current equipment.
func (s *Service) MascotStats(ctx context.Context, userID, mascotID string) (catalog.StatBlock, error) {
	template, ok := catalog.MascotByID(mascotID)
	if !ok {
		return catalog.StatBlock{}, nil
	}

	equipped, err := s.Equipped(ctx, userID, mascotID)
	if err != nil {
		return catalog.StatBlock{}, err
	}

	templates := make([]catalog.ItemTemplate, 0, len(equipped))
	for _, it := range equipped {
		templates = append(templates, it.Template)
	}
	return TotalStats(template.BaseStats, templates), nil
}
