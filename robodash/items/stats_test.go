package items

import (
	"context"
	"testing"

	"github.com/mascotlabs/robodash/robodash/catalog"
)

func TestTotalStats(t *testing.T) {
	base := catalog.StatBlock{HP: 20, MP: 10, Agility: 8, Power: 4, Defense: 3}

	tests := []struct {
		name     string
		equipped []catalog.ItemTemplate
		want     catalog.StatBlock
	}{
		{
			name: "no equipment",
			want: base,
		},
		{
			name: "deltas sum across items",
			equipped: []catalog.ItemTemplate{
				{Deltas: catalog.StatBlock{HP: 3, Defense: 2, Agility: -1}},
				{Deltas: catalog.StatBlock{MP: 4}},
			},
			want: catalog.StatBlock{HP: 23, MP: 14, Agility: 7, Power: 4, Defense: 5},
		},
		{
			name: "negative totals clamp at the floor",
			equipped: []catalog.ItemTemplate{
				{Deltas: catalog.StatBlock{Defense: -5, Agility: -10}},
				{Deltas: catalog.StatBlock{Defense: -5, MP: -20}},
			},
			want: catalog.StatBlock{HP: 20, MP: 1, Agility: 1, Power: 4, Defense: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalStats(base, tt.equipped); got != tt.want {
				t.Errorf("TotalStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestService_MascotStats(t *testing.T) {
	s, store, _ := newTestService(t)
	ctx := context.Background()
	ownMascot(t, store, "u1", "robo-scout")

	scrap, _ := catalog.ItemByID("scrap-plating")
	item := addItem(t, s, "u1", scrap)
	if _, err := s.Equip(ctx, "u1", "robo-scout", item.InstanceID); err != nil {
		t.Fatalf("Equip() error = %v", err)
	}

	stats, err := s.MascotStats(ctx, "u1", "robo-scout")
	if err != nil {
		t.Fatalf("MascotStats() error = %v", err)
	}

	// robo-scout base 20/10/8/4/3 plus scrap-plating +3 HP, +2 DEF, -1 AGI.
	want := catalog.StatBlock{HP: 23, MP: 10, Agility: 7, Power: 4, Defense: 5}
	if stats != want {
		t.Errorf("MascotStats() = %+v, want %+v", stats, want)
	}
}
