// Package catalog holds the static game data the ledger operates on: badge
// definitions, mascot templates, and item templates. Definitions live in code
// rather than the database, so a deploy is the unit of catalog change.
package catalog

// StatBlock is the five-stat spread shared by mascots and item deltas. Item
// deltas may be negative; aggregation clamps the final values.
type StatBlock struct {
	HP      int `json:"hp"`
	MP      int `json:"mp"`
	Agility int `json:"agility"`
	Power   int `json:"power"`
	Defense int `json:"defense"`
}

type MascotRarity string

const (
	MascotCommon    MascotRarity = "common"
	MascotRare      MascotRarity = "rare"
	MascotEpic      MascotRarity = "epic"
	MascotLegendary MascotRarity = "legendary"
)

type ItemRarity string

const (
	ItemCommon    ItemRarity = "common"
	ItemUncommon  ItemRarity = "uncommon"
	ItemRare      ItemRarity = "rare"
	ItemEpic      ItemRarity = "epic"
	ItemLegendary ItemRarity = "legendary"
)

// RarityWeights drive the two-stage random draw: a tier is picked with these
// weights out of 100, then an item uniformly within the tier.
var RarityWeights = map[ItemRarity]int{
	ItemCommon:    55,
	ItemUncommon:  25,
	ItemRare:      12,
	ItemEpic:      6,
	ItemLegendary: 2,
}

// RarityValues are display point-values per tier, not transactional prices.
var RarityValues = map[ItemRarity]int{
	ItemCommon:    10,
	ItemUncommon:  25,
	ItemRare:      50,
	ItemEpic:      100,
	ItemLegendary: 250,
}

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type MascotTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       int64        `json:"price"`
	BaseStats   StatBlock    `json:"base_stats"`
	Rarity      MascotRarity `json:"rarity"`
	Visual      string       `json:"visual"`
}

type ItemTemplate struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Rarity      ItemRarity `json:"rarity"`
	Deltas      StatBlock  `json:"deltas"`
	Visual      string     `json:"visual"`
}

// Item slot categories.
const (
	ItemTypeCore    = "core"
	ItemTypePlating = "plating"
	ItemTypeBooster = "booster"
	ItemTypeModule  = "module"
)

func BadgeByID(id string) (Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

func MascotByID(id string) (MascotTemplate, bool) {
	for _, m := range Mascots {
		if m.ID == id {
			return m, true
		}
	}
	return MascotTemplate{}, false
}

func ItemByID(id string) (ItemTemplate, bool) {
	for _, it := range Items {
		if it.ID == id {
			return it, true
		}
	}
	return ItemTemplate{}, false
}

func ItemsByRarity(rarity ItemRarity) []ItemTemplate {
	var out []ItemTemplate
	for _, it := range Items {
		if it.Rarity == rarity {
			out = append(out, it)
		}
	}
	return out
}

// SampleItems returns the first n catalog entries, used to seed new users.
func SampleItems(n int) []ItemTemplate {
	if n > len(Items) {
		n = len(Items)
	}
	return Items[:n]
}

// ItemValue is the display value of an item template's rarity tier.
func ItemValue(templateID string) int {
	it, ok := ItemByID(templateID)
	if !ok {
		return 0
	}
	return RarityValues[it.Rarity]
}
