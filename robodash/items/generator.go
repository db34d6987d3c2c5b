package items

import (
	"math/rand"
	"sync"

	"github.com/mascotlabs/robodash/robodash/catalog"
)

// rarityOrder fixes the pool layout; map iteration order must not influence
// the draw.
var rarityOrder = []catalog.ItemRarity{
	catalog.ItemCommon,
	catalog.ItemUncommon,
	catalog.ItemRare,
	catalog.ItemEpic,
	catalog.ItemLegendary,
}

// Generator performs the two-stage weighted draw: a rarity tier picked from
// a pool where each tier appears weight-many times, then a uniform pick
// among the catalog items of that tier. Item-level probability is therefore
// tierWeight/100/itemsInTier, not a flat per-item weight.
//
// The source is deliberately pseudo-random; this is a cosmetic mechanic,
// not a fairness-guaranteed gamble.
type Generator struct {
	mu   sync.Mutex
	rng  *rand.Rand
	pool []catalog.ItemRarity
}

func NewGenerator(seed int64) *Generator {
	pool := make([]catalog.ItemRarity, 0, 100)
	for _, rarity := range rarityOrder {
		for i := 0; i < catalog.RarityWeights[rarity]; i++ {
			pool = append(pool, rarity)
		}
	}
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		pool: pool,
	}
}

func (g *Generator) Generate() catalog.ItemTemplate {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		rarity := g.pool[g.rng.Intn(len(g.pool))]
		candidates := catalog.ItemsByRarity(rarity)
		if len(candidates) == 0 {
			// A tier with no catalog entries rerolls.
			continue
		}
		return candidates[g.rng.Intn(len(candidates))]
	}
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}
