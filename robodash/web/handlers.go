package web

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mascotlabs/robodash/robodash/assets"
	"github.com/mascotlabs/robodash/robodash/badges"
	"github.com/mascotlabs/robodash/robodash/catalog"
	"github.com/mascotlabs/robodash/robodash/items"
	"github.com/mascotlabs/robodash/robodash/mascots"
	"github.com/mascotlabs/robodash/robodash/rewards"
)

type Handlers struct {
	Rewards *rewards.Service
	Badges  *badges.Service
	Mascots *mascots.Service
	Items   *items.Service
	Search  *catalog.SearchService
	Assets  *assets.SpacesService
}

func (h *Handlers) Register(app *fiber.App) {
	api := app.Group("/api/v1")

	cat := api.Group("/catalog")
	cat.Get("/badges", h.catalogBadges)
	cat.Get("/mascots", h.catalogMascots)
	cat.Get("/items", h.catalogItems)
	cat.Get("/search", h.catalogSearch)

	profile := api.Group("/profile", RequireUser())
	profile.Get("/points", h.getPoints)
	profile.Post("/actions/:kind", h.recordAction)

	profile.Get("/badges", h.listBadges)
	profile.Post("/badges/evaluate", h.evaluateBadges)
	profile.Post("/badges/:badgeID", h.awardBadge)
	profile.Delete("/badges/:badgeID", h.removeBadge)

	profile.Get("/mascots", h.listMascots)
	profile.Get("/mascots/active", h.activeMascot)
	profile.Post("/mascots/:mascotID/purchase", h.purchaseMascot)
	profile.Post("/mascots/:mascotID/activate", h.activateMascot)
	profile.Post("/mascots/:mascotID/train", h.trainMascot)
	profile.Get("/mascots/:mascotID/stats", h.mascotStats)
	profile.Get("/mascots/:mascotID/equipment", h.listEquipment)
	profile.Post("/mascots/:mascotID/equipment/:instanceID", h.equipItem)
	profile.Delete("/mascots/:mascotID/equipment/:instanceID", h.unequipItem)

	profile.Get("/items", h.listItems)
	profile.Get("/items/value", h.inventoryValue)
	profile.Post("/items/seed", h.seedItems)
	profile.Post("/items/purchase", h.purchaseItem)
}

// visualURL leaves references untouched when no asset bucket is configured.
func (h *Handlers) visualURL(visual string) string {
	if h.Assets == nil {
		return visual
	}
	return h.Assets.URL(visual)
}

func (h *Handlers) catalogBadges(c *fiber.Ctx) error {
	return ok(c, h.Badges.Catalog())
}

type mascotTemplateResponse struct {
	catalog.MascotTemplate
	VisualURL string `json:"visual_url"`
}

func (h *Handlers) catalogMascots(c *fiber.Ctx) error {
	templates := h.Mascots.Catalog()
	out := make([]mascotTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, mascotTemplateResponse{MascotTemplate: t, VisualURL: h.visualURL(t.Visual)})
	}
	return ok(c, out)
}

type itemTemplateResponse struct {
	catalog.ItemTemplate
	VisualURL string `json:"visual_url"`
	Value     int    `json:"value"`
}

func (h *Handlers) catalogItems(c *fiber.Ctx) error {
	templates := h.Items.Catalog()
	out := make([]itemTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, itemTemplateResponse{
			ItemTemplate: t,
			VisualURL:    h.visualURL(t.Visual),
			Value:        catalog.RarityValues[t.Rarity],
		})
	}
	return ok(c, out)
}

func (h *Handlers) catalogSearch(c *fiber.Ctx) error {
	return ok(c, h.Search.Search(c.Query("q")))
}

func (h *Handlers) getPoints(c *fiber.Ctx) error {
	account, err := h.Rewards.GetAccount(c.UserContext(), userID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, account)
}

func (h *Handlers) recordAction(c *fiber.Ctx) error {
	kind := rewards.ActionKind(c.Params("kind"))
	account, awarded, err := h.Rewards.Award(c.UserContext(), userID(c), kind)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{
		"account": account,
		"awarded": awarded,
	})
}

func (h *Handlers) listBadges(c *fiber.Ctx) error {
	userBadges, err := h.Badges.List(c.UserContext(), userID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, userBadges)
}

func (h *Handlers) awardBadge(c *fiber.Ctx) error {
	awarded, err := h.Badges.Award(c.UserContext(), userID(c), c.Params("badgeID"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"awarded": awarded})
}

func (h *Handlers) removeBadge(c *fiber.Ctx) error {
	removed, err := h.Badges.Remove(c.UserContext(), userID(c), c.Params("badgeID"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"removed": removed})
}

type evaluateRequest struct {
	CreatedAt    time.Time `json:"created_at"`
	WalletLinked bool      `json:"wallet_linked"`
}

func (h *Handlers) evaluateBadges(c *fiber.Ctx) error {
	var req evaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	awarded, err := h.Badges.AutoEvaluate(c.UserContext(), userID(c), badges.ProfileFacts{
		CreatedAt:    req.CreatedAt,
		WalletLinked: req.WalletLinked,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"awarded": awarded})
}

func (h *Handlers) listMascots(c *fiber.Ctx) error {
	owned, err := h.Mascots.Owned(c.UserContext(), userID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, owned)
}

func (h *Handlers) activeMascot(c *fiber.Ctx) error {
	active, err := h.Mascots.Active(c.UserContext(), userID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, active)
}

func (h *Handlers) purchaseMascot(c *fiber.Ctx) error {
	mascot, err := h.Mascots.Purchase(c.UserContext(), userID(c), c.Params("mascotID"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, mascot)
}

func (h *Handlers) activateMascot(c *fiber.Ctx) error {
	if err := h.Mascots.SetActive(c.UserContext(), userID(c), c.Params("mascotID")); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"active": c.Params("mascotID")})
}

func (h *Handlers) trainMascot(c *fiber.Ctx) error {
	result, err := h.Mascots.Train(c.UserContext(), userID(c), c.Params("mascotID"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}

func (h *Handlers) mascotStats(c *fiber.Ctx) error {
	stats, err := h.Items.MascotStats(c.UserContext(), userID(c), c.Params("mascotID"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, stats)
}

func (h *Handlers) listEquipment(c *fiber.Ctx) error {
	equipped, err := h.Items.Equipped(c.UserContext(), userID(c), c.Params("mascotID"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, equipped)
}

func (h *Handlers) equipItem(c *fiber.Ctx) error {
	item, err := h.Items.Equip(c.UserContext(), userID(c), c.Params("mascotID"), c.Params("instanceID"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, item)
}

func (h *Handlers) unequipItem(c *fiber.Ctx) error {
	item, err := h.Items.Unequip(c.UserContext(), userID(c), c.Params("mascotID"), c.Params("instanceID"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, item)
}

func (h *Handlers) listItems(c *fiber.Ctx) error {
	owned, err := h.Items.Owned(c.UserContext(), userID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, owned)
}

func (h *Handlers) inventoryValue(c *fiber.Ctx) error {
	value, err := h.Items.InventoryValue(c.UserContext(), userID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"value": value})
}

func (h *Handlers) seedItems(c *fiber.Ctx) error {
	minted, err := h.Items.SeedStarter(c.UserContext(), userID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, minted)
}

func (h *Handlers) purchaseItem(c *fiber.Ctx) error {
	result, err := h.Items.PurchaseRandom(c.UserContext(), userID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}
