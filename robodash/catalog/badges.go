package catalog

// Badge IDs referenced by the auto-award rules.
const (
	BadgeEarlyAdopter     = "early_adopter"
	BadgeWeb3Explorer     = "web3_explorer"
	BadgeBlockchainMaster = "blockchain_master"
	BadgeCommunityPillar  = "community_pillar"
	BadgeCryptoWizard     = "crypto_wizard"
)

var Badges = []Badge{
	{
		ID:          BadgeEarlyAdopter,
		Name:        "Early Adopter",
		Description: "Joined during the launch window",
		Color:       "#f59e0b",
	},
	{
		ID:          BadgeWeb3Explorer,
		Name:        "Web3 Explorer",
		Description: "Linked a wallet to the profile",
		Color:       "#3b82f6",
	},
	{
		ID:          BadgeBlockchainMaster,
		Name:        "Blockchain Master",
		Description: "Completed every guide chapter",
		Color:       "#8b5cf6",
	},
	{
		ID:          BadgeCommunityPillar,
		Name:        "Community Pillar",
		Description: "Recognized community contributor",
		Color:       "#10b981",
	},
	{
		ID:          BadgeCryptoWizard,
		Name:        "Crypto Wizard",
		Description: "Reached the top reward tier",
		Color:       "#ec4899",
	},
}
