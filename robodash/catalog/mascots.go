package catalog

var Mascots = []MascotTemplate{
	{
		ID:          "robo-scout",
		Name:        "Robo Scout",
		Description: "A nimble recon unit, the usual first companion",
		Price:       50,
		BaseStats:   StatBlock{HP: 20, MP: 10, Agility: 8, Power: 4, Defense: 3},
		Rarity:      MascotCommon,
		Visual:      "mascots/robo-scout.png",
	},
	{
		ID:          "battle-bot",
		Name:        "Battle Bot",
		Description: "Front-line chassis with reinforced plating",
		Price:       120,
		BaseStats:   StatBlock{HP: 35, MP: 5, Agility: 4, Power: 9, Defense: 8},
		Rarity:      MascotCommon,
		Visual:      "mascots/battle-bot.png",
	},
	{
		ID:          "circuit-sage",
		Name:        "Circuit Sage",
		Description: "Support unit tuned for energy management",
		Price:       200,
		BaseStats:   StatBlock{HP: 22, MP: 28, Agility: 6, Power: 5, Defense: 4},
		Rarity:      MascotRare,
		Visual:      "mascots/circuit-sage.png",
	},
	{
		ID:          "turbo-hound",
		Name:        "Turbo Hound",
		Description: "Overclocked quadruped, fastest frame in the line",
		Price:       260,
		BaseStats:   StatBlock{HP: 26, MP: 12, Agility: 15, Power: 7, Defense: 4},
		Rarity:      MascotRare,
		Visual:      "mascots/turbo-hound.png",
	},
	{
		ID:          "nova-titan",
		Name:        "Nova Titan",
		Description: "Heavy assault frame salvaged from the beta fleet",
		Price:       480,
		BaseStats:   StatBlock{HP: 50, MP: 18, Agility: 5, Power: 14, Defense: 12},
		Rarity:      MascotEpic,
		Visual:      "mascots/nova-titan.png",
	},
	{
		ID:          "aurora-prime",
		Name:        "Aurora Prime",
		Description: "Prototype flagship, one of a handful ever minted",
		Price:       900,
		BaseStats:   StatBlock{HP: 60, MP: 30, Agility: 12, Power: 18, Defense: 14},
		Rarity:      MascotLegendary,
		Visual:      "mascots/aurora-prime.png",
	},
}
