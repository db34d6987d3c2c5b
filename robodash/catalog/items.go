package catalog

var Items = []ItemTemplate{
	// Common
	{
		ID:          "scrap-plating",
		Name:        "Scrap Plating",
		Description: "Salvaged hull panels, better than nothing",
		Type:        ItemTypePlating,
		Rarity:      ItemCommon,
		Deltas:      StatBlock{HP: 3, Defense: 2, Agility: -1},
		Visual:      "items/scrap-plating.png",
	},
	{
		ID:          "basic-servo",
		Name:        "Basic Servo",
		Description: "Entry-level actuator upgrade",
		Type:        ItemTypeBooster,
		Rarity:      ItemCommon,
		Deltas:      StatBlock{Agility: 2, Power: 1},
		Visual:      "items/basic-servo.png",
	},
	{
		ID:          "spark-cell",
		Name:        "Spark Cell",
		Description: "Disposable energy cell",
		Type:        ItemTypeCore,
		Rarity:      ItemCommon,
		Deltas:      StatBlock{MP: 4},
		Visual:      "items/spark-cell.png",
	},
	{
		ID:          "patch-kit",
		Name:        "Patch Kit",
		Description: "Field repairs for dented frames",
		Type:        ItemTypeModule,
		Rarity:      ItemCommon,
		Deltas:      StatBlock{HP: 5, MP: -1},
		Visual:      "items/patch-kit.png",
	},
	// Uncommon
	{
		ID:          "alloy-frame",
		Name:        "Alloy Frame",
		Description: "Lightweight composite skeleton",
		Type:        ItemTypePlating,
		Rarity:      ItemUncommon,
		Deltas:      StatBlock{HP: 6, Defense: 4, Agility: 1},
		Visual:      "items/alloy-frame.png",
	},
	{
		ID:          "pulse-driver",
		Name:        "Pulse Driver",
		Description: "Kinetic amplifier for striking limbs",
		Type:        ItemTypeBooster,
		Rarity:      ItemUncommon,
		Deltas:      StatBlock{Power: 5, MP: -2},
		Visual:      "items/pulse-driver.png",
	},
	{
		ID:          "flux-capacitor",
		Name:        "Flux Capacitor",
		Description: "Stores a surprising amount of charge",
		Type:        ItemTypeCore,
		Rarity:      ItemUncommon,
		Deltas:      StatBlock{MP: 8, HP: 2},
		Visual:      "items/flux-capacitor.png",
	},
	// Rare
	{
		ID:          "phase-shifter",
		Name:        "Phase Shifter",
		Description: "Blinks the chassis a half-step sideways",
		Type:        ItemTypeModule,
		Rarity:      ItemRare,
		Deltas:      StatBlock{Agility: 8, Defense: -2},
		Visual:      "items/phase-shifter.png",
	},
	{
		ID:          "titanium-shell",
		Name:        "Titanium Shell",
		Description: "Full-wrap armor, heavy but dependable",
		Type:        ItemTypePlating,
		Rarity:      ItemRare,
		Deltas:      StatBlock{HP: 10, Defense: 8, Agility: -4},
		Visual:      "items/titanium-shell.png",
	},
	{
		ID:          "overdrive-chip",
		Name:        "Overdrive Chip",
		Description: "Removes the factory power governor",
		Type:        ItemTypeCore,
		Rarity:      ItemRare,
		Deltas:      StatBlock{Power: 9, HP: -3},
		Visual:      "items/overdrive-chip.png",
	},
	// Epic
	{
		ID:          "quantum-core",
		Name:        "Quantum Core",
		Description: "Entangled reactor pair, half stays at the factory",
		Type:        ItemTypeCore,
		Rarity:      ItemEpic,
		Deltas:      StatBlock{HP: 8, MP: 12, Power: 6},
		Visual:      "items/quantum-core.png",
	},
	{
		ID:          "aegis-barrier",
		Name:        "Aegis Barrier",
		Description: "Projected shield lattice",
		Type:        ItemTypePlating,
		Rarity:      ItemEpic,
		Deltas:      StatBlock{Defense: 12, HP: 6, Agility: -2},
		Visual:      "items/aegis-barrier.png",
	},
	// Legendary
	{
		ID:          "singularity-engine",
		Name:        "Singularity Engine",
		Description: "Nobody knows how the first one was built",
		Type:        ItemTypeCore,
		Rarity:      ItemLegendary,
		Deltas:      StatBlock{HP: 15, MP: 15, Power: 12, Agility: 6, Defense: 8},
		Visual:      "items/singularity-engine.png",
	},
	{
		ID:          "chrono-visor",
		Name:        "Chrono Visor",
		Description: "Sees the hit before it lands",
		Type:        ItemTypeModule,
		Rarity:      ItemLegendary,
		Deltas:      StatBlock{Agility: 14, Defense: 10, MP: 6},
		Visual:      "items/chrono-visor.png",
	},
}
