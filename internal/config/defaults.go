package config

import (
	_ "embed"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

// DefaultSurvivalConfig returns the built-in survival configuration.
// It mirrors defaults/survival.yaml and is used when the embedded file
// cannot be parsed.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		World: WorldConfig{
			Width:        220,
			Height:       85,
			TileSize:     24,
			SurfaceStart: 44,
			SurfaceMin:   34,
			SurfaceMax:   58,
			DirtDepth:    4,
			Pond:         PondConfig{X0: 18, X1: 40, Y0: 43, Y1: 49},
			Trees: TreeConfig{
				Count:        50,
				EdgeMargin:   6,
				TrunkMin:     3,
				TrunkMax:     6,
				CanopyRadius: 2,
				CanopyChance: 0.62,
			},
			Villages: []int{65, 95, 130, 155},
			House:    HouseConfig{Width: 10, Height: 6},
		},
		Physics: PhysicsConfig{
			Gravity:      2400,
			JumpVelocity: 880,
			MoveSpeed:    220,
			RunSpeed:     360,
			MaxDT:        0.05,
		},
		Player: PlayerConfig{
			SpawnX:             12,
			SpawnY:             12,
			Width:              18,
			Height:             42,
			MaxHP:              100,
			MaxHunger:          100,
			HungerDrainPerSec:  1.0 / 60.0,
			StarveDamagePerSec: 10,
			InventorySlots:     25,
			HotbarSlots:        5,
			StartItems: []ItemCount{
				{Item: "apple", Count: 4},
				{Item: "plank", Count: 12},
			},
		},
		Mining: MiningConfig{
			RangeTiles:        6,
			PickaxeMultiplier: 2.2,
		},
		Chest: ChestConfig{
			Slots:        12,
			PurgeOnBreak: false,
		},
		Progression: ProgressionConfig{
			DayCycleSec: 300,
			WinDays:     7,
		},
		Input: InputConfig{
			HoldMillis: 450,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSurvivalYAML
}
