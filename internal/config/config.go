// Package config provides YAML-based configuration loading and difficulty
// presets for the survival game.
package config

// SurvivalConfig contains all tunables of a survival run.
type SurvivalConfig struct {
	World       WorldConfig       `yaml:"world"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Mining      MiningConfig      `yaml:"mining"`
	Chest       ChestConfig       `yaml:"chest"`
	Progression ProgressionConfig `yaml:"progression"`
	Input       InputConfig       `yaml:"input"`
}

// WorldConfig defines the tile grid and its procedural generation.
type WorldConfig struct {
	Width        int         `yaml:"width"`
	Height       int         `yaml:"height"`
	TileSize     float64     `yaml:"tile_size"`     // World pixels per tile
	SurfaceStart int         `yaml:"surface_start"` // Initial random-walk height
	SurfaceMin   int         `yaml:"surface_min"`
	SurfaceMax   int         `yaml:"surface_max"`
	DirtDepth    int         `yaml:"dirt_depth"` // Dirt rows under the grass row
	Pond         PondConfig  `yaml:"pond"`
	Trees        TreeConfig  `yaml:"trees"`
	Villages     []int       `yaml:"villages"` // Columns where houses are placed
	House        HouseConfig `yaml:"house"`
}

// PondConfig is the rectangle [X0,X1) x [Y0,Y1) filled with water where empty.
type PondConfig struct {
	X0 int `yaml:"x0"`
	X1 int `yaml:"x1"`
	Y0 int `yaml:"y0"`
	Y1 int `yaml:"y1"`
}

// TreeConfig controls tree scattering.
type TreeConfig struct {
	Count        int     `yaml:"count"`
	EdgeMargin   int     `yaml:"edge_margin"` // Columns kept free at each world edge
	TrunkMin     int     `yaml:"trunk_min"`
	TrunkMax     int     `yaml:"trunk_max"`
	CanopyRadius int     `yaml:"canopy_radius"`
	CanopyChance float64 `yaml:"canopy_chance"`
}

// HouseConfig defines the village house footprint.
type HouseConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines player movement in world pixels and seconds.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	MoveSpeed    float64 `yaml:"move_speed"`
	RunSpeed     float64 `yaml:"run_speed"`
	MaxDT        float64 `yaml:"max_dt"` // Upper bound of a single tick delta
}

// PlayerConfig defines the player body, vitals and starting kit.
type PlayerConfig struct {
	SpawnX              int         `yaml:"spawn_x"` // Tile column
	SpawnY              int         `yaml:"spawn_y"` // Tile row
	Width               float64     `yaml:"width"`
	Height              float64     `yaml:"height"`
	MaxHP               float64     `yaml:"max_hp"`
	MaxHunger           float64     `yaml:"max_hunger"`
	HungerDrainPerSec   float64     `yaml:"hunger_drain_per_sec"`
	StarveDamagePerSec  float64     `yaml:"starve_damage_per_sec"`
	InventorySlots      int         `yaml:"inventory_slots"`
	HotbarSlots         int         `yaml:"hotbar_slots"`
	StartItems          []ItemCount `yaml:"start_items"`
}

// ItemCount names an item and a quantity.
type ItemCount struct {
	Item  string `yaml:"item"`
	Count int    `yaml:"count"`
}

// MiningConfig defines reach and tool bonuses.
type MiningConfig struct {
	RangeTiles        float64 `yaml:"range_tiles"`
	PickaxeMultiplier float64 `yaml:"pickaxe_multiplier"`
}

// ChestConfig defines chest capacity and lifecycle.
type ChestConfig struct {
	Slots int `yaml:"slots"`
	// PurgeOnBreak drops the chest contents when its block is mined, so a
	// chest placed later at the same tile rolls fresh loot.
	PurgeOnBreak bool `yaml:"purge_on_break"`
}

// ProgressionConfig defines the day cycle and the win condition.
type ProgressionConfig struct {
	DayCycleSec float64 `yaml:"day_cycle_sec"`
	WinDays     int     `yaml:"win_days"` // 0 disables the win condition
}

// InputConfig tunes how terminal key presses become held intents.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyEndless DifficultyPreset = "endless"
)

// ParsePreset converts a CLI string into a preset.
// Unknown or empty strings yield "" which keeps the config as loaded.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyEndless:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
