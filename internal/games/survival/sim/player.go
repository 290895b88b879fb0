package sim

import "github.com/vovakirdan/tui-survival/internal/config"

// Player is the controlled body with its vitals and inventory.
type Player struct {
	Body
	HP        float64
	Hunger    float64
	MaxHP     float64
	MaxHunger float64
	Inv       *Inventory
	// AttackCooldown is carried for tools with a swing delay; nothing
	// sets it yet and it only counts down.
	AttackCooldown float64
}

// NewPlayer creates a player at the configured spawn tile with full
// vitals and an empty inventory.
func NewPlayer(cfg config.PlayerConfig, tile float64) *Player {
	return &Player{
		Body: Body{
			X: float64(cfg.SpawnX) * tile,
			Y: float64(cfg.SpawnY) * tile,
			W: cfg.Width,
			H: cfg.Height,
		},
		HP:        cfg.MaxHP,
		Hunger:    cfg.MaxHunger,
		MaxHP:     cfg.MaxHP,
		MaxHunger: cfg.MaxHunger,
		Inv:       NewInventory(cfg.InventorySlots),
	}
}

// Alive reports whether the player has health left.
func (p *Player) Alive() bool {
	return p.HP > 0
}

// updateVitals drains hunger and, when starving, health.
func (p *Player) updateVitals(dt float64, cfg config.PlayerConfig) {
	p.Hunger = clampVital(p.Hunger-cfg.HungerDrainPerSec*dt, p.MaxHunger)
	if p.Hunger <= 0 {
		p.HP = clampVital(p.HP-cfg.StarveDamagePerSec*dt, p.MaxHP)
	}
	p.AttackCooldown = max(0, p.AttackCooldown-dt)
}

// applyFood adds a food effect to the vitals.
func (p *Player) applyFood(e FoodEffect) {
	p.Hunger = clampVital(p.Hunger+e.Hunger, p.MaxHunger)
	p.HP = clampVital(p.HP+e.HP, p.MaxHP)
}

func clampVital(v, hi float64) float64 {
	return min(max(v, 0), hi)
}
