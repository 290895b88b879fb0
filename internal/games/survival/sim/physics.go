package sim

import (
	"math"

	"github.com/vovakirdan/tui-survival/internal/config"
	"github.com/vovakirdan/tui-survival/internal/core"
)

// RectCollides reports whether box overlaps any solid tile. Only the tiles
// covered by the box plus a one-tile margin are scanned.
func RectCollides(w *World, box core.RectF, tile float64) bool {
	left := core.FloorDiv(box.X, tile)
	right := core.FloorDiv(box.Right(), tile)
	top := core.FloorDiv(box.Y, tile)
	bottom := core.FloorDiv(box.Bottom(), tile)

	for ty := top - 1; ty <= bottom+1; ty++ {
		for tx := left - 1; tx <= right+1; tx++ {
			if !Block(w.Tile(tx, ty)).Solid {
				continue
			}
			x, y, size := tileRect(tx, ty, tile)
			if box.Intersects(core.NewRectF(x, y, size, size)) {
				return true
			}
		}
	}
	return false
}

// MoveCollide displaces the body by (dx, dy), resolving x then y. When a
// full axis move overlaps a solid tile it is undone and replayed one unit
// at a time, stopping before the first colliding unit.
func MoveCollide(w *World, b *Body, dx, dy, tile float64) {
	x0 := b.X
	b.X += dx
	if RectCollides(w, b.Box(), tile) {
		b.X = x0
		step := unitStep(dx)
		for i := 0; i < int(math.Abs(dx)); i++ {
			b.X += step
			if RectCollides(w, b.Box(), tile) {
				b.X -= step
				break
			}
		}
	}

	y0 := b.Y
	b.Y += dy
	if RectCollides(w, b.Box(), tile) {
		b.Y = y0
		step := unitStep(dy)
		for i := 0; i < int(math.Abs(dy)); i++ {
			b.Y += step
			if RectCollides(w, b.Box(), tile) {
				b.Y -= step
				break
			}
		}
	}
}

func unitStep(d float64) float64 {
	if d < 0 {
		return -1
	}
	return 1
}

// Body is a moving axis-aligned box.
type Body struct {
	X, Y     float64 // Top-left corner in world units
	W, H     float64
	VX, VY   float64
	OnGround bool
}

// Box returns the collision box.
func (b *Body) Box() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Center returns the box center.
func (b *Body) Center() (float64, float64) {
	return b.Box().Center()
}

// StepBody applies one tick of horizontal intent, jumping, gravity and
// collision resolution to b.
func StepBody(w *World, b *Body, move int, jump, run bool, dt float64, phys config.PhysicsConfig, tile float64) {
	speed := phys.MoveSpeed
	if run {
		speed = phys.RunSpeed
	}
	b.VX = float64(move) * speed

	if jump && b.OnGround {
		b.VY = -phys.JumpVelocity
		b.OnGround = false
	}
	b.VY += phys.Gravity * dt

	MoveCollide(w, b, b.VX*dt, b.VY*dt, tile)

	b.OnGround = RectCollides(w, b.Box().Offset(0, 1), tile)
	if b.OnGround && b.VY > 0 {
		b.VY = 0
	}
}
