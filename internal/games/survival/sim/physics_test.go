package sim

import (
	"testing"

	"github.com/vovakirdan/tui-survival/internal/config"
	"github.com/vovakirdan/tui-survival/internal/core"
)

func testPhysics() config.PhysicsConfig {
	return config.DefaultSurvivalConfig().Physics
}

func TestRectCollidesOpenEdges(t *testing.T) {
	w := NewWorld(10, 10, 12)
	w.SetTile(5, 5, BlockStone)
	w.SetTile(2, 2, BlockWater)

	tests := []struct {
		name string
		box  core.RectF
		want bool
	}{
		{"overlapping", core.NewRectF(115, 115, 10, 10), true},
		{"touching left edge", core.NewRectF(110, 120, 10, 10), false},
		{"touching top edge", core.NewRectF(125, 110, 10, 10), false},
		{"touching right edge", core.NewRectF(144, 125, 10, 10), false},
		{"one unit inside", core.NewRectF(111, 125, 10, 10), true},
		{"water is not solid", core.NewRectF(50, 50, 10, 10), false},
		{"outside world is solid", core.NewRectF(-5, 30, 10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectCollides(w, tt.box, testTile); got != tt.want {
				t.Errorf("RectCollides(%+v) = %v, want %v", tt.box, got, tt.want)
			}
		})
	}
}

func TestRestingBodyIsGrounded(t *testing.T) {
	w := flatWorld(20, 30, 20)
	b := &Body{X: 100, Y: 20*testTile - 42, W: 18, H: 42}

	StepBody(w, b, 0, false, false, 1.0/60, testPhysics(), testTile)

	if !b.OnGround {
		t.Error("body resting on the surface should be grounded")
	}
	if b.VY != 0 {
		t.Errorf("VY = %v, want 0", b.VY)
	}
	if b.Y != 20*testTile-42 {
		t.Errorf("Y = %v, resting body moved", b.Y)
	}
}

func TestFallingBodyLands(t *testing.T) {
	w := flatWorld(20, 30, 20)
	b := &Body{X: 100, Y: 150, W: 18, H: 42}
	surface := 20 * testTile

	for i := 0; i < 240; i++ {
		StepBody(w, b, 0, false, false, 1.0/60, testPhysics(), testTile)
		if RectCollides(w, b.Box(), testTile) {
			t.Fatalf("tick %d: body overlaps the ground at y=%v", i, b.Y)
		}
	}

	if !b.OnGround || b.VY != 0 {
		t.Fatalf("landed body: OnGround=%v VY=%v", b.OnGround, b.VY)
	}
	if bottom := b.Box().Bottom(); bottom > surface || bottom <= surface-1 {
		t.Errorf("bottom = %v, want within one unit above %v", bottom, surface)
	}
}

func TestWallStopsHorizontalMove(t *testing.T) {
	w := flatWorld(30, 30, 20)
	for y := 0; y < 20; y++ {
		w.SetTile(15, y, BlockStone)
	}
	b := &Body{X: 300, Y: 20*testTile - 42, W: 18, H: 42, OnGround: true}
	wall := 15 * testTile

	for i := 0; i < 60; i++ {
		StepBody(w, b, 1, false, true, 1.0/60, testPhysics(), testTile)
		if RectCollides(w, b.Box(), testTile) {
			t.Fatalf("tick %d: body penetrates the wall at x=%v", i, b.X)
		}
	}

	if right := b.Box().Right(); right > wall || right <= wall-1 {
		t.Errorf("right edge = %v, want within one unit left of %v", right, wall)
	}

	// Moving away is unobstructed.
	x := b.X
	StepBody(w, b, -1, false, false, 1.0/60, testPhysics(), testTile)
	if b.X >= x {
		t.Errorf("body did not move away from the wall: %v -> %v", x, b.X)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	phys := testPhysics()
	w := flatWorld(20, 30, 20)
	dt := 1.0 / 60

	grounded := &Body{X: 100, Y: 20*testTile - 42, W: 18, H: 42, OnGround: true}
	StepBody(w, grounded, 0, true, false, dt, phys, testTile)
	if grounded.OnGround || grounded.VY >= 0 {
		t.Errorf("grounded jump: OnGround=%v VY=%v", grounded.OnGround, grounded.VY)
	}
	wantVY := -phys.JumpVelocity + phys.Gravity*dt
	if grounded.VY != wantVY {
		t.Errorf("VY = %v, want %v", grounded.VY, wantVY)
	}

	airborne := &Body{X: 100, Y: 100, W: 18, H: 42}
	StepBody(w, airborne, 0, true, false, dt, phys, testTile)
	if airborne.VY != phys.Gravity*dt {
		t.Errorf("airborne jump changed velocity: VY=%v", airborne.VY)
	}
}

func TestCeilingStopsJump(t *testing.T) {
	w := flatWorld(20, 30, 20)
	for x := 0; x < 20; x++ {
		w.SetTile(x, 16, BlockStone)
	}
	b := &Body{X: 100, Y: 20*testTile - 42, W: 18, H: 42, OnGround: true}

	for i := 0; i < 30; i++ {
		StepBody(w, b, 0, i == 0, false, 1.0/60, testPhysics(), testTile)
		if RectCollides(w, b.Box(), testTile) {
			t.Fatalf("tick %d: body penetrates the ceiling", i)
		}
	}
	if b.Y < 17*testTile {
		t.Errorf("Y = %v, body passed through the ceiling", b.Y)
	}
}

func TestRunIsFasterThanWalk(t *testing.T) {
	phys := testPhysics()
	w := flatWorld(40, 30, 20)
	walk := &Body{X: 100, Y: 20*testTile - 42, W: 18, H: 42, OnGround: true}
	run := *walk

	StepBody(w, walk, 1, false, false, 0.05, phys, testTile)
	StepBody(w, &run, 1, false, true, 0.05, phys, testTile)

	if walk.VX != phys.MoveSpeed || run.VX != phys.RunSpeed {
		t.Errorf("VX walk=%v run=%v", walk.VX, run.VX)
	}
	if run.X <= walk.X {
		t.Errorf("run X %v should exceed walk X %v", run.X, walk.X)
	}
}
