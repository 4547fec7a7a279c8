package system

import (
	"testing"

	"github.com/milk9111/raccoonrun/ecs/component"
)

func TestIntegrate(t *testing.T) {
	tuning := component.DefaultTuning()
	wall := tuning.WallX(testViewport)

	tests := []struct {
		name    string
		vp      component.Viewport
		x       float64
		nudges  []int
		latched bool
		wantX   float64
		wantWal bool
	}{
		{"autoscroll", testViewport, 100, nil, false, 108, false},
		{"nudges_in_order", testViewport, 100, []int{1, 1}, false, 138, false},
		{"left_edge_clamp", testViewport, 0, []int{-1}, false, 0, false},
		{"reaches_wall", testViewport, wall - 3, nil, false, wall, true},
		{"latched_ignores_nudges", testViewport, wall, []int{-1, -1}, true, wall, true},
		{"narrow_viewport_pins_at_zero", component.Viewport{Width: 100, Height: 100}, 100, nil, false, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &component.Character{ReachedWall: tc.latched, Nudges: tc.nudges}
			tr := &component.Transform{X: tc.x}
			Integrate(c, tr, tuning, tc.vp, 1)
			if tr.X != tc.wantX {
				t.Fatalf("x = %v, want %v", tr.X, tc.wantX)
			}
			if c.ReachedWall != tc.wantWal {
				t.Fatalf("reachedWall = %v, want %v", c.ReachedWall, tc.wantWal)
			}
			if len(c.Nudges) != 0 {
				t.Fatalf("nudges should be consumed, got %v", c.Nudges)
			}
		})
	}
}

func TestIntegrateZeroScaleOnlyAppliesNudges(t *testing.T) {
	c := &component.Character{Nudges: []int{1}}
	tr := &component.Transform{X: 100}
	Integrate(c, tr, component.DefaultTuning(), testViewport, 0)
	if tr.X != 115 {
		t.Fatalf("x = %v, want 115", tr.X)
	}
}

func TestVerticalOffset(t *testing.T) {
	tuning := component.DefaultTuning()
	tests := []struct {
		pose component.Pose
		want float64
	}{
		{component.PoseIdle, 0},
		{component.PoseRunning, 0},
		{component.PoseJumping, tuning.JumpOffset},
		{component.PoseCrouching, tuning.CharacterSize / 2},
	}
	for _, tc := range tests {
		t.Run(tc.pose.String(), func(t *testing.T) {
			if got := VerticalOffset(tc.pose, tuning); got != tc.want {
				t.Fatalf("offset = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMovementSystemUsesFrameScale(t *testing.T) {
	w, ft := newSceneWorld(t, testViewport, 0)
	c := &component.Character{}
	e := addCharacter(t, w, c, 100)

	NewMovementSystem().Update(w)
	tr := transformOf(t, w, e)
	if tr.X != 100 {
		t.Fatalf("zero delta should not move the character, got %v", tr.X)
	}

	ft.Delta = 500 * ms
	NewMovementSystem().Update(w)
	want := 100 + component.DefaultTuning().GameSpeed*ft.Scale()
	if tr.X != want {
		t.Fatalf("x = %v, want %v", tr.X, want)
	}
}
