package system

import (
	"testing"

	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
)

func TestAdvanceFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame int
		bound int
		want  int
	}{
		{"step", 1, 11, 2},
		{"wrap", 11, 11, 1},
		{"past_bound_after_pose_change", 9, 3, 1},
		{"zero", 0, 11, 1},
		{"single_frame", 1, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AdvanceFrame(tc.frame, tc.bound); got != tc.want {
				t.Fatalf("AdvanceFrame(%d, %d) = %d, want %d", tc.frame, tc.bound, got, tc.want)
			}
		})
	}
}

func TestAnimationSystem(t *testing.T) {
	frames := map[component.Pose]int{
		component.PoseIdle:      11,
		component.PoseCrouching: 3,
	}
	tests := []struct {
		name  string
		pose  component.Pose
		frame int
		ticks int
		want  int
	}{
		{"no_ticks", component.PoseIdle, 4, 0, 4},
		{"one_tick", component.PoseIdle, 4, 1, 5},
		{"catch_up_wraps", component.PoseIdle, 10, 3, 2},
		{"pose_bound", component.PoseCrouching, 3, 1, 1},
		{"unknown_pose_wraps_at_one", component.PoseJumping, 1, 5, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, ft := newSceneWorld(t, testViewport, 0)
			e := addCharacter(t, w, &component.Character{Pose: tc.pose}, 100)
			anim := &component.Animation{Frame: tc.frame, MaxFrames: frames}
			mustAdd(t, ecs.Add(w, e, component.AnimationComponent.Kind(), anim))
			ft.AnimationTicks = tc.ticks

			NewAnimationSystem().Update(w)
			if anim.Frame != tc.want {
				t.Fatalf("frame = %d, want %d", anim.Frame, tc.want)
			}
		})
	}
}
