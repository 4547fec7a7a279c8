package render

import (
	"strings"
	"testing"

	"github.com/milk9111/raccoonrun/ecs/component"
	"github.com/milk9111/raccoonrun/scene"
)

func TestDebugText(t *testing.T) {
	snap := scene.Snapshot{
		CharacterX:  120,
		Pose:        component.PoseCrouching,
		Facing:      component.FacingLeft,
		Frame:       7,
		ReachedWall: true,
		PursuerX:    900,
		WallX:       448,
	}
	got := DebugText(snap)
	for _, want := range []string{"pose: crouch (left) frame 7", "x: 120.0 wall: 448.0 reached: true", "gap: 780.0"} {
		if !strings.Contains(got, want) {
			t.Fatalf("debug text %q missing %q", got, want)
		}
	}
}
