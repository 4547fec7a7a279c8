package render

import (
	"testing"

	"github.com/milk9111/raccoonrun/ecs/component"
)

func TestSpritePath(t *testing.T) {
	cases := []struct {
		name  string
		pose  component.Pose
		frame int
		want  string
	}{
		{"idle_first", component.PoseIdle, 1, "raccoon/idle/0001.png"},
		{"run_second", component.PoseRunning, 2, "raccoon/run/run0003.png"},
		{"jump_last", component.PoseJumping, 11, "raccoon/jump/jump0021.png"},
		{"crouch_mid", component.PoseCrouching, 6, "raccoon/crouch/crouch0011.png"},
		{"invalid_frame", component.PoseIdle, 0, "raccoon/idle/0001.png"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SpritePath(c.pose, c.frame); got != c.want {
				t.Fatalf("SpritePath(%v, %d) = %q, want %q", c.pose, c.frame, got, c.want)
			}
		})
	}
}
