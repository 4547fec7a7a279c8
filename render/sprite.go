package render

import (
	"fmt"

	"github.com/milk9111/raccoonrun/ecs/component"
)

// DisplayFrame maps a 1-based frame index to the numbering of the sprite
// files, which only ship odd frames.
func DisplayFrame(frame int) string {
	if frame < 1 {
		frame = 1
	}
	return fmt.Sprintf("%04d", frame*2-1)
}

// SpritePath returns the assets-relative sprite for a pose and frame.
// Idle frames carry no name prefix.
func SpritePath(pose component.Pose, frame int) string {
	num := DisplayFrame(frame)
	switch pose {
	case component.PoseJumping:
		return "raccoon/jump/jump" + num + ".png"
	case component.PoseCrouching:
		return "raccoon/crouch/crouch" + num + ".png"
	case component.PoseRunning:
		return "raccoon/run/run" + num + ".png"
	default:
		return "raccoon/idle/" + num + ".png"
	}
}
