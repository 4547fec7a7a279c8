package render

import (
	"github.com/milk9111/raccoonrun/ecs/component"
	"github.com/milk9111/raccoonrun/scene"
)

const (
	groundHeight   = 130.0
	characterFloor = 60.0
	portalWidth    = 240.0
	portalHeight   = 370.0
	portalFloor    = 3.0
)

// Box is an on-screen rectangle with a top-left origin.
type Box struct {
	X, Y, W, H float64
}

// CharacterBox places the character: standing sprites are 0.8 of the
// character size tall, crouching ones half, and a jump adds the jump height
// on top of the pose offset.
func CharacterBox(snap scene.Snapshot) Box {
	t := snap.Tuning
	height := t.CharacterSize * 0.8
	if snap.Pose == component.PoseCrouching {
		height = t.CharacterSize * 0.5
	}
	lift := snap.CharacterOffsetY + characterFloor
	if snap.Pose == component.PoseJumping {
		lift += t.JumpHeight
	}
	bottom := snap.Viewport.Height - lift
	return Box{X: snap.CharacterX, Y: bottom - height, W: t.CharacterSize, H: height}
}

// PortalBox places the pursuer.
func PortalBox(snap scene.Snapshot) Box {
	bottom := snap.Viewport.Height - (snap.PursuerY + portalFloor)
	return Box{X: snap.PursuerX, Y: bottom - portalHeight, W: portalWidth, H: portalHeight}
}
