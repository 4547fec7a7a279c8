package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
)

// MovementSystem advances the character along the scene: constant autoscroll,
// directional nudges, screen-edge clamp and the one-way wall latch.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ctx, ok := loadSceneContext(w)
	if !ok {
		return
	}

	scale := ctx.frame.Scale()
	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Character, tr *component.Transform) {
		Integrate(c, tr, *ctx.tuning, *ctx.viewport, scale)
	})
}

// Integrate applies one movement step of scale reference ticks.
func Integrate(c *component.Character, tr *component.Transform, t component.Tuning, vp component.Viewport, scale float64) {
	if c == nil || tr == nil {
		return
	}

	lo, hi := t.CharacterBounds(vp)
	limit := t.CharacterLimit(vp)

	if c.ReachedWall {
		tr.X = limit
	} else {
		tr.X += t.GameSpeed * scale
		for _, step := range c.Nudges {
			tr.X = cp.Clamp(tr.X+float64(step)*t.MoveSpeed, lo, hi)
		}
		tr.X = cp.Clamp(tr.X, lo, hi)
		if tr.X >= limit {
			tr.X = limit
			c.ReachedWall = true
		}
	}
	c.Nudges = c.Nudges[:0]

	tr.OffsetY = VerticalOffset(c.Pose, t)
}

// VerticalOffset is the lift of the character for pose.
func VerticalOffset(pose component.Pose, t component.Tuning) float64 {
	switch pose {
	case component.PoseJumping:
		return t.JumpOffset
	case component.PoseCrouching:
		return t.CrouchHeight()
	default:
		return 0
	}
}
