package system

import (
	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
)

// AnimationSystem advances frame indices on the animation cadence. It runs on
// its own scheduler and only ever writes Animation components.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ft, ok := ecs.Singleton(w, component.FrameTimeComponent.Kind())
	if !ok || ft.AnimationTicks <= 0 {
		return
	}

	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.CharacterComponent.Kind(), func(_ ecs.Entity, anim *component.Animation, c *component.Character) {
		bound := anim.Max(c.Pose)
		for i := 0; i < ft.AnimationTicks; i++ {
			anim.Frame = AdvanceFrame(anim.Frame, bound)
		}
	})
}

// AdvanceFrame returns the frame after frame, wrapping to 1 past bound.
func AdvanceFrame(frame, bound int) int {
	next := frame + 1
	if next > bound || next < 1 {
		return 1
	}
	return next
}
