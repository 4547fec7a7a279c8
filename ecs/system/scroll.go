package system

import (
	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
)

// ScrollSystem moves the background at the game speed, whether or not the
// character still travels.
type ScrollSystem struct{}

func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ctx, ok := loadSceneContext(w)
	if !ok {
		return
	}

	delta := ctx.tuning.GameSpeed * ctx.frame.Scale()
	ecs.ForEach(w, component.ScrollComponent.Kind(), func(_ ecs.Entity, sc *component.Scroll) {
		sc.Offset -= delta
	})
}
