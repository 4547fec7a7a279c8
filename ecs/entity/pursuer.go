package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
	"github.com/milk9111/raccoonrun/prefabs"
)

// NewPursuer spawns the portal at the right edge of its travel band.
func NewPursuer(w *ecs.World, spec *prefabs.SceneSpec, vp component.Viewport) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("pursuer: world or spec is nil")
	}

	lo, hi := spec.Tuning().PursuerBand(vp)
	x := cp.Clamp(vp.Width-spec.Pursuer.Margin, lo, hi)

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.PursuerComponent.Kind(), &component.Pursuer{
		MultiplierCeiling: spec.Pursuer.MultiplierCeiling,
		Script:            spec.Pursuer.SpeedScript,
	}); err != nil {
		return 0, fmt.Errorf("pursuer: add state: %w", err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{X: x, Y: spec.Pursuer.Y}); err != nil {
		return 0, fmt.Errorf("pursuer: add transform: %w", err)
	}
	return ent, nil
}
