package entity

import (
	"fmt"

	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
	"github.com/milk9111/raccoonrun/prefabs"
)

// NewSceneState creates the entity holding the world singletons: tuning,
// viewport, scene clock, scroll accumulator and debug overlay.
func NewSceneState(w *ecs.World, spec *prefabs.SceneSpec, vp component.Viewport) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("scene: world is nil")
	}
	if spec == nil {
		return 0, fmt.Errorf("scene: spec is nil")
	}

	tuning := spec.Tuning()
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.TuningComponent.Kind(), &tuning); err != nil {
		return 0, fmt.Errorf("scene: add tuning: %w", err)
	}
	if err := ecs.Add(w, ent, component.ViewportComponent.Kind(), &vp); err != nil {
		return 0, fmt.Errorf("scene: add viewport: %w", err)
	}
	if err := ecs.Add(w, ent, component.FrameTimeComponent.Kind(), &component.FrameTime{}); err != nil {
		return 0, fmt.Errorf("scene: add frame time: %w", err)
	}
	if err := ecs.Add(w, ent, component.ScrollComponent.Kind(), &component.Scroll{}); err != nil {
		return 0, fmt.Errorf("scene: add scroll: %w", err)
	}
	if err := ecs.Add(w, ent, component.DebugOverlayComponent.Kind(), &component.DebugOverlay{}); err != nil {
		return 0, fmt.Errorf("scene: add debug overlay: %w", err)
	}
	return ent, nil
}
