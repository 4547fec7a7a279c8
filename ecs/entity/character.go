package entity

import (
	"fmt"

	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
	"github.com/milk9111/raccoonrun/prefabs"
)

// NewCharacter spawns the raccoon idle at its start position, facing right.
func NewCharacter(w *ecs.World, spec *prefabs.SceneSpec) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("character: world or spec is nil")
	}

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.CharacterComponent.Kind(), &component.Character{
		Pose:   component.PoseIdle,
		Facing: component.FacingRight,
	}); err != nil {
		return 0, fmt.Errorf("character: add state: %w", err)
	}
	if err := ecs.Add(w, ent, component.CharacterStateMachineComponent.Kind(), &component.CharacterStateMachine{}); err != nil {
		return 0, fmt.Errorf("character: add state machine: %w", err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{X: spec.Character.StartX}); err != nil {
		return 0, fmt.Errorf("character: add transform: %w", err)
	}
	if err := ecs.Add(w, ent, component.AnimationComponent.Kind(), &component.Animation{
		Frame:     1,
		MaxFrames: spec.FrameCounts(),
	}); err != nil {
		return 0, fmt.Errorf("character: add animation: %w", err)
	}
	return ent, nil
}
