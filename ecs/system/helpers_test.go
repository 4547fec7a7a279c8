package system

import (
	"testing"
	"time"

	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
)

var testViewport = component.Viewport{Width: 1280, Height: 720}

// newSceneWorld builds a world holding only the scene singletons.
func newSceneWorld(t *testing.T, vp component.Viewport, dt time.Duration) (*ecs.World, *component.FrameTime) {
	t.Helper()
	w := ecs.NewWorld()
	state := ecs.CreateEntity(w)
	tuning := component.DefaultTuning()
	ft := &component.FrameTime{Delta: dt, Now: dt}
	mustAdd(t, ecs.Add(w, state, component.TuningComponent.Kind(), &tuning))
	mustAdd(t, ecs.Add(w, state, component.ViewportComponent.Kind(), &vp))
	mustAdd(t, ecs.Add(w, state, component.FrameTimeComponent.Kind(), ft))
	mustAdd(t, ecs.Add(w, state, component.ScrollComponent.Kind(), &component.Scroll{}))
	mustAdd(t, ecs.Add(w, state, component.DebugOverlayComponent.Kind(), &component.DebugOverlay{}))
	return w, ft
}

func addCharacter(t *testing.T, w *ecs.World, c *component.Character, x float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, e, component.CharacterComponent.Kind(), c))
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x}))
	return e
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}
