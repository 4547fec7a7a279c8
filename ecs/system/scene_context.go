package system

import (
	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
)

// sceneContext bundles the world singletons every simulation system reads.
type sceneContext struct {
	frame    *component.FrameTime
	tuning   *component.Tuning
	viewport *component.Viewport
}

func loadSceneContext(w *ecs.World) (sceneContext, bool) {
	ft, ok := ecs.Singleton(w, component.FrameTimeComponent.Kind())
	if !ok {
		return sceneContext{}, false
	}
	t, ok := ecs.Singleton(w, component.TuningComponent.Kind())
	if !ok {
		return sceneContext{}, false
	}
	vp, ok := ecs.Singleton(w, component.ViewportComponent.Kind())
	if !ok {
		return sceneContext{}, false
	}
	return sceneContext{frame: ft, tuning: t, viewport: vp}, true
}

// PushIntent queues an intent for the next frame step.
func PushIntent(w *ecs.World, in component.Intent) {
	if w == nil || in == component.IntentNone {
		return
	}
	w.Events().Push(ecs.Event{Type: component.IntentEvent, Data: in})
}

// Intents returns the intents queued for the current frame step, in order.
func Intents(w *ecs.World) []component.Intent {
	if w == nil {
		return nil
	}
	var out []component.Intent
	for _, evt := range w.Events().Peek() {
		if evt.Type != component.IntentEvent {
			continue
		}
		if in, ok := evt.Data.(component.Intent); ok {
			out = append(out, in)
		}
	}
	return out
}
