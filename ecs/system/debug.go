package system

import (
	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
)

// DebugSystem flips the debug overlay on ToggleDebug intents.
type DebugSystem struct{}

func NewDebugSystem() *DebugSystem {
	return &DebugSystem{}
}

func (d *DebugSystem) Update(w *ecs.World) {
	overlay, ok := ecs.Singleton(w, component.DebugOverlayComponent.Kind())
	if !ok {
		return
	}
	for _, in := range Intents(w) {
		if in == component.IntentToggleDebug {
			overlay.Visible = !overlay.Visible
		}
	}
}
