package system

import (
	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
)

// RestartSystem latches Restart intents. The scene rebuilds itself once the
// frame step that saw one has finished.
type RestartSystem struct {
	requested bool
}

func NewRestartSystem() *RestartSystem {
	return &RestartSystem{}
}

func (r *RestartSystem) Update(w *ecs.World) {
	for _, in := range Intents(w) {
		if in == component.IntentRestart {
			r.requested = true
		}
	}
}

// Requested reports a latched restart and clears it.
func (r *RestartSystem) Requested() bool {
	requested := r.requested
	r.requested = false
	return requested
}
