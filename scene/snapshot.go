package scene

import "github.com/milk9111/raccoonrun/ecs/component"

// Snapshot is the read-only view a renderer consumes once per paint.
type Snapshot struct {
	CharacterX       float64
	CharacterOffsetY float64
	Pose             component.Pose
	Facing           component.Facing
	Frame            int
	ReachedWall      bool

	PursuerX float64
	PursuerY float64

	ScrollOffset float64
	WallX        float64
	DebugVisible bool

	Viewport component.Viewport
	Tuning   component.Tuning
}
