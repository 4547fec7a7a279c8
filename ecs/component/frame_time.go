package component

import "time"

// ReferenceTPS is the tick rate the per-tick speeds in Tuning are expressed in.
const ReferenceTPS = 60.0

// FrameTime is the scene clock, written by the scene before systems run.
type FrameTime struct {
	Now   time.Duration
	Delta time.Duration
	// AnimationTicks is how many animation intervals elapsed in this step.
	AnimationTicks int
}

// Scale converts Delta to reference ticks, so speed*Scale() is the distance
// covered in this step.
func (f *FrameTime) Scale() float64 {
	if f == nil || f.Delta <= 0 {
		return 0
	}
	return f.Delta.Seconds() * ReferenceTPS
}

var FrameTimeComponent = NewComponent[FrameTime]()
