package component

// Animation cycles a 1-based frame index for the active pose.
type Animation struct {
	Frame     int
	MaxFrames map[Pose]int
}

// Max returns the wrap bound for pose. Unknown poses wrap at 1.
func (a *Animation) Max(pose Pose) int {
	if a == nil {
		return 1
	}
	if n, ok := a.MaxFrames[pose]; ok && n > 0 {
		return n
	}
	return 1
}

var AnimationComponent = NewComponent[Animation]()
