package component

type Transform struct {
	X float64
	Y float64
	// OffsetY is the vertical lift above Y, derived from the pose each step.
	OffsetY float64
}

var TransformComponent = NewComponent[Transform]()
