package component

import "time"

// Pose is the character's discrete animation/behavior state.
type Pose uint8

const (
	PoseIdle Pose = iota
	PoseRunning
	PoseJumping
	PoseCrouching
)

func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "idle"
	case PoseRunning:
		return "run"
	case PoseJumping:
		return "jump"
	case PoseCrouching:
		return "crouch"
	default:
		return "unknown"
	}
}

// Facing is the horizontal direction the character sprite looks at.
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Character holds the running character's state.
//
// Moving and Crouching record which keys are held. Pose mirrors the active
// CharacterState and is set by each state on Enter. Jump timing is kept as
// deadlines on the scene clock instead of callbacks.
type Character struct {
	Pose      Pose
	Facing    Facing
	Moving    bool
	Crouching bool

	JumpLocked bool
	JumpEndsAt time.Duration
	UnlockAt   time.Duration

	// ReachedWall latches once the character hits the invisible wall.
	ReachedWall bool

	// Nudges are the directional key steps (-1 MoveLeft, +1 MoveRight)
	// received since the last movement step, applied in order.
	Nudges []int
}

// GroundPose is the pose the character returns to when it is not jumping.
func (c *Character) GroundPose() Pose {
	switch {
	case c.Crouching:
		return PoseCrouching
	case c.Moving:
		return PoseRunning
	default:
		return PoseIdle
	}
}

var CharacterComponent = NewComponent[Character]()
