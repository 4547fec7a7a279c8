package component

// Intent is a discrete input action derived from raw key events.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentMoveEnd
	IntentJump
	IntentCrouchStart
	IntentCrouchEnd
	IntentToggleDebug
	IntentRestart
)

// IntentEvent is the ecs.Event type carrying an Intent in Data.
const IntentEvent = "intent"

func (i Intent) String() string {
	switch i {
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentMoveEnd:
		return "move_end"
	case IntentJump:
		return "jump"
	case IntentCrouchStart:
		return "crouch_start"
	case IntentCrouchEnd:
		return "crouch_end"
	case IntentToggleDebug:
		return "toggle_debug"
	case IntentRestart:
		return "restart"
	default:
		return "none"
	}
}
