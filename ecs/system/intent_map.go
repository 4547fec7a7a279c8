package system

import "github.com/milk9111/raccoonrun/ecs/component"

// Key is a host-independent key identifier.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeySpace
	KeyDown
	KeyDebug
	KeyRestart
)

// KeyAction is the raw signal reported for a key.
type KeyAction uint8

const (
	KeyPressed KeyAction = iota
	KeyRepeated
	KeyReleased
)

// KeyEvent is a raw key signal from the host.
type KeyEvent struct {
	Key    Key
	Action KeyAction
}

// MapKey translates one raw key signal into intents.
//
// Movement is level-triggered: press and every repeat issue a move intent,
// release issues MoveEnd. Jump, debug and restart fire on press only; held-key repeats
// of jump are absorbed by the character's jump lock anyway.
func MapKey(ev KeyEvent) []component.Intent {
	switch ev.Key {
	case KeyLeft, KeyRight:
		switch ev.Action {
		case KeyPressed, KeyRepeated:
			if ev.Key == KeyLeft {
				return []component.Intent{component.IntentMoveLeft}
			}
			return []component.Intent{component.IntentMoveRight}
		case KeyReleased:
			return []component.Intent{component.IntentMoveEnd}
		}
	case KeyUp, KeySpace:
		if ev.Action == KeyPressed {
			return []component.Intent{component.IntentJump}
		}
	case KeyDown:
		switch ev.Action {
		case KeyPressed:
			return []component.Intent{component.IntentCrouchStart}
		case KeyReleased:
			return []component.Intent{component.IntentCrouchEnd}
		}
	case KeyDebug:
		if ev.Action == KeyPressed {
			return []component.Intent{component.IntentToggleDebug}
		}
	case KeyRestart:
		if ev.Action == KeyPressed {
			return []component.Intent{component.IntentRestart}
		}
	}
	return nil
}

// MapKeys maps a batch of key signals, preserving order.
func MapKeys(events []KeyEvent) []component.Intent {
	var out []component.Intent
	for _, ev := range events {
		out = append(out, MapKey(ev)...)
	}
	return out
}
