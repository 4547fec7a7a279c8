package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/raccoonrun/ecs"
)

// Key repeat timing in ticks, close to a desktop OS default.
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 3
)

var hostKeys = []struct {
	key  Key
	keys []ebiten.Key
}{
	{KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft}},
	{KeyRight, []ebiten.Key{ebiten.KeyArrowRight}},
	{KeyUp, []ebiten.Key{ebiten.KeyArrowUp}},
	{KeySpace, []ebiten.Key{ebiten.KeySpace}},
	{KeyDown, []ebiten.Key{ebiten.KeyArrowDown}},
	{KeyDebug, []ebiten.Key{ebiten.KeyD}},
	{KeyRestart, []ebiten.Key{ebiten.KeyR}},
}

// InputSystem polls the keyboard and queues intents for the frame step.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	events := make([]KeyEvent, 0, 4)
	held := map[Key]bool{}
	for _, hk := range hostKeys {
		for _, k := range hk.keys {
			if action, ok := keyAction(inpututil.KeyPressDuration(k), inpututil.IsKeyJustReleased(k)); ok {
				events = append(events, KeyEvent{Key: hk.key, Action: action})
			}
			if ebiten.IsKeyPressed(k) {
				held[hk.key] = true
			}
		}
	}

	for _, in := range MapKeys(filterMoveRelease(events, held)) {
		PushIntent(w, in)
	}
}

// keyAction derives the raw signal for a key from how long it has been held.
func keyAction(pressTicks int, justReleased bool) (KeyAction, bool) {
	switch {
	case justReleased:
		return KeyReleased, true
	case pressTicks == 1:
		return KeyPressed, true
	case pressTicks >= keyRepeatDelay && (pressTicks-keyRepeatDelay)%keyRepeatInterval == 0:
		return KeyRepeated, true
	}
	return 0, false
}

// filterMoveRelease drops the release of one move key while the opposite one
// is still held, so running does not stop when switching direction.
func filterMoveRelease(events []KeyEvent, held map[Key]bool) []KeyEvent {
	out := events[:0]
	for _, ev := range events {
		if ev.Action == KeyReleased {
			if (ev.Key == KeyLeft && held[KeyRight]) || (ev.Key == KeyRight && held[KeyLeft]) {
				continue
			}
		}
		out = append(out, ev)
	}
	return out
}
