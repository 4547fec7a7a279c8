package system

import (
	"reflect"
	"testing"

	"github.com/milk9111/raccoonrun/ecs/component"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		ev   KeyEvent
		want []component.Intent
	}{
		{"left_press", KeyEvent{KeyLeft, KeyPressed}, []component.Intent{component.IntentMoveLeft}},
		{"left_repeat", KeyEvent{KeyLeft, KeyRepeated}, []component.Intent{component.IntentMoveLeft}},
		{"right_press", KeyEvent{KeyRight, KeyPressed}, []component.Intent{component.IntentMoveRight}},
		{"right_release", KeyEvent{KeyRight, KeyReleased}, []component.Intent{component.IntentMoveEnd}},
		{"up_press", KeyEvent{KeyUp, KeyPressed}, []component.Intent{component.IntentJump}},
		{"space_press", KeyEvent{KeySpace, KeyPressed}, []component.Intent{component.IntentJump}},
		{"space_repeat", KeyEvent{KeySpace, KeyRepeated}, nil},
		{"up_release", KeyEvent{KeyUp, KeyReleased}, nil},
		{"down_press", KeyEvent{KeyDown, KeyPressed}, []component.Intent{component.IntentCrouchStart}},
		{"down_repeat", KeyEvent{KeyDown, KeyRepeated}, nil},
		{"down_release", KeyEvent{KeyDown, KeyReleased}, []component.Intent{component.IntentCrouchEnd}},
		{"debug_press", KeyEvent{KeyDebug, KeyPressed}, []component.Intent{component.IntentToggleDebug}},
		{"debug_release", KeyEvent{KeyDebug, KeyReleased}, nil},
		{"restart_press", KeyEvent{KeyRestart, KeyPressed}, []component.Intent{component.IntentRestart}},
		{"restart_repeat", KeyEvent{KeyRestart, KeyRepeated}, nil},
		{"unknown", KeyEvent{KeyUnknown, KeyPressed}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapKey(tc.ev)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("MapKey(%+v) = %v, want %v", tc.ev, got, tc.want)
			}
		})
	}
}

func TestMapKeysKeepsOrder(t *testing.T) {
	got := MapKeys([]KeyEvent{
		{KeyRight, KeyPressed},
		{KeyUnknown, KeyPressed},
		{KeySpace, KeyPressed},
		{KeyRight, KeyReleased},
	})
	want := []component.Intent{component.IntentMoveRight, component.IntentJump, component.IntentMoveEnd}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MapKeys = %v, want %v", got, want)
	}
}

func TestMapKeysSwitchingDirection(t *testing.T) {
	// Right released in the same tick Left is pressed and held.
	events := []KeyEvent{{KeyRight, KeyReleased}, {KeyLeft, KeyPressed}}
	got := MapKeys(filterMoveRelease(events, map[Key]bool{KeyLeft: true}))
	want := []component.Intent{component.IntentMoveLeft}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("intents = %v, want %v", got, want)
	}
}
