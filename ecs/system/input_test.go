package system

import "testing"

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name     string
		ticks    int
		released bool
		want     KeyAction
		ok       bool
	}{
		{"idle", 0, false, 0, false},
		{"first_tick", 1, false, KeyPressed, true},
		{"held", 2, false, 0, false},
		{"before_delay", keyRepeatDelay - 1, false, 0, false},
		{"first_repeat", keyRepeatDelay, false, KeyRepeated, true},
		{"between_repeats", keyRepeatDelay + 1, false, 0, false},
		{"second_repeat", keyRepeatDelay + keyRepeatInterval, false, KeyRepeated, true},
		{"released", 0, true, KeyReleased, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := keyAction(tc.ticks, tc.released)
			if ok != tc.ok || (ok && got != tc.want) {
				t.Fatalf("keyAction(%d, %v) = %v, %v; want %v, %v", tc.ticks, tc.released, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestFilterMoveRelease(t *testing.T) {
	tests := []struct {
		name   string
		events []KeyEvent
		held   map[Key]bool
		want   int
	}{
		{"release_with_opposite_held", []KeyEvent{{KeyLeft, KeyReleased}}, map[Key]bool{KeyRight: true}, 0},
		{"release_alone", []KeyEvent{{KeyLeft, KeyReleased}}, map[Key]bool{}, 1},
		{"crouch_release_unaffected", []KeyEvent{{KeyDown, KeyReleased}}, map[Key]bool{KeyLeft: true}, 1},
		{"press_kept", []KeyEvent{{KeyRight, KeyPressed}, {KeyLeft, KeyReleased}}, map[Key]bool{KeyRight: true}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := filterMoveRelease(tc.events, tc.held)
			if len(got) != tc.want {
				t.Fatalf("expected %d events, got %v", tc.want, got)
			}
		})
	}
}
