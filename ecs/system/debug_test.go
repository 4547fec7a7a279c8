package system

import (
	"testing"

	"github.com/milk9111/raccoonrun/ecs"
	"github.com/milk9111/raccoonrun/ecs/component"
)

func TestDebugSystemToggles(t *testing.T) {
	tests := []struct {
		name    string
		toggles int
		want    bool
	}{
		{"none", 0, false},
		{"once", 1, true},
		{"twice", 2, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newSceneWorld(t, testViewport, 0)
			for i := 0; i < tc.toggles; i++ {
				PushIntent(w, component.IntentToggleDebug)
			}
			PushIntent(w, component.IntentJump)
			NewDebugSystem().Update(w)

			overlay, _ := ecs.Singleton(w, component.DebugOverlayComponent.Kind())
			if overlay.Visible != tc.want {
				t.Fatalf("visible = %v, want %v", overlay.Visible, tc.want)
			}
		})
	}
}

func TestScrollSystemFollowsGameSpeed(t *testing.T) {
	w, ft := newSceneWorld(t, testViewport, 100*ms)
	NewScrollSystem().Update(w)
	NewScrollSystem().Update(w)

	sc, _ := ecs.Singleton(w, component.ScrollComponent.Kind())
	want := -2 * component.DefaultTuning().GameSpeed * ft.Scale()
	if diff := sc.Offset - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("offset = %v, want %v", sc.Offset, want)
	}
}

func TestIntentsIgnoresNone(t *testing.T) {
	w := ecs.NewWorld()
	PushIntent(w, component.IntentNone)
	PushIntent(w, component.IntentMoveLeft)
	w.Events().Push(ecs.Event{Type: "other", Data: component.IntentJump})

	got := Intents(w)
	if len(got) != 1 || got[0] != component.IntentMoveLeft {
		t.Fatalf("unexpected intents %v", got)
	}
}

func TestRestartSystemLatchesOnce(t *testing.T) {
	w, _ := newSceneWorld(t, testViewport, 0)
	r := NewRestartSystem()

	r.Update(w)
	if r.Requested() {
		t.Fatalf("restart latched without an intent")
	}

	PushIntent(w, component.IntentMoveRight)
	PushIntent(w, component.IntentRestart)
	r.Update(w)
	if !r.Requested() {
		t.Fatalf("restart intent was not latched")
	}
	if r.Requested() {
		t.Fatalf("Requested must clear the latch")
	}
}
