package prefabs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestWatcherReportsPrefabEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(target, []byte("name: x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", target)
	}
}

func TestWatcherPendingDedup(t *testing.T) {
	w := &Watcher{Events: make(chan string, 4)}
	w.Events <- "a.yaml"
	w.Events <- "a.yaml"
	w.Events <- "s.tengo"

	got := w.Pending()
	if !reflect.DeepEqual(got, []string{"a.yaml", "s.tengo"}) {
		t.Fatalf("unexpected pending %v", got)
	}
	if w.Pending() != nil {
		t.Fatalf("second drain should be empty")
	}

	var none *Watcher
	if none.Pending() != nil {
		t.Fatalf("nil watcher should report nothing")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if got := w.Pending(); len(got) != 0 {
		t.Fatalf("closed watcher should drain empty, got %v", got)
	}
}

func TestFileFilters(t *testing.T) {
	tests := []struct {
		path   string
		spec   bool
		script bool
	}{
		{"prefabs/scene.yaml", true, false},
		{"prefabs/SCENE.YML", true, false},
		{"prefabs/scripts/rubberband.tengo", false, true},
		{"prefabs/scene.yaml~", false, false},
		{"prefabs/notes.txt", false, false},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			if isSpecFile(tc.path) != tc.spec || IsScript(tc.path) != tc.script {
				t.Fatalf("filters for %s = %v/%v", tc.path, isSpecFile(tc.path), IsScript(tc.path))
			}
		})
	}
}
