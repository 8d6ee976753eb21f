package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// non-spec files are filtered out
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	specPath := filepath.Join(dir, "quake.yaml")
	if err := os.WriteFile(specPath, []byte("name: quake\ntype: shake\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-w.Events:
			if got == specPath {
				return
			}
			t.Fatalf("unexpected event for %s", got)
		case err := <-w.Errors:
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatalf("no event for %s within the deadline", specPath)
		}
	}
}

func TestWatcherCloseDrainsChannels(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	// queue a few events before closing; the loop may still be sending
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "spec"+string(rune('a'+i))+".yaml")
		if err := os.WriteFile(name, []byte("name: x\ntype: shake\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("Events did not close after Close")
		}
	}
}
