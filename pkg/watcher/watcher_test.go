package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchTriggersOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.xyz")
	if err := os.WriteFile(path, []byte("0 0 0\n"), 0o644); err != nil {
		t.Fatalf("writing fixture failed: %v", err)
	}

	sw, err := NewScanWatcher(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewScanWatcher failed: %v", err)
	}
	defer sw.Close()

	changed := make(chan string, 1)
	if err := sw.Watch([]string{path}, func(p string) { changed <- p }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	sw.Start()

	if err := os.WriteFile(path, []byte("1 2 3\n"), 0o644); err != nil {
		t.Fatalf("rewriting file failed: %v", err)
	}

	select {
	case got := <-changed:
		want, _ := filepath.Abs(path)
		if got != want {
			t.Errorf("callback path failed: expected %s, got %s", want, got)
		}
	case <-time.After(5 * time.Second):
		t.Error("Watch did not report the file change")
	}
}

func TestWatchMissingFile(t *testing.T) {
	sw, err := NewScanWatcher(0)
	if err != nil {
		t.Fatalf("NewScanWatcher failed: %v", err)
	}
	defer sw.Close()

	missing := filepath.Join(t.TempDir(), "nope.pcd")
	if err := sw.Watch([]string{missing}, func(string) {}); err == nil {
		t.Error("Watch should fail for a missing file")
	}
}

func TestDefaultDebounce(t *testing.T) {
	sw, err := NewScanWatcher(-1)
	if err != nil {
		t.Fatalf("NewScanWatcher failed: %v", err)
	}
	defer sw.Close()

	if sw.debounce != DefaultDebounce {
		t.Errorf("debounce fallback failed: expected %v, got %v", DefaultDebounce, sw.debounce)
	}
}
