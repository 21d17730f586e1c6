package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeIntakeFile(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestWatchDeliversCreateBurst(t *testing.T) {
	root := t.TempDir()
	caseDir := filepath.Join(root, "case-7")
	if err := os.Mkdir(caseDir, 0o755); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := Watch(ctx, WatchConfig{Root: root, Debounce: 20 * time.Millisecond}, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	const n = 40
	want := map[string]bool{}
	for i := 0; i < n; i++ {
		p := writeIntakeFile(t, caseDir, fmt.Sprintf("stmt-%02d.csv", i))
		want[p] = false
	}

	deadline := time.After(5 * time.Second)
	got := 0
	for got < n {
		select {
		case p := <-events:
			if seen, ok := want[p]; ok && !seen {
				want[p] = true
				got++
			}
		case <-deadline:
			t.Fatalf("timed out after %d of %d files", got, n)
		}
	}
}

func TestWatchInitialScan(t *testing.T) {
	root := t.TempDir()
	caseDir := filepath.Join(root, "case-1")
	if err := os.Mkdir(caseDir, 0o755); err != nil {
		t.Fatal(err)
	}
	existing := writeIntakeFile(t, caseDir, "old.csv")
	writeIntakeFile(t, caseDir, "notes.txt") // not a statement extension

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := Watch(ctx, WatchConfig{Root: root, InitialScan: true}, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	select {
	case p := <-events:
		if p != existing {
			t.Errorf("initial scan emitted %q, want %q", p, existing)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("initial scan emitted nothing")
	}
	select {
	case p := <-events:
		t.Errorf("unexpected extra event %q", p)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatchPicksUpNewCaseDirectory(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := Watch(ctx, WatchConfig{Root: root, Debounce: 10 * time.Millisecond}, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	newCase := filepath.Join(root, "case-9")
	if err := os.Mkdir(newCase, 0o755); err != nil {
		t.Fatal(err)
	}
	// the watcher needs a moment to pick up the directory create event
	time.Sleep(100 * time.Millisecond)
	p := writeIntakeFile(t, newCase, "stmt.csv")

	select {
	case got := <-events:
		if got != p {
			t.Errorf("event = %q, want %q", got, p)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("file in a new case directory never surfaced")
	}
}

func TestCaseIDFor(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "intake")
	tests := []struct {
		path string
		want string
	}{
		{filepath.Join(root, "case-3", "stmt.csv"), "case-3"},
		{filepath.Join(root, "case-3", "sub", "stmt.csv"), "case-3"},
		{filepath.Join(root, "stray.csv"), ""},
		{filepath.Join(string(filepath.Separator), "elsewhere", "stmt.csv"), ""},
	}
	for _, tc := range tests {
		if got := caseIDFor(root, tc.path); got != tc.want {
			t.Errorf("caseIDFor(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
