package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// counter records OnChange calls (thread-safe).
type counter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (c *counter) onChange(context.Context, string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.err
}

func (c *counter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func createTempCSS(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.css")
	if err := os.WriteFile(path, []byte("a { color: red }"), 0o644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

func startWatcher(t *testing.T, opts Options) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	errCh := make(chan error, 1)
	go func() {
		errCh <- New(opts).Run(ctx)
	}()
	return cancel, errCh
}

func TestWatcher_InitialRun(t *testing.T) {
	path := createTempCSS(t)
	c := &counter{}

	cancel, errCh := startWatcher(t, Options{FilePath: path, OnChange: c.onChange})
	waitFor(t, "initial run", func() bool { return c.count() == 1 })

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Watcher did not stop within timeout")
	}
}

func TestWatcher_RecompressesOnWrite(t *testing.T) {
	path := createTempCSS(t)
	c := &counter{}

	startWatcher(t, Options{FilePath: path, Debounce: 100 * time.Millisecond, OnChange: c.onChange})
	waitFor(t, "initial run", func() bool { return c.count() == 1 })
	// Let the watcher settle before writing.
	time.Sleep(100 * time.Millisecond)

	for _, css := range []string{"a{}", "a { color: blue }", "a { color: green }"} {
		if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	waitFor(t, "recompression", func() bool { return c.count() >= 2 })
	time.Sleep(300 * time.Millisecond)

	if got := c.count(); got != 2 {
		t.Errorf("expected burst of writes to trigger one run, got %d runs", got-1)
	}
}

func TestWatcher_FollowsAtomicSave(t *testing.T) {
	path := createTempCSS(t)
	c := &counter{}

	startWatcher(t, Options{FilePath: path, OnChange: c.onChange})
	waitFor(t, "initial run", func() bool { return c.count() == 1 })
	time.Sleep(100 * time.Millisecond)

	tmp := path + ".swp"
	if err := os.WriteFile(tmp, []byte("b { color: blue }"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	waitFor(t, "run after atomic save", func() bool { return c.count() >= 2 })
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	path := createTempCSS(t)
	c := &counter{}

	startWatcher(t, Options{FilePath: path, OnChange: c.onChange})
	waitFor(t, "initial run", func() bool { return c.count() == 1 })

	other := filepath.Join(filepath.Dir(path), "site.min.css")
	if err := os.WriteFile(other, []byte("a{}"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	time.Sleep(300 * time.Millisecond)

	if got := c.count(); got != 1 {
		t.Errorf("writes to other files triggered %d runs", got-1)
	}
}

func TestWatcher_Removed(t *testing.T) {
	path := createTempCSS(t)
	c := &counter{}

	_, errCh := startWatcher(t, Options{FilePath: path, ReappearTimeout: 100 * time.Millisecond, OnChange: c.onChange})
	waitFor(t, "initial run", func() bool { return c.count() == 1 })
	time.Sleep(100 * time.Millisecond)

	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrRemoved) {
			t.Errorf("Run() error = %v, want ErrRemoved", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Watcher did not notice the removal")
	}
}

func TestWatcher_OnChangeErrorStops(t *testing.T) {
	path := createTempCSS(t)
	boom := errors.New("boom")
	c := &counter{err: boom}

	err := New(Options{FilePath: path, OnChange: c.onChange}).Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want boom", err)
	}
}

func TestWatcher_MissingFile(t *testing.T) {
	c := &counter{}
	err := New(Options{FilePath: filepath.Join(t.TempDir(), "missing.css"), OnChange: c.onChange}).Run(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if c.count() != 0 {
		t.Error("OnChange should not run for a missing file")
	}
}
