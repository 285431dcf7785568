// Package workspace manages the process-scoped temporary directory that holds
// the fetched bundle. The directory must never outlive the process: cleanup is
// guaranteed on normal completion, on error returns, and on interrupt signals.
package workspace

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/code-zen/zen/internal/messages"
)

// Workspace is a uniquely named temporary directory scoped to the process.
type Workspace struct {
	dir        string
	removeAll  func(string) error
	once       sync.Once
	cleanupErr error
}

// New creates the workspace directory under the system temp dir.
func New() (*Workspace, error) {
	dir, err := os.MkdirTemp("", "zen-install-*")
	if err != nil {
		return nil, fmt.Errorf(messages.WorkspaceCreateFailedFmt, err)
	}
	return &Workspace{dir: dir, removeAll: os.RemoveAll}, nil
}

// Dir returns the workspace directory path.
func (w *Workspace) Dir() string {
	return w.dir
}

// Cleanup removes the workspace directory. It is safe to call more than once;
// only the first call performs the removal.
func (w *Workspace) Cleanup() error {
	w.once.Do(func() {
		w.cleanupErr = w.removeAll(w.dir)
	})
	return w.cleanupErr
}

// CleanupOnSignal arranges for the workspace to be removed and the process to
// exit when an interrupt or termination signal arrives. The returned stop
// function releases the signal handler; callers pair it with a deferred
// Cleanup so every exit path removes the directory exactly once.
func (w *Workspace) CleanupOnSignal(exit func(int)) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-ch:
			_ = w.Cleanup()
			exit(exitCodeForSignal(sig))
		case <-done:
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}

// exitCodeForSignal maps a signal to the conventional 128+N exit code.
func exitCodeForSignal(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
