package metamap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/custodia-labs/metamap-cli/internal/core/ports/driven"
)

// Ensure Invoker implements the interface.
var _ driven.ToolInvoker = (*Invoker)(nil)

// Invoker runs the MetaMap binary as a child process and captures its
// stdout. Invocation is synchronous: the caller blocks until the child
// exits. There is no timeout; cancel the context to abort a hung child.
type Invoker struct {
	mu   sync.Mutex
	last *exec.Cmd
}

// NewInvoker creates a subprocess invoker.
func NewInvoker() *Invoker {
	return &Invoker{}
}

// Invoke executes argv and returns the captured stdout. A non-zero exit
// status is not an error: MetaMap signals failure through stdout content,
// which the FailureClassifier inspects. Only a child that could not be
// spawned or waited on yields an error.
func (i *Invoker) Invoke(ctx context.Context, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty argument vector")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	i.mu.Lock()
	i.last = cmd
	i.mu.Unlock()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("running %s: %w", argv[0], err)
		}
		// Exited non-zero: fall through with whatever stdout was captured.
	}

	return stdout.Bytes(), nil
}

// Terminate requests termination of the most recent child. By the time a
// failure has been classified the child has already exited, so this is a
// best-effort no-op on a finished process and never reports one as an
// error.
func (i *Invoker) Terminate() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.last == nil || i.last.Process == nil {
		return nil
	}
	if err := i.last.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("terminating child: %w", err)
	}
	return nil
}
