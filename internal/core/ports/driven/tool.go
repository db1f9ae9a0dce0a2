package driven

import (
	"context"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
)

// CommandBuilder turns a validated request plus the two staged paths into
// the tool's argument vector. Build is pure: the same inputs always yield
// the same vector, and the vector's flag order is stable.
type CommandBuilder interface {
	// Build returns the full argument vector, tool path first,
	// input and output paths last.
	Build(req domain.Request, inputPath, outputPath string) []string
}

// ToolInvoker runs the external tool and captures its standard output.
type ToolInvoker interface {
	// Invoke executes argv as a child process and blocks until it exits,
	// returning the captured stdout. A non-zero exit is not an error here;
	// failure is decided by the FailureClassifier from stdout content.
	Invoke(ctx context.Context, argv []string) ([]byte, error)

	// Terminate requests termination of the most recent child. It must be
	// idempotent: a termination request for an already-exited process is
	// not an error.
	Terminate() error
}

// FailureClassifier decides from the tool's stdout whether the run failed.
// Implementations may use a substring heuristic or a structured signal;
// invocation logic never needs to know which.
type FailureClassifier interface {
	// Classify returns the error message and true when stdout signals a
	// failure, or "" and false for a clean run.
	Classify(stdout []byte) (string, bool)
}

// ConceptParser decodes the tool's output lines into concept records.
type ConceptParser interface {
	// Parse decodes the ordered output lines. Blank lines are skipped;
	// a line that matches no known record kind is an error.
	Parse(lines []string) ([]domain.Concept, error)
}
