package driven

import (
	"github.com/custodia-labs/metamap-cli/internal/core/domain"
)

// StagedFiles is the pair of filesystem paths owned by one extraction call.
// The handle must be released with Cleanup on every exit path.
type StagedFiles interface {
	// InputPath is the file the tool reads. For sentence input this is a
	// staged temporary file; for file input it is the caller's file.
	InputPath() string

	// OutputPath is the staged file the tool writes.
	OutputPath() string

	// ReadOutput reads the entire output file and splits it into lines.
	ReadOutput() ([]string, error)

	// Cleanup deletes every staged file. Caller-supplied input files are
	// never deleted. Cleanup is idempotent.
	Cleanup() error
}

// Stager creates the staged file pair for a request: it serialises
// sentences to a fresh input file (or opens the caller's file) and
// reserves a fresh output file, flushed and closed before the tool runs.
type Stager interface {
	// Stage creates the staged files for the request. On error nothing
	// is left behind on the filesystem.
	Stage(req domain.Request) (StagedFiles, error)
}
