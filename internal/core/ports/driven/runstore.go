package driven

import (
	"context"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
)

// RunStore persists the extraction run history.
type RunStore interface {
	// SaveRun records one completed extraction call.
	SaveRun(ctx context.Context, run domain.ExtractionRun) error

	// GetRun retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	GetRun(ctx context.Context, id string) (*domain.ExtractionRun, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.ExtractionRun, error)

	// Close releases the underlying storage.
	Close() error
}
