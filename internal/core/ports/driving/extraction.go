package driving

import (
	"context"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
)

// ExtractionService provides concept extraction to external actors.
type ExtractionService interface {
	// ExtractConcepts runs the tool once against the request's input and
	// returns the decoded concepts. Violated request invariants surface
	// as an error from the call itself; an error the tool reported during
	// an otherwise completed run rides inside the Result, alongside
	// whatever partial concepts were decoded.
	ExtractConcepts(ctx context.Context, req domain.Request) (domain.Result, error)
}

// HistoryService exposes the extraction run history.
type HistoryService interface {
	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.ExtractionRun, error)
}
