package mcp

import (
	"github.com/custodia-labs/metamap-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Extract provides concept extraction.
	Extract driving.ExtractionService

	// History exposes past extraction runs. Optional; the history tool is
	// only registered when it is set.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Extract == nil {
		return ErrMissingExtractionService
	}
	return nil
}
