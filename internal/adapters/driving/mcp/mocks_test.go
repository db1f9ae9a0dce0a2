package mcp

import (
	"context"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
)

// mockExtractionService is a mock implementation of driving.ExtractionService.
type mockExtractionService struct {
	lastReq domain.Request
	result  domain.Result
	err     error
}

func (m *mockExtractionService) ExtractConcepts(_ context.Context, req domain.Request) (domain.Result, error) {
	m.lastReq = req
	return m.result, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	lastLimit int
	runs      []domain.ExtractionRun
	err       error
}

func (m *mockHistoryService) ListRuns(_ context.Context, limit int) ([]domain.ExtractionRun, error) {
	m.lastLimit = limit
	return m.runs, m.err
}
