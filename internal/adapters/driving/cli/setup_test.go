package cli

import (
	"context"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
)

// mockConfigStore is a map-backed driven.ConfigStore for tests.
type mockConfigStore struct {
	data map[string]any
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: map[string]any{
		"metamap.path": "/opt/metamap/bin/metamap",
	}}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if s, ok := m.data[key].(string); ok {
		return s
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if n, ok := m.data[key].(int); ok {
		return n
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if b, ok := m.data[key].(bool); ok {
		return b
	}
	return false
}

func (m *mockConfigStore) GetStringSlice(key string) []string {
	if s, ok := m.data[key].([]string); ok {
		return s
	}
	return nil
}

func (m *mockConfigStore) All() map[string]any {
	out := make(map[string]any, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }

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

// setupTestServices injects mock services into the package-level slots and
// returns a cleanup that restores them. initServices skips wiring when a
// service is already present, so commands under test run against the mocks.
func setupTestServices() func() {
	oldConfig := configStore
	oldExtraction := extractionService
	oldHistory := historyService

	configStore = newMockConfigStore()
	extractionService = &mockExtractionService{
		result: domain.Result{
			Concepts: []domain.Concept{
				domain.MMIConcept{
					Index:         "USER",
					Score:         4.81,
					PreferredName: "Fever",
					CUI:           "C0015967",
					SemTypes:      []string{"sosy"},
					Trigger:       "fever",
				},
			},
		},
	}
	historyService = &mockHistoryService{}

	return func() {
		configStore = oldConfig
		extractionService = oldExtraction
		historyService = oldHistory
		resetExtractFlags()
	}
}

// resetExtractFlags clears flag state that leaks between Execute calls.
func resetExtractFlags() {
	extractFile = ""
	extractIDs = nil
	extractFormat = "sldi"
	extractJSON = false
	extractStaging = ""
	extractComposite = 4
	extractDataVersion = ""
	extractWSD = false
	extractLargeN = false
	extractNoDeriv = false
	extractDeriv = false
	extractWordOrder = false
	extractAcronyms = false
	extractUniqueAcr = false
	extractMulti = false
	extractStopPhrases = false
	extractAllMappings = false
	extractPrune = 0
	extractExcludeSources = nil
	extractRestrictSrcs = nil
	extractRestrictSTs = nil
	extractExcludeSTs = nil
}
