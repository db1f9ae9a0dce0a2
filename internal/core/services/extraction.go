package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
	"github.com/custodia-labs/metamap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/metamap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/metamap-cli/internal/logger"
)

// Ensure ExtractionService implements the interfaces.
var (
	_ driving.ExtractionService = (*ExtractionService)(nil)
	_ driving.HistoryService    = (*ExtractionService)(nil)
)

// ExtractionService turns a validated request into one tool invocation and
// decodes the staged output. One call walks: validate, stage, build argv,
// invoke, classify, read output, parse, cleanup. Cleanup runs on every
// exit path once staging has begun.
type ExtractionService struct {
	stager     driven.Stager
	builder    driven.CommandBuilder
	invoker    driven.ToolInvoker
	classifier driven.FailureClassifier
	parser     driven.ConceptParser
	runStore   driven.RunStore
}

// NewExtractionService creates an extraction service from its driven ports.
func NewExtractionService(
	stager driven.Stager,
	builder driven.CommandBuilder,
	invoker driven.ToolInvoker,
	classifier driven.FailureClassifier,
	parser driven.ConceptParser,
) *ExtractionService {
	return &ExtractionService{
		stager:     stager,
		builder:    builder,
		invoker:    invoker,
		classifier: classifier,
		parser:     parser,
	}
}

// SetRunStore attaches an optional run history store.
func (s *ExtractionService) SetRunStore(store driven.RunStore) {
	s.runStore = store
}

// ExtractConcepts runs the tool once against the request's input.
// Invariant violations and I/O failures surface as the returned error;
// a tool-reported error rides inside the Result next to whatever partial
// concepts were decoded.
func (s *ExtractionService) ExtractConcepts(ctx context.Context, req domain.Request) (domain.Result, error) {
	logger.Section("Concept Extraction")

	if err := req.Validate(); err != nil {
		return domain.Result{}, err
	}

	started := time.Now()

	staged, err := s.stager.Stage(req)
	if err != nil {
		return domain.Result{}, fmt.Errorf("staging request: %w", err)
	}
	defer func() {
		if cerr := staged.Cleanup(); cerr != nil {
			logger.Warn("Staged file cleanup failed: %v", cerr)
		}
	}()

	argv := s.builder.Build(req, staged.InputPath(), staged.OutputPath())
	logger.Debug("Command: %v", argv)

	stdout, err := s.invoker.Invoke(ctx, argv)
	if err != nil {
		return domain.Result{}, fmt.Errorf("invoking tool: %w", err)
	}

	toolErr, failed := s.classifier.Classify(stdout)
	if failed {
		logger.Warn("Tool reported an error, keeping partial output")
		// The child has normally exited already; the request is best-effort.
		if terr := s.invoker.Terminate(); terr != nil {
			logger.Warn("Termination request failed: %v", terr)
		}
	}

	lines, err := staged.ReadOutput()
	if err != nil {
		return domain.Result{}, err
	}

	concepts, err := s.parser.Parse(lines)
	if err != nil {
		return domain.Result{}, fmt.Errorf("decoding output: %w", err)
	}
	logger.Debug("Decoded %d concept records", len(concepts))

	result := domain.Result{Concepts: concepts, ToolError: toolErr}
	s.recordRun(ctx, req, result, started)
	return result, nil
}

// ListRuns returns the most recent extraction runs, newest first.
func (s *ExtractionService) ListRuns(ctx context.Context, limit int) ([]domain.ExtractionRun, error) {
	if s.runStore == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	return s.runStore.ListRuns(ctx, limit)
}

// recordRun persists the run when a history store is attached. History is
// an observer of the call: a store failure is logged, never surfaced.
func (s *ExtractionService) recordRun(ctx context.Context, req domain.Request, result domain.Result, started time.Time) {
	if s.runStore == nil {
		return
	}

	run := domain.ExtractionRun{
		ID:            uuid.New().String(),
		StartedAt:     started,
		Duration:      time.Since(started),
		SentenceCount: len(req.Sentences),
		Filename:      req.Filename,
		ConceptCount:  len(result.Concepts),
		ToolError:     result.ToolError,
	}
	if err := s.runStore.SaveRun(ctx, run); err != nil {
		logger.Warn("Failed to record extraction run: %v", err)
	}
}
