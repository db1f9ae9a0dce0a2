package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
)

// ExtractInput is the input schema for the extract_concepts tool.
type ExtractInput struct {
	Sentences []string `json:"sentences" jsonschema:"the sentences to extract UMLS concepts from"`
	IDs       []string `json:"ids,omitempty" jsonschema:"optional identifiers, one per sentence"`
}

// ExtractOutput is the output schema for the extract_concepts tool.
type ExtractOutput struct {
	Concepts  []ConceptOutput `json:"concepts"`
	Count     int             `json:"count"`
	ToolError string          `json:"tool_error,omitempty"`
}

// ConceptOutput represents a single decoded concept record.
type ConceptOutput struct {
	Type          string   `json:"type"`
	DocID         string   `json:"doc_id"`
	Score         float64  `json:"score,omitempty"`
	PreferredName string   `json:"preferred_name,omitempty"`
	CUI           string   `json:"cui,omitempty"`
	SemTypes      []string `json:"sem_types,omitempty"`
	Trigger       string   `json:"trigger,omitempty"`
	ShortForm     string   `json:"short_form,omitempty"`
	LongForm      string   `json:"long_form,omitempty"`
}

// HistoryInput is the input schema for the extraction_history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of runs to return (default 20)"`
}

// HistoryOutput is the output schema for the extraction_history tool.
type HistoryOutput struct {
	Runs  []RunOutput `json:"runs"`
	Count int         `json:"count"`
}

// RunOutput represents a single recorded extraction run.
type RunOutput struct {
	ID            string `json:"id"`
	StartedAt     string `json:"started_at"`
	DurationMS    int64  `json:"duration_ms"`
	SentenceCount int    `json:"sentence_count"`
	Filename      string `json:"filename,omitempty"`
	ConceptCount  int    `json:"concept_count"`
	ToolError     string `json:"tool_error,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_concepts",
		Description: "Extract UMLS concepts from sentences using the local MetaMap installation",
	}, s.handleExtract)

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "extraction_history",
			Description: "List recent concept extraction runs, newest first",
		}, s.handleHistory)
	}
}

// handleExtract handles the extract_concepts tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	if len(input.Sentences) == 0 {
		return nil, ExtractOutput{}, fmt.Errorf("at least one sentence is required")
	}

	req := domain.Request{
		Sentences: input.Sentences,
		IDs:       input.IDs,
		Options:   domain.DefaultOptions(),
	}

	result, err := s.ports.Extract.ExtractConcepts(ctx, req)
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	output := ExtractOutput{
		Concepts:  make([]ConceptOutput, len(result.Concepts)),
		Count:     len(result.Concepts),
		ToolError: result.ToolError,
	}

	for i, c := range result.Concepts {
		out := ConceptOutput{
			Type:  string(c.ConceptType()),
			DocID: c.DocID(),
		}
		switch concept := c.(type) {
		case domain.MMIConcept:
			out.Score = concept.Score
			out.PreferredName = concept.PreferredName
			out.CUI = concept.CUI
			out.SemTypes = concept.SemTypes
			out.Trigger = concept.Trigger
		case domain.AcronymConcept:
			out.ShortForm = concept.ShortForm
			out.LongForm = concept.LongForm
		}
		output.Concepts[i] = out
	}

	return nil, output, nil
}

// handleHistory handles the extraction_history tool invocation.
func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	runs, err := s.ports.History.ListRuns(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	output := HistoryOutput{
		Runs:  make([]RunOutput, len(runs)),
		Count: len(runs),
	}
	for i, run := range runs {
		output.Runs[i] = RunOutput{
			ID:            run.ID,
			StartedAt:     run.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
			DurationMS:    run.Duration.Milliseconds(),
			SentenceCount: run.SentenceCount,
			Filename:      run.Filename,
			ConceptCount:  run.ConceptCount,
			ToolError:     run.ToolError,
		}
	}

	return nil, output, nil
}
