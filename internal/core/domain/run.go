package domain

import "time"

// ExtractionRun is the persisted record of one extraction call, kept for
// the run history.
type ExtractionRun struct {
	// ID uniquely identifies the run.
	ID string

	// StartedAt is when the tool was invoked.
	StartedAt time.Time

	// Duration is the wall-clock time of the call, staging included.
	Duration time.Duration

	// SentenceCount is the number of staged sentences, or 0 for file input.
	SentenceCount int

	// Filename is the caller-supplied input file, when file input was used.
	Filename string

	// ConceptCount is the number of decoded concept records.
	ConceptCount int

	// ToolError is the tool-reported error text, when the run failed.
	ToolError string
}
