package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrAcronymConflict indicates both acronym-variant options were requested.
	// MetaMap accepts -a or -u, never both.
	ErrAcronymConflict = errors.New("allow_acronym_variants and unique_acronym_variants are mutually exclusive")

	// ErrInputConflict indicates sentences and an input filename were both
	// supplied, or neither was.
	ErrInputConflict = errors.New("exactly one of sentences or filename must be set")

	// ErrInvalidFileFormat indicates an unrecognised input file format tag.
	ErrInvalidFileFormat = errors.New("file format must be sldi or sldiID")

	// ErrInvalidDataVersion indicates an unrecognised MetaMap data version.
	ErrInvalidDataVersion = errors.New("data version must be Base, USAbase, or NLM")

	// ErrIDCountMismatch indicates the identifier list length does not match
	// the sentence list length.
	ErrIDCountMismatch = errors.New("ids must match sentences in length")

	// ErrMalformedRecord indicates a tool output line that does not parse
	// as a known concept record.
	ErrMalformedRecord = errors.New("malformed concept record")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrHistoryUnavailable indicates no run store is configured.
	// The run history feature is disabled without one.
	ErrHistoryUnavailable = errors.New("run history unavailable")

	// ErrToolNotConfigured indicates no MetaMap binary path is configured.
	ErrToolNotConfigured = errors.New("metamap binary path not configured")
)
