package domain

// FileFormat selects the line-record format of the staged input file.
type FileFormat string

// Recognised input file formats.
const (
	// FileFormatSLDI is single-line delimited input: one sentence per line.
	FileFormatSLDI FileFormat = "sldi"

	// FileFormatSLDIID is single-line delimited input with an identifier
	// per record: "id"|"sentence".
	FileFormatSLDIID FileFormat = "sldiID"
)

// IsValid returns true if the file format is recognised.
func (f FileFormat) IsValid() bool {
	switch f {
	case FileFormatSLDI, FileFormatSLDIID:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f FileFormat) String() string {
	return string(f)
}

// DataVersion selects which UMLS data set MetaMap consults (-V).
type DataVersion string

// Recognised data versions. The empty value means "tool default".
const (
	// DataVersionBase is the base UMLS data set.
	DataVersionBase DataVersion = "Base"

	// DataVersionUSABase is the USAbase data set.
	DataVersionUSABase DataVersion = "USAbase"

	// DataVersionNLM is the NLM data set.
	DataVersionNLM DataVersion = "NLM"
)

// IsValid returns true if the data version is recognised.
func (v DataVersion) IsValid() bool {
	switch v {
	case DataVersionBase, DataVersionUSABase, DataVersionNLM:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (v DataVersion) String() string {
	return string(v)
}

// Options is the MetaMap option set for one extraction call.
// The zero value is not useful; start from DefaultOptions.
type Options struct {
	// CompositePhrase is the composite phrase depth (-Q).
	CompositePhrase int

	// FileFormat is the staged input record format.
	FileFormat FileFormat

	// DataVersion selects the UMLS data set (-V). Empty means tool default.
	DataVersion DataVersion

	// WordSenseDisambiguation enables WSD (-y).
	WordSenseDisambiguation bool

	// AllowLargeN allows large N candidate sets (-l).
	AllowLargeN bool

	// NoDerivationalVariants disables derivational variants (-d).
	NoDerivationalVariants bool

	// DerivationalVariants enables all derivational variants (-D).
	DerivationalVariants bool

	// IgnoreWordOrder matches candidates regardless of word order (-i).
	IgnoreWordOrder bool

	// AllowAcronymVariants allows acronym/abbreviation variants (-a).
	// Mutually exclusive with UniqueAcronymVariants.
	AllowAcronymVariants bool

	// UniqueAcronymVariants restricts to unique acronym variants (-u).
	// Mutually exclusive with AllowAcronymVariants.
	UniqueAcronymVariants bool

	// PreferMultipleConcepts prefers multiple-concept mappings (-Y).
	PreferMultipleConcepts bool

	// IgnoreStopPhrases skips the stop-phrase filter (-K).
	IgnoreStopPhrases bool

	// ComputeAllMappings computes every mapping, not just the best (-b).
	ComputeAllMappings bool

	// Prune limits the candidate set per phrase (--prune). Nil means off.
	Prune *int

	// ExcludeSources excludes UMLS vocabularies (-e).
	ExcludeSources []string

	// RestrictSources restricts to UMLS vocabularies (-R).
	RestrictSources []string

	// RestrictSemTypes restricts output to semantic types (-J).
	RestrictSemTypes []string

	// ExcludeSemTypes excludes semantic types from output (-k).
	ExcludeSemTypes []string
}

// DefaultOptions returns the options MetaMap is conventionally driven with:
// composite phrase depth 4 and plain sldi input.
func DefaultOptions() Options {
	return Options{
		CompositePhrase: 4,
		FileFormat:      FileFormatSLDI,
	}
}

// Request is one validated extraction call. Exactly one of Sentences or
// Filename carries the input. A nil Sentences slice means "no sentences";
// an empty non-nil slice is a legal (empty) sentence batch.
type Request struct {
	// Sentences is the ordered sentence batch to stage, or nil.
	Sentences []string

	// IDs optionally pairs one identifier with each sentence.
	// When set it must match Sentences in length.
	IDs []string

	// Filename is a pre-built input file to hand to the tool, or empty.
	Filename string

	// Options is the MetaMap option set.
	Options Options

	// StagingDir optionally places staged files in a specific directory,
	// e.g. on a RAM disk. Empty means the platform temp directory.
	StagingDir string
}

// HasSentences reports whether the request carries an in-memory sentence
// batch rather than a pre-built file.
func (r Request) HasSentences() bool {
	return r.Sentences != nil
}

// HasIDs reports whether per-sentence identifiers were supplied.
func (r Request) HasIDs() bool {
	return len(r.IDs) > 0
}

// Validate checks every cross-field invariant. It runs before any I/O and
// returns the first violated invariant as a sentinel error.
func (r Request) Validate() error {
	if r.Options.AllowAcronymVariants && r.Options.UniqueAcronymVariants {
		return ErrAcronymConflict
	}
	if r.HasSentences() == (r.Filename != "") {
		return ErrInputConflict
	}
	if !r.Options.FileFormat.IsValid() {
		return ErrInvalidFileFormat
	}
	if r.Options.DataVersion != "" && !r.Options.DataVersion.IsValid() {
		return ErrInvalidDataVersion
	}
	if r.HasIDs() && len(r.IDs) != len(r.Sentences) {
		return ErrIDCountMismatch
	}
	return nil
}

// Result pairs the decoded concepts with any tool-reported error.
// A non-empty ToolError does not invalidate Concepts: MetaMap may have
// written partial results before failing.
type Result struct {
	// Concepts are the decoded concept records, possibly partial.
	Concepts []Concept

	// ToolError is the right-trimmed stdout of the tool when it reported
	// an error, otherwise empty.
	ToolError string
}

// Failed reports whether the tool reported an error during the run.
func (r Result) Failed() bool {
	return r.ToolError != ""
}
