package domain

// ConceptType tags the record kind in MetaMap fielded output.
// It is the second pipe-delimited field of every output line.
type ConceptType string

// Recognised record kinds.
const (
	// ConceptTypeMMI is a scored UMLS concept mapping.
	ConceptTypeMMI ConceptType = "MMI"

	// ConceptTypeAA is an acronym/abbreviation detected in the input.
	ConceptTypeAA ConceptType = "AA"

	// ConceptTypeUA is a user-defined acronym.
	ConceptTypeUA ConceptType = "UA"
)

// Span is a character region of the input, as a start offset and length.
type Span struct {
	// Start is the zero-based character offset.
	Start int

	// Length is the span length in characters.
	Length int
}

// Concept is one decoded record from the tool's fielded output.
type Concept interface {
	// ConceptType returns the record kind tag.
	ConceptType() ConceptType

	// DocID returns the identifier of the input record this concept
	// was extracted from.
	DocID() string
}

// MMIConcept is a scored UMLS concept mapping (an MMI record).
type MMIConcept struct {
	// Index is the input record identifier.
	Index string

	// Score is the MMI relevance score.
	Score float64

	// PreferredName is the concept's preferred UMLS name.
	PreferredName string

	// CUI is the UMLS concept unique identifier, e.g. "C0015967".
	CUI string

	// SemTypes are the semantic type abbreviations, e.g. ["sosy"].
	SemTypes []string

	// Trigger describes the text that triggered the mapping.
	Trigger string

	// Location names the document part the match occurred in.
	Location string

	// Positions are the character spans of the matched text.
	Positions []Span

	// TreeCodes are MeSH tree codes, when present.
	TreeCodes []string
}

// ConceptType returns ConceptTypeMMI.
func (c MMIConcept) ConceptType() ConceptType { return ConceptTypeMMI }

// DocID returns the input record identifier.
func (c MMIConcept) DocID() string { return c.Index }

// AcronymConcept is an acronym expansion record (AA or UA).
type AcronymConcept struct {
	// Index is the input record identifier.
	Index string

	// Type is ConceptTypeAA or ConceptTypeUA.
	Type ConceptType

	// ShortForm is the acronym as it appeared.
	ShortForm string

	// LongForm is the expansion it was resolved to.
	LongForm string

	// ShortFormTokens is the token count of the short form.
	ShortFormTokens int

	// ShortFormChars is the character count of the short form.
	ShortFormChars int

	// LongFormTokens is the token count of the long form.
	LongFormTokens int

	// LongFormChars is the character count of the long form.
	LongFormChars int

	// Positions are the character spans of the short form.
	Positions []Span
}

// ConceptType returns the record kind tag (AA or UA).
func (c AcronymConcept) ConceptType() ConceptType { return c.Type }

// DocID returns the input record identifier.
func (c AcronymConcept) DocID() string { return c.Index }
