// Package mmi decodes MetaMap fielded (MMI) output into concept records.
//
// Every output line is pipe-delimited with the record kind in the second
// field: MMI for scored concept mappings, AA/UA for acronym expansions.
// The grammar is owned by MetaMap; this package only maps fields onto the
// domain types.
package mmi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
	"github.com/custodia-labs/metamap-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.ConceptParser = (*Parser)(nil)

// Parser decodes MMI output lines.
type Parser struct{}

// NewParser creates an MMI output parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the ordered output lines into concept records. Blank
// lines are skipped. A line with an unknown record kind or too few fields
// is reported with its 1-based line number.
func (p *Parser) Parse(lines []string) ([]domain.Concept, error) {
	var concepts []domain.Concept
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		concept, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		concepts = append(concepts, concept)
	}
	return concepts, nil
}

// parseLine dispatches on the record kind tag.
func parseLine(line string) (domain.Concept, error) {
	fields := strings.Split(line, "|")
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: %q", domain.ErrMalformedRecord, line)
	}

	switch domain.ConceptType(fields[1]) {
	case domain.ConceptTypeMMI:
		return parseMMI(fields)
	case domain.ConceptTypeAA:
		return parseAcronym(fields, domain.ConceptTypeAA)
	case domain.ConceptTypeUA:
		return parseAcronym(fields, domain.ConceptTypeUA)
	default:
		return nil, fmt.Errorf("%w: unknown record kind %q", domain.ErrMalformedRecord, fields[1])
	}
}

// parseMMI maps the fields of a scored concept mapping:
// id|MMI|score|preferred name|CUI|[semtypes]|trigger|location|positions|treecodes
func parseMMI(fields []string) (domain.Concept, error) {
	if len(fields) < 9 {
		return nil, fmt.Errorf("%w: MMI record has %d fields", domain.ErrMalformedRecord, len(fields))
	}

	score, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: score %q", domain.ErrMalformedRecord, fields[2])
	}

	positions, err := parseSpans(fields[8])
	if err != nil {
		return nil, err
	}

	c := domain.MMIConcept{
		Index:         fields[0],
		Score:         score,
		PreferredName: fields[3],
		CUI:           fields[4],
		SemTypes:      parseSemTypes(fields[5]),
		Trigger:       fields[6],
		Location:      fields[7],
		Positions:     positions,
	}
	if len(fields) > 9 && fields[9] != "" {
		c.TreeCodes = strings.Split(fields[9], ";")
	}
	return c, nil
}

// parseAcronym maps the fields of an AA or UA record:
// id|AA|short form|long form|tokens(short)|chars(short)|tokens(long)|chars(long)|positions
func parseAcronym(fields []string, kind domain.ConceptType) (domain.Concept, error) {
	if len(fields) < 9 {
		return nil, fmt.Errorf("%w: %s record has %d fields", domain.ErrMalformedRecord, kind, len(fields))
	}

	counts := make([]int, 4)
	for i, f := range fields[4:8] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: count %q", domain.ErrMalformedRecord, f)
		}
		counts[i] = n
	}

	positions, err := parseSpans(fields[8])
	if err != nil {
		return nil, err
	}

	return domain.AcronymConcept{
		Index:           fields[0],
		Type:            kind,
		ShortForm:       fields[2],
		LongForm:        fields[3],
		ShortFormTokens: counts[0],
		ShortFormChars:  counts[1],
		LongFormTokens:  counts[2],
		LongFormChars:   counts[3],
		Positions:       positions,
	}, nil
}

// parseSemTypes strips the surrounding brackets from "[sosy,dsyn]".
func parseSemTypes(field string) []string {
	field = strings.TrimPrefix(field, "[")
	field = strings.TrimSuffix(field, "]")
	if field == "" {
		return nil
	}
	return strings.Split(field, ",")
}

// parseSpans decodes the positional field: start/length pairs separated
// by ";" or ",", optionally bracketed, e.g. "228/5;[248/5]".
func parseSpans(field string) ([]domain.Span, error) {
	field = strings.Map(func(r rune) rune {
		if r == '[' || r == ']' {
			return -1
		}
		return r
	}, field)
	if field == "" {
		return nil, nil
	}

	var spans []domain.Span
	for _, part := range strings.FieldsFunc(field, func(r rune) bool { return r == ';' || r == ',' }) {
		start, length, ok := strings.Cut(part, "/")
		if !ok {
			return nil, fmt.Errorf("%w: position %q", domain.ErrMalformedRecord, part)
		}
		s, err := strconv.Atoi(start)
		if err != nil {
			return nil, fmt.Errorf("%w: position %q", domain.ErrMalformedRecord, part)
		}
		l, err := strconv.Atoi(length)
		if err != nil {
			return nil, fmt.Errorf("%w: position %q", domain.ErrMalformedRecord, part)
		}
		spans = append(spans, domain.Span{Start: s, Length: l})
	}
	return spans, nil
}
