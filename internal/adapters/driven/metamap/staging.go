package metamap

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
	"github.com/custodia-labs/metamap-cli/internal/core/ports/driven"
)

// Ensure the adapter implements the interfaces.
var (
	_ driven.Stager      = (*Stager)(nil)
	_ driven.StagedFiles = (*staging)(nil)
)

// Stager creates per-call staged files. Uniqueness of the file names is
// delegated to the platform temp-file facility, so concurrent calls never
// collide.
type Stager struct{}

// NewStager creates a filesystem stager.
func NewStager() *Stager {
	return &Stager{}
}

// staging is the staged file pair for one call.
type staging struct {
	inputPath   string
	outputPath  string
	removeInput bool // staged input is deleted; a caller-supplied file is not
}

// Stage creates the staged files for the request. Sentence input is
// serialised one quoted record per line and flushed before returning, so
// the tool observes a complete input file. On error nothing is left behind.
func (s *Stager) Stage(req domain.Request) (driven.StagedFiles, error) {
	if req.HasSentences() {
		return stageSentences(req)
	}
	return stageFile(req)
}

// stageSentences writes the sentence batch to a fresh input file and
// reserves a fresh output file next to it.
func stageSentences(req domain.Request) (*staging, error) {
	in, err := os.CreateTemp(req.StagingDir, "metamap-*.input")
	if err != nil {
		return nil, fmt.Errorf("creating staged input: %w", err)
	}

	if err := writeRecords(in, req.Sentences, req.IDs); err != nil {
		in.Close()
		os.Remove(in.Name())
		return nil, fmt.Errorf("writing staged input: %w", err)
	}
	// Close before the tool starts: it must see a complete, settled file.
	if err := in.Close(); err != nil {
		os.Remove(in.Name())
		return nil, fmt.Errorf("closing staged input: %w", err)
	}

	outPath, err := stageOutput(req.StagingDir)
	if err != nil {
		os.Remove(in.Name())
		return nil, err
	}

	return &staging{
		inputPath:   in.Name(),
		outputPath:  outPath,
		removeInput: true,
	}, nil
}

// stageFile verifies the caller's input file is readable and reserves a
// fresh output file. The caller's file is never deleted.
func stageFile(req domain.Request) (*staging, error) {
	f, err := os.Open(req.Filename)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	f.Close()

	outPath, err := stageOutput(req.StagingDir)
	if err != nil {
		return nil, err
	}

	return &staging{
		inputPath:   req.Filename,
		outputPath:  outPath,
		removeInput: false,
	}, nil
}

// stageOutput reserves an empty, uniquely named output file for the tool.
func stageOutput(dir string) (string, error) {
	out, err := os.CreateTemp(dir, "metamap-*.output")
	if err != nil {
		return "", fmt.Errorf("creating staged output: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("closing staged output: %w", err)
	}
	return out.Name(), nil
}

// writeRecords writes one quoted record per line: 'sentence' or
// 'id'|'sentence' when identifiers are present.
func writeRecords(f *os.File, sentences, ids []string) error {
	for i, sentence := range sentences {
		var line string
		if len(ids) > 0 {
			line = quoteRecord(ids[i]) + "|" + quoteRecord(sentence) + "\n"
		} else {
			line = quoteRecord(sentence) + "\n"
		}
		if _, err := f.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}

// quoteRecord renders text the way MetaMap's sldi reader expects: wrapped
// in single quotes with backslash, quote, and line-break characters
// escaped. The encoding survives a round trip through the tool's
// line-based record reader; in particular no unescaped newline can reach
// the staged file.
func quoteRecord(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte('\'')
	for _, r := range text {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// InputPath is the file the tool reads.
func (s *staging) InputPath() string { return s.inputPath }

// OutputPath is the staged file the tool writes.
func (s *staging) OutputPath() string { return s.outputPath }

// ReadOutput reads the whole output file and splits it into lines.
// A trailing newline does not produce an empty final line.
func (s *staging) ReadOutput() ([]string, error) {
	data, err := os.ReadFile(s.outputPath)
	if err != nil {
		return nil, fmt.Errorf("reading staged output: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// Cleanup deletes the staged files. It is idempotent and keeps going on
// partial failure so one undeletable file never leaks the other.
func (s *staging) Cleanup() error {
	var errs []error
	if s.removeInput {
		if err := os.Remove(s.inputPath); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("removing staged input: %w", err))
		}
	}
	if err := os.Remove(s.outputPath); err != nil && !os.IsNotExist(err) {
		errs = append(errs, fmt.Errorf("removing staged output: %w", err))
	}
	return errors.Join(errs...)
}
