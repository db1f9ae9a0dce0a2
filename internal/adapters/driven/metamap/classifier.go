package metamap

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/custodia-labs/metamap-cli/internal/core/ports/driven"
)

// Ensure StdoutClassifier implements the interface.
var _ driven.FailureClassifier = (*StdoutClassifier)(nil)

// errorSignature is the literal substring MetaMap prints on failure.
const errorSignature = "ERROR"

// StdoutClassifier detects failed runs by scanning the tool's stdout for
// the literal ERROR substring. It is a heuristic, not an exit-code check:
// MetaMap exits zero after many failures, and a failed run may still have
// written partial output worth decoding.
type StdoutClassifier struct{}

// NewStdoutClassifier creates the substring-based classifier.
func NewStdoutClassifier() *StdoutClassifier {
	return &StdoutClassifier{}
}

// Classify returns the right-trimmed stdout text and true when the error
// signature is present, otherwise "" and false.
func (c *StdoutClassifier) Classify(stdout []byte) (string, bool) {
	if !bytes.Contains(stdout, []byte(errorSignature)) {
		return "", false
	}
	return strings.TrimRightFunc(string(stdout), unicode.IsSpace), true
}
