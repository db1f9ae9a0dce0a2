package metamap

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
	"github.com/custodia-labs/metamap-cli/internal/core/ports/driven"
)

// Ensure Builder implements the interface.
var _ driven.CommandBuilder = (*Builder)(nil)

// Builder constructs MetaMap argument vectors. Construction is pure and
// the flag order is stable, so identical requests always produce
// identical vectors.
type Builder struct {
	toolPath string
}

// NewBuilder creates a builder for the MetaMap binary at toolPath.
func NewBuilder(toolPath string) *Builder {
	return &Builder{toolPath: toolPath}
}

// Build returns the full argument vector for one invocation.
//
// List-valued flags and --prune are emitted as a single token with an
// embedded space ("-e SRC1,SRC2", "--prune 10"). MetaMap's argument
// parser expects exactly that shape; do not split them.
func (b *Builder) Build(req domain.Request, inputPath, outputPath string) []string {
	opts := req.Options

	// -N selects fielded (MMI) output, processed in one pass.
	argv := []string{b.toolPath, "-N", "-Q", strconv.Itoa(opts.CompositePhrase)}

	if opts.DataVersion != "" {
		argv = append(argv, "-V", opts.DataVersion.String())
	}
	if opts.WordSenseDisambiguation {
		argv = append(argv, "-y")
	}
	if opts.AllowLargeN {
		argv = append(argv, "-l")
	}
	if opts.NoDerivationalVariants {
		argv = append(argv, "-d")
	}
	if opts.DerivationalVariants {
		argv = append(argv, "-D")
	}
	if opts.IgnoreWordOrder {
		argv = append(argv, "-i")
	}
	if opts.AllowAcronymVariants {
		argv = append(argv, "-a")
	}
	if opts.UniqueAcronymVariants {
		argv = append(argv, "-u")
	}
	if opts.PreferMultipleConcepts {
		argv = append(argv, "-Y")
	}
	if opts.IgnoreStopPhrases {
		argv = append(argv, "-K")
	}
	if opts.ComputeAllMappings {
		argv = append(argv, "-b")
	}

	argv = append(argv, selectorFlag(req))

	argv = appendListFlag(argv, "-e", opts.ExcludeSources)
	argv = appendListFlag(argv, "-R", opts.RestrictSources)
	argv = appendListFlag(argv, "-k", opts.ExcludeSemTypes)
	argv = appendListFlag(argv, "-J", opts.RestrictSemTypes)

	if opts.Prune != nil {
		argv = append(argv, "--prune "+strconv.Itoa(*opts.Prune))
	}

	return append(argv, inputPath, outputPath)
}

// selectorFlag picks the line-record format flag. The identifier-bearing
// form is used when per-sentence IDs were supplied, or when the caller
// reads a pre-built file declared as sldiID.
func selectorFlag(req domain.Request) string {
	if req.HasIDs() || (!req.HasSentences() && req.Options.FileFormat == domain.FileFormatSLDIID) {
		return "--sldiID"
	}
	return "--sldi"
}

// appendListFlag appends flag and its comma-joined values as ONE token.
func appendListFlag(argv []string, flag string, values []string) []string {
	if len(values) == 0 {
		return argv
	}
	return append(argv, flag+" "+strings.Join(values, ","))
}
