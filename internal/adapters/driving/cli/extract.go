package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
)

var (
	extractFile    string
	extractIDs     []string
	extractFormat  string
	extractJSON    bool
	extractStaging string

	extractComposite   int
	extractDataVersion string
	extractWSD         bool
	extractLargeN      bool
	extractNoDeriv     bool
	extractDeriv       bool
	extractWordOrder   bool
	extractAcronyms    bool
	extractUniqueAcr   bool
	extractMulti       bool
	extractStopPhrases bool
	extractAllMappings bool
	extractPrune       int

	extractExcludeSources []string
	extractRestrictSrcs   []string
	extractRestrictSTs    []string
	extractExcludeSTs     []string
)

var extractCmd = &cobra.Command{
	Use:   "extract [sentence]...",
	Short: "Extract concepts from sentences or an input file",
	Long: `Runs MetaMap once against the given sentences (or a pre-built sldi /
sldiID input file) and prints the decoded concept records.

Sentences are passed as arguments; --ids pairs one identifier with each
sentence. A tool-reported error is printed alongside whatever partial
concepts MetaMap produced before failing.`,
	RunE: runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.StringVar(&extractFile, "file", "", "pre-built input file instead of sentences")
	f.StringSliceVar(&extractIDs, "ids", nil, "one identifier per sentence")
	f.StringVar(&extractFormat, "file-format", "sldi", "input record format: sldi or sldiID")
	f.BoolVar(&extractJSON, "json", false, "output concepts as JSON")
	f.StringVar(&extractStaging, "staging-dir", "", "directory for staged files (e.g. a RAM disk)")

	f.IntVarP(&extractComposite, "composite-phrase", "Q", 4, "composite phrase depth")
	f.StringVarP(&extractDataVersion, "data-version", "V", "", "UMLS data version: Base, USAbase, or NLM")
	f.BoolVarP(&extractWSD, "word-sense-disambiguation", "y", false, "enable word sense disambiguation")
	f.BoolVarP(&extractLargeN, "allow-large-n", "l", false, "allow large candidate sets")
	f.BoolVarP(&extractNoDeriv, "no-derivational-variants", "d", false, "disable derivational variants")
	f.BoolVarP(&extractDeriv, "derivational-variants", "D", false, "enable all derivational variants")
	f.BoolVarP(&extractWordOrder, "ignore-word-order", "i", false, "match regardless of word order")
	f.BoolVarP(&extractAcronyms, "allow-acronym-variants", "a", false, "allow acronym/abbreviation variants")
	f.BoolVarP(&extractUniqueAcr, "unique-acronym-variants", "u", false, "restrict to unique acronym variants")
	f.BoolVarP(&extractMulti, "prefer-multiple-concepts", "Y", false, "prefer multiple-concept mappings")
	f.BoolVarP(&extractStopPhrases, "ignore-stop-phrases", "K", false, "skip the stop-phrase filter")
	f.BoolVarP(&extractAllMappings, "compute-all-mappings", "b", false, "compute every mapping, not just the best")
	f.IntVar(&extractPrune, "prune", 0, "prune candidate sets to N per phrase")

	f.StringSliceVarP(&extractExcludeSources, "exclude-sources", "e", nil, "UMLS vocabularies to exclude")
	f.StringSliceVarP(&extractRestrictSrcs, "restrict-sources", "R", nil, "UMLS vocabularies to restrict to")
	f.StringSliceVarP(&extractRestrictSTs, "restrict-sts", "J", nil, "semantic types to restrict to")
	f.StringSliceVarP(&extractExcludeSTs, "exclude-sts", "k", nil, "semantic types to exclude")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}
	if err := requireToolPath(); err != nil {
		return err
	}

	req, err := buildRequest(args)
	if err != nil {
		return err
	}

	result, err := extractionService.ExtractConcepts(context.Background(), req)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if extractJSON {
		return outputExtractJSON(cmd, result)
	}
	return outputExtractTable(cmd, result)
}

// buildRequest maps the flags onto a domain request. Validation proper is
// the service's job; this only assembles the value.
func buildRequest(args []string) (domain.Request, error) {
	opts := domain.Options{
		CompositePhrase:         extractComposite,
		FileFormat:              domain.FileFormat(extractFormat),
		DataVersion:             domain.DataVersion(extractDataVersion),
		WordSenseDisambiguation: extractWSD,
		AllowLargeN:             extractLargeN,
		NoDerivationalVariants:  extractNoDeriv,
		DerivationalVariants:    extractDeriv,
		IgnoreWordOrder:         extractWordOrder,
		AllowAcronymVariants:    extractAcronyms,
		UniqueAcronymVariants:   extractUniqueAcr,
		PreferMultipleConcepts:  extractMulti,
		IgnoreStopPhrases:       extractStopPhrases,
		ComputeAllMappings:      extractAllMappings,
		ExcludeSources:          extractExcludeSources,
		RestrictSources:         extractRestrictSrcs,
		RestrictSemTypes:        extractRestrictSTs,
		ExcludeSemTypes:         extractExcludeSTs,
	}
	if opts.DataVersion == "" && configStore != nil {
		opts.DataVersion = domain.DataVersion(configStore.GetString("metamap.data_version"))
	}
	if extractPrune > 0 {
		prune := extractPrune
		opts.Prune = &prune
	}

	req := domain.Request{
		Options:    opts,
		StagingDir: extractStaging,
	}
	if req.StagingDir == "" && configStore != nil {
		req.StagingDir = configStore.GetString("staging.dir")
	}

	if extractFile != "" {
		if len(args) > 0 {
			return domain.Request{}, errors.New("pass sentences or --file, not both")
		}
		req.Filename = extractFile
		return req, nil
	}

	req.Sentences = args
	req.IDs = extractIDs
	return req, nil
}

func outputExtractJSON(cmd *cobra.Command, result domain.Result) error {
	payload := struct {
		Concepts []domain.Concept `json:"concepts"`
		Error    string           `json:"error,omitempty"`
	}{
		Concepts: result.Concepts,
		Error:    result.ToolError,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal concepts: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputExtractTable(cmd *cobra.Command, result domain.Result) error {
	if len(result.Concepts) == 0 {
		cmd.Println("No concepts found.")
	} else {
		cmd.Println("Concepts:")
		cmd.Println()
		for _, c := range result.Concepts {
			switch concept := c.(type) {
			case domain.MMIConcept:
				cmd.Printf("  [%s] %s (%s) score=%.2f semtypes=%s\n",
					concept.Index, concept.PreferredName, concept.CUI,
					concept.Score, strings.Join(concept.SemTypes, ","))
			case domain.AcronymConcept:
				cmd.Printf("  [%s] %s: %s = %s\n",
					concept.Index, concept.Type, concept.ShortForm, concept.LongForm)
			default:
				cmd.Printf("  [%s] %s record\n", c.DocID(), c.ConceptType())
			}
		}
	}

	if result.Failed() {
		cmd.Println()
		cmd.Printf("Tool error (partial results above):\n%s\n", result.ToolError)
	}
	return nil
}
