package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
)

func TestExtractCmd_Use(t *testing.T) {
	assert.Equal(t, "extract [sentence]...", extractCmd.Use)
}

func TestExtractCmd_Short(t *testing.T) {
	assert.Equal(t, "Extract concepts from sentences or an input file", extractCmd.Short)
}

func TestExtractCmd_HasOptionFlags(t *testing.T) {
	for flag, shorthand := range map[string]string{
		"composite-phrase":          "Q",
		"data-version":              "V",
		"word-sense-disambiguation": "y",
		"allow-large-n":             "l",
		"no-derivational-variants":  "d",
		"derivational-variants":     "D",
		"ignore-word-order":         "i",
		"allow-acronym-variants":    "a",
		"unique-acronym-variants":   "u",
		"prefer-multiple-concepts":  "Y",
		"ignore-stop-phrases":       "K",
		"compute-all-mappings":      "b",
		"exclude-sources":           "e",
		"restrict-sources":          "R",
		"restrict-sts":              "J",
		"exclude-sts":               "k",
	} {
		f := extractCmd.Flags().Lookup(flag)
		require.NotNil(t, f, "flag %s should exist", flag)
		assert.Equal(t, shorthand, f.Shorthand, "flag %s shorthand", flag)
	}
}

func TestExtractCmd_CompositePhraseDefault(t *testing.T) {
	flag := extractCmd.Flags().Lookup("composite-phrase")
	require.NotNil(t, flag)
	assert.Equal(t, "4", flag.DefValue)
}

func TestExtractCmd_ExecutesWithSentences(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"extract", "patient has fever"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Concepts:")
	assert.Contains(t, buf.String(), "Fever")
	assert.Contains(t, buf.String(), "C0015967")
}

func TestExtractCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"extract", "--json", "patient has fever"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"concepts\"")
	assert.Contains(t, buf.String(), "\"CUI\"")
}

func TestExtractCmd_ToolErrorPrintedWithPartials(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	extractionService = &mockExtractionService{
		result: domain.Result{
			Concepts:  []domain.Concept{domain.MMIConcept{Index: "p1", PreferredName: "Fever"}},
			ToolError: "ERROR: no such data version",
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"extract", "fever"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Fever")
	assert.Contains(t, buf.String(), "Tool error")
	assert.Contains(t, buf.String(), "ERROR: no such data version")
}

func TestExtractCmd_RejectsSentencesAndFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"extract", "--file", "batch.txt", "fever"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}

func TestExtractCmd_ServiceNotConfigured(t *testing.T) {
	oldService := extractionService
	extractionService = nil
	defer func() {
		extractionService = oldService
	}()

	err := runExtract(extractCmd, []string{"fever"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "extraction service not configured")
}

func TestExtractCmd_ToolPathNotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	configStore = &mockConfigStore{data: map[string]any{}}

	err := runExtract(extractCmd, []string{"fever"})

	assert.ErrorIs(t, err, domain.ErrToolNotConfigured)
}

func TestBuildRequest_MapsFlagsToOptions(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	extractIDs = []string{"p1", "p2"}
	extractWSD = true
	extractPrune = 10
	extractRestrictSrcs = []string{"SNOMEDCT_US", "MSH"}

	req, err := buildRequest([]string{"fever", "cough"})
	require.NoError(t, err)

	assert.Equal(t, []string{"fever", "cough"}, req.Sentences)
	assert.Equal(t, []string{"p1", "p2"}, req.IDs)
	assert.True(t, req.Options.WordSenseDisambiguation)
	require.NotNil(t, req.Options.Prune)
	assert.Equal(t, 10, *req.Options.Prune)
	assert.Equal(t, []string{"SNOMEDCT_US", "MSH"}, req.Options.RestrictSources)
	assert.Nil(t, req.Options.ExcludeSources)
}

func TestBuildRequest_FileInput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	extractFile = "batch.txt"
	extractFormat = "sldiID"

	req, err := buildRequest(nil)
	require.NoError(t, err)

	assert.Equal(t, "batch.txt", req.Filename)
	assert.Nil(t, req.Sentences)
	assert.Equal(t, domain.FileFormatSLDIID, req.Options.FileFormat)
}

func TestBuildRequest_ConfigDefaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	configStore = &mockConfigStore{data: map[string]any{
		"metamap.path":         "/opt/metamap/bin/metamap",
		"metamap.data_version": "USAbase",
		"staging.dir":          "/dev/shm",
	}}

	req, err := buildRequest([]string{"fever"})
	require.NoError(t, err)

	assert.Equal(t, domain.DataVersionUSABase, req.Options.DataVersion)
	assert.Equal(t, "/dev/shm", req.StagingDir)
}

func TestBuildRequest_FlagOverridesConfigDefault(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	configStore = &mockConfigStore{data: map[string]any{
		"metamap.data_version": "USAbase",
	}}
	extractDataVersion = "NLM"

	req, err := buildRequest([]string{"fever"})
	require.NoError(t, err)

	assert.Equal(t, domain.DataVersionNLM, req.Options.DataVersion)
}
