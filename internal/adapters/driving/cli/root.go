// Package cli is the cobra-based driving adapter: it wires the config
// store and the extraction service, and maps commands onto the driving
// ports.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/metamap-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/metamap-cli/internal/adapters/driven/metamap"
	"github.com/custodia-labs/metamap-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/metamap-cli/internal/core/domain"
	"github.com/custodia-labs/metamap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/metamap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/metamap-cli/internal/core/services"
	"github.com/custodia-labs/metamap-cli/internal/logger"
	"github.com/custodia-labs/metamap-cli/internal/parsers/mmi"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	verboseFlag   bool
	configDirFlag string
)

// Package-level services, wired in initServices.
// Tests inject their own implementations here.
var (
	configStore       driven.ConfigStore
	extractionService driving.ExtractionService
	historyService    driving.HistoryService
)

var rootCmd = &cobra.Command{
	Use:   "metamap-cli",
	Short: "Extract UMLS concepts from text with MetaMap",
	Long: `metamap-cli drives a local MetaMap installation: it stages sentence
batches as input files, runs the tool, and decodes its fielded (MMI)
output into structured concept records.

Configure the MetaMap binary path once:

  metamap-cli config set metamap.path /opt/metamap/bin/metamap`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "narrate staging, invocation, and decoding to stderr")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "config directory (default ~/.metamap-cli)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the default adapters into the services. It runs once
// per invocation; tests pre-populate the package-level services instead.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if extractionService != nil {
		return nil
	}

	store, err := configfile.NewConfigStore(configDirFlag)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	configStore = store

	svc := services.NewExtractionService(
		metamap.NewStager(),
		metamap.NewBuilder(store.GetString("metamap.path")),
		metamap.NewInvoker(),
		metamap.NewStdoutClassifier(),
		mmi.NewParser(),
	)

	if store.GetBool("history.enabled") {
		runStore, err := sqlite.NewRunStore("")
		if err != nil {
			logger.Warn("Run history disabled: %v", err)
		} else {
			svc.SetRunStore(runStore)
		}
	}

	extractionService = svc
	historyService = svc
	return nil
}

// requireToolPath fails early when no MetaMap binary is configured, so the
// user sees a configuration hint instead of a spawn error.
func requireToolPath() error {
	if configStore == nil || configStore.GetString("metamap.path") == "" {
		return fmt.Errorf("%w: run 'metamap-cli config set metamap.path /path/to/metamap'", domain.ErrToolNotConfigured)
	}
	return nil
}
