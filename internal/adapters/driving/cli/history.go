package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent extraction runs",
	Long: `Lists the most recent extraction runs recorded in the local history
database, newest first. History is kept only when history.enabled is set:

  metamap-cli config set history.enabled true`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output runs as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	runs, err := historyService.ListRuns(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal runs: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(runs) == 0 {
		cmd.Println("No extraction runs recorded.")
		return nil
	}

	for _, run := range runs {
		input := run.Filename
		if input == "" {
			input = fmt.Sprintf("%d sentence(s)", run.SentenceCount)
		}
		status := "ok"
		if run.ToolError != "" {
			status = "tool error"
		}
		cmd.Printf("%s  %s  %-22s  %d concept(s)  %s  [%s]\n",
			run.ID,
			run.StartedAt.Format("2006-01-02 15:04:05"),
			input,
			run.ConceptCount,
			run.Duration.Round(time.Millisecond),
			status)
	}
	return nil
}
