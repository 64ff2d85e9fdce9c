package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alao-ohio/roster/internal/core/domain"
)

// shortIDLen is how many characters of a run ID the listing shows.
const shortIDLen = 8

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded clean runs",
	Long: `Without arguments, list the most recent runs. With a run ID, show that
run in detail including per-column statistics.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum runs to list (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return fmt.Errorf("history: %w", errNotConfigured)
	}

	if len(args) == 1 {
		run, err := historyService.Get(cmd.Context(), args[0])
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("run %q not found", args[0])
		}
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printRunSummary(out, run)
		if !globalOpts.Verbose && len(run.Columns) > 0 {
			printColumnStats(out, stylesFor(out), run.Columns)
		}
		return nil
	}

	runs, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	st := stylesFor(cmd.OutOrStdout())
	cmd.Println(st.Muted.Render(fmt.Sprintf("%-8s  %-19s  %6s  %7s  %s", "id", "started", "rows", "changed", "status")))
	for i := range runs {
		run := &runs[i]
		status := st.Success.Render("ok")
		if !run.Succeeded() {
			status = st.Error.Render("failed")
		}
		cmd.Printf("%-8s  %-19s  %6d  %7d  %s\n",
			shortID(run.ID), run.StartedAt.Local().Format(time.DateTime), run.Rows, run.Changed(), status)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}
