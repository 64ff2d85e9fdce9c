package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driving"
)

var (
	cleanStrict    bool
	cleanIndex     bool
	cleanWatch     bool
	cleanNoHistory bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [input] [output]",
	Short: "Clean a roster export",
	Long: `Read a roster export, drop the configured columns, normalise every bound
column and write the cleaned roster.

Input and output default to input.path and output.path from the settings.
The output extension selects the format: .csv writes a CSV file, .db or
.sqlite appends a snapshot to a SQLite database.

With --watch the roster is cleaned again each time the input file changes,
until interrupted.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanStrict, "strict", true, "fail when a drop or bound column is missing")
	cleanCmd.Flags().BoolVar(&cleanIndex, "index", true, "write a leading unnamed row-number column (--index=false to omit)")
	cleanCmd.Flags().BoolVarP(&cleanWatch, "watch", "w", false, "re-run whenever the input changes")
	cleanCmd.Flags().BoolVar(&cleanNoHistory, "no-history", false, "do not record the run")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	if cleanService == nil {
		return fmt.Errorf("clean: %w", errNotConfigured)
	}

	req := driving.CleanRequest{SkipHistory: cleanNoHistory}
	if len(args) > 0 {
		req.InputPath = args[0]
	}
	if len(args) > 1 {
		req.OutputPath = args[1]
	}
	// Only explicit flags override the settings file
	if cmd.Flags().Changed("strict") {
		strict := cleanStrict
		req.Strict = &strict
	}
	if cmd.Flags().Changed("index") {
		index := cleanIndex
		req.WriteIndex = &index
	}

	if !cleanWatch {
		run, err := cleanService.Clean(cmd.Context(), req)
		if run != nil {
			printRunSummary(cmd.OutOrStdout(), run)
		}
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cmd.Println("Watching for changes, press Ctrl+C to stop.")
	return cleanService.Watch(ctx, req, func(run *domain.Run, err error) {
		if run != nil {
			printRunSummary(cmd.OutOrStdout(), run)
		}
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	})
}

// printRunSummary writes a short report of one run.
func printRunSummary(out io.Writer, run *domain.Run) {
	st := stylesFor(out)

	status := st.Success.Render("ok")
	if !run.Succeeded() {
		status = st.Error.Render("failed")
	}

	fmt.Fprintf(out, "%s %s %s\n", st.Title.Render("Run"), run.ID, status)
	fmt.Fprintf(out, "  %s %s\n", st.Label.Render("Input:  "), run.InputPath)
	fmt.Fprintf(out, "  %s %s\n", st.Label.Render("Output: "), run.OutputPath)
	fmt.Fprintf(out, "  %s %d\n", st.Label.Render("Rows:   "), run.Rows)
	fmt.Fprintf(out, "  %s %d columns\n", st.Label.Render("Dropped:"), len(run.Dropped))
	fmt.Fprintf(out, "  %s %d cells\n", st.Label.Render("Changed:"), run.Changed())
	if d := run.Duration(); d > 0 {
		fmt.Fprintf(out, "  %s %s\n", st.Label.Render("Took:   "), d.Round(time.Millisecond))
	}
	if !run.Succeeded() {
		fmt.Fprintf(out, "  %s %s\n", st.Label.Render("Error:  "), st.Error.Render(run.Error))
	}
	if globalOpts.Verbose && len(run.Columns) > 0 {
		printColumnStats(out, st, run.Columns)
	}
}

// printColumnStats writes per-column counts.
func printColumnStats(out io.Writer, st *styles, cols []domain.ColumnStats) {
	header := fmt.Sprintf("  %-31s %-13s %7s  %7s  %7s", "column", "rule", "changed", "blanked", "missing")
	fmt.Fprintln(out, st.Muted.Render(header))
	for _, c := range cols {
		fmt.Fprintf(out, "  %-31s %-13s %7d  %7d  %7d\n", c.Column, c.Rule, c.Changed, c.Blanked, c.Missing)
	}
}
