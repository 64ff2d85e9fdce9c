package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the columns dropped before cleaning",
	Long: `List the columns removed from the roster before normalisation.

In strict mode a clean fails when any of these columns is missing from the
input; otherwise missing columns are skipped with a warning.`,
	RunE: runColumns,
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}

func runColumns(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("columns: %w", errNotConfigured)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	mode := "lenient"
	if settings.Strict {
		mode = "strict"
	}
	cmd.Printf("%d columns dropped (%s)\n", len(settings.DropColumns), mode)
	for _, c := range settings.DropColumns {
		cmd.Printf("  %s\n", c)
	}
	return nil
}
