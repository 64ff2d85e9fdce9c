package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alao-ohio/roster/internal/core/domain"
)

var normaliseCmd = &cobra.Command{
	Use:     "normalise <rule> <value...>",
	Aliases: []string{"normalize"},
	Short:   "Normalise values with a single rule",
	Long: `Apply one rule to each value and print the results, one per line.
Useful for checking how a cell will be cleaned.

Run "roster rules" to list the available rules.`,
	Example: `  roster normalise phone "(614) 555-1234"
  roster normalise organization "osu marion" ohionet`,
	Args: cobra.MinimumNArgs(2),
	RunE: runNormalise,
}

func init() {
	rootCmd.AddCommand(normaliseCmd)
}

func runNormalise(cmd *cobra.Command, args []string) error {
	if cleanService == nil {
		return fmt.Errorf("normalise: %w", errNotConfigured)
	}

	rule := domain.Rule(args[0])
	for _, value := range args[1:] {
		cleaned, err := cleanService.NormaliseValue(rule, value)
		if err != nil {
			return err
		}
		cmd.Println(cleaned)
	}
	return nil
}
