package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alao-ohio/roster/internal/core/domain"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List normalisation rules and their columns",
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, _ []string) error {
	if cleanService == nil || settingsService == nil {
		return fmt.Errorf("rules: %w", errNotConfigured)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	columns := make(map[domain.Rule][]string)
	for _, b := range settings.Bindings {
		columns[b.Rule] = append(columns[b.Rule], b.Column)
	}

	st := stylesFor(cmd.OutOrStdout())
	for _, name := range cleanService.Rules() {
		rule := domain.Rule(name)
		cmd.Printf("%s  %s\n", st.Title.Render(fmt.Sprintf("%-13s", name)), rule.Description())
		if len(columns[rule]) == 0 {
			cmd.Println(st.Muted.Render("    (no columns)"))
		}
		for _, c := range columns[rule] {
			cmd.Printf("    %s\n", c)
		}
	}

	// Bindings to rules that do not exist would fail at clean time
	for _, b := range settings.Bindings {
		if !b.Rule.IsValid() {
			cmd.Println(st.Warning.Render(fmt.Sprintf("unknown rule %q for column %q", b.Rule, b.Column)))
		}
	}
	return nil
}
