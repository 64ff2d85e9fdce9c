package cli

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var settingsInitForce bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage clean settings",
	Long: `View and initialise the settings file.

Settings live in config.toml inside the config directory. Columns are bound
to rules under [columns], and extra organization spellings go under
[organization.aliases].`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Long:  `Write every setting with its default value, so it can be edited.`,
	RunE:  runSettingsInit,
}

var settingsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the settings for problems",
	RunE:  runSettingsValidate,
}

func init() {
	settingsInitCmd.Flags().BoolVarP(&settingsInitForce, "force", "f", false, "overwrite an existing settings file")
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsValidateCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("File: %s\n", settingsService.Path())
	cmd.Println()

	cmd.Println("[Files]")
	cmd.Printf("  Input: %s\n", settings.InputPath)
	cmd.Printf("  Output: %s\n", settings.OutputPath)
	cmd.Printf("  Index column: %s\n", yesNo(settings.WriteIndex))
	cmd.Println()

	cmd.Println("[Clean]")
	cmd.Printf("  Strict: %s\n", yesNo(settings.Strict))
	cmd.Printf("  Unicode NFC: %s\n", yesNo(settings.NormalizeUnicode))
	cmd.Printf("  Drop columns: %d\n", len(settings.DropColumns))
	cmd.Printf("  Missing markers: %s\n", quoteAll(settings.MissingMarkers))
	cmd.Println()

	cmd.Println("[Columns]")
	for _, b := range settings.Bindings {
		cmd.Printf("  %s: %s\n", b.Column, b.Rule)
	}

	if len(settings.OrganizationAliases) > 0 {
		cmd.Println()
		cmd.Println("[Organization Aliases]")
		for _, k := range slices.Sorted(maps.Keys(settings.OrganizationAliases)) {
			cmd.Printf("  %s: %s\n", k, settings.OrganizationAliases[k])
		}
	}

	if err := settingsService.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runSettingsInit(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	path := settingsService.Path()
	if _, err := os.Stat(path); err == nil && !settingsInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Wrote default settings to %s\n", path)
	return nil
}

func runSettingsValidate(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Validate(); err != nil {
		return err
	}
	cmd.Println("Settings are valid.")
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func quoteAll(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, " ")
}
