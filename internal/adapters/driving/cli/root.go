// Package cli implements the roster command line using cobra.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/alao-ohio/roster/internal/core/ports/driving"
	"github.com/alao-ohio/roster/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services wired by the composition root.
var (
	cleanService    driving.CleanService
	settingsService driving.SettingsService
	historyService  driving.HistoryService

	serviceFactory ServiceFactory
	closeServices  func() error
)

// Persistent flag values.
var globalOpts GlobalOptions

// errNotConfigured is returned when a command runs without its service.
var errNotConfigured = errors.New("service not configured")

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	// ConfigDir holds config.toml. Empty means ~/.roster.
	ConfigDir string

	// DataDir holds the run history database. Empty means ~/.roster/data.
	DataDir string

	// Verbose enables debug and info logging.
	Verbose bool

	// Quiet suppresses warnings too. Verbose wins when both are set.
	Quiet bool
}

// Services are the core services the commands call.
type Services struct {
	Clean    driving.CleanService
	Settings driving.SettingsService
	History  driving.HistoryService

	// Close releases resources such as database handles. May be nil.
	Close func() error
}

// ServiceFactory builds services once flags have been parsed.
type ServiceFactory func(opts GlobalOptions) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Clean membership roster exports",
	Long: `roster normalises membership roster exports: it drops private and
administrative columns, then cleans names, cities, organizations, states,
postal codes, phone numbers, countries and addresses so the roster can be
merged and mailed.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalOpts.ConfigDir, "config-dir", "", "directory holding config.toml (default ~/.roster)")
	flags.StringVar(&globalOpts.DataDir, "data-dir", "", "directory holding run history (default ~/.roster/data)")
	flags.BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVarP(&globalOpts.Quiet, "quiet", "q", false, "suppress warnings about skipped columns")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices injects ready-made services.
func SetServices(clean driving.CleanService, settings driving.SettingsService, history driving.HistoryService) {
	cleanService = clean
	settingsService = settings
	historyService = history
}

// SetServiceFactory registers a factory that is called after flag parsing,
// so --config-dir and --data-dir take effect.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, teardown())
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(globalOpts.Verbose)
	logger.SetQuiet(globalOpts.Quiet)

	if serviceFactory == nil {
		return nil
	}

	svc, err := serviceFactory(globalOpts)
	if err != nil {
		return err
	}
	SetServices(svc.Clean, svc.Settings, svc.History)
	closeServices = svc.Close
	return nil
}

func teardown() error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}
