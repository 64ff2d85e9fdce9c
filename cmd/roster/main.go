// Command roster cleans membership roster exports.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alao-ohio/roster/internal/adapters/driven/config/env"
	"github.com/alao-ohio/roster/internal/adapters/driven/config/file"
	"github.com/alao-ohio/roster/internal/adapters/driven/storage/sqlite"
	"github.com/alao-ohio/roster/internal/adapters/driven/table/csv"
	"github.com/alao-ohio/roster/internal/adapters/driven/watch"
	"github.com/alao-ohio/roster/internal/adapters/driving/cli"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/core/services"
	"github.com/alao-ohio/roster/internal/pipeline"
)

// version is set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(newServices)

	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newServices wires adapters into the core services.
func newServices(opts cli.GlobalOptions) (*cli.Services, error) {
	fileStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	configStore, err := env.Wrap(fileStore)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}

	settings := services.NewSettingsService(configStore)
	runs := store.RunStore()

	cleaner := services.NewCleaner(
		settings,
		pipeline.NewFactory(pipeline.DefaultRegistry()),
		[]driven.TableReader{csv.NewReader(), sqlite.NewSnapshotReader()},
		[]driven.TableWriter{csv.NewWriter(), sqlite.NewSnapshotWriter()},
		runs,
		watch.New(),
	)

	return &cli.Services{
		Clean:    cleaner,
		Settings: settings,
		History:  services.NewHistoryService(runs),
		Close:    store.Close,
	}, nil
}
