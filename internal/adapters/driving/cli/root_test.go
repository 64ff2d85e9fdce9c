package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alao-ohio/roster/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "roster", rootCmd.Use)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	assert.NotNil(t, flags.Lookup("config-dir"))
	assert.NotNil(t, flags.Lookup("data-dir"))
	assert.NotNil(t, flags.Lookup("verbose"))
	assert.NotNil(t, flags.Lookup("quiet"))
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"clean", "normalise", "rules", "columns", "history", "settings", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}

func TestServiceFactory_ReceivesFlagsAndCloses(t *testing.T) {
	svc, cleanup := setupServices(t)
	defer cleanup()

	var got GlobalOptions
	closed := false
	SetServiceFactory(func(opts GlobalOptions) (*Services, error) {
		got = opts
		return &Services{
			Clean:    svc.clean,
			Settings: svc.settings,
			History:  svc.history,
			Close: func() error {
				closed = true
				return nil
			},
		}, nil
	})
	defer SetServiceFactory(nil)
	defer func() {
		globalOpts = GlobalOptions{}
		logger.SetVerbose(false)
		logger.SetQuiet(false)
		f := rootCmd.PersistentFlags()
		for _, name := range []string{"config-dir", "data-dir", "verbose", "quiet"} {
			_ = f.Lookup(name).Value.Set(f.Lookup(name).DefValue)
			f.Lookup(name).Changed = false
		}
	}()

	rootCmd.SetArgs([]string{"columns", "--config-dir", "/tmp/cfg", "--data-dir", "/tmp/data", "-v"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, Execute(context.Background()))

	assert.Equal(t, GlobalOptions{ConfigDir: "/tmp/cfg", DataDir: "/tmp/data", Verbose: true}, got)
	assert.True(t, logger.IsVerbose())
	assert.True(t, closed)
}

func TestServiceFactory_Error(t *testing.T) {
	_, cleanup := setupServices(t)
	defer cleanup()

	SetServiceFactory(func(GlobalOptions) (*Services, error) {
		return nil, errors.New("cannot open history")
	})
	defer SetServiceFactory(nil)

	_, err := execute(t, "columns")

	assert.EqualError(t, err, "cannot open history")
}

func TestRootCmd_QuietSuppressesWarnings(t *testing.T) {
	_, cleanup := setupServices(t)
	defer cleanup()
	defer func() {
		globalOpts = GlobalOptions{}
		logger.SetQuiet(false)
		logger.SetOutput(os.Stderr)
		f := rootCmd.PersistentFlags().Lookup("quiet")
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}()

	buf := new(bytes.Buffer)
	logger.SetOutput(buf)

	_, err := execute(t, "columns", "--quiet")
	require.NoError(t, err)

	assert.True(t, globalOpts.Quiet)
	logger.Warn("column %q not present", "Balance")
	assert.Empty(t, buf.String())
}
