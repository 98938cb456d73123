// Package cli implements todoctl, the admin command line for inspecting and
// pruning persisted browser sessions.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/sessions"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/logging"
)

const defaultProfile = "local"

var errMemoryStore = errors.New("session store is memory; sessions live only inside the running server")

// App holds the persistent flag values shared by every subcommand.
type App struct {
	Profile   string
	ConfigDir string
	Verbose   bool
}

// NewRootCmd builds the todoctl command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todoctl",
		Short:        "Inspect and prune todo list sessions",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Show live sessions, most recently used first
  todoctl sessions list

  # Print every list of one session
  todoctl sessions show 6f1c1f1e-2b1a-4c53-9d4e-2f6f0b8a9c11

  # Remove expired sessions using the prod profile
  APP_PROFILE=prod todoctl sessions purge
`),
	}

	cmd.PersistentFlags().StringVar(&app.Profile, "profile", envOr("APP_PROFILE", defaultProfile), "Config profile (local, dev, qa, prod)")
	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", "configs", "Directory holding base.yaml and the profile files")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log debug details to stderr")

	cmd.AddCommand(newSessionsCmd(app))

	return cmd
}

// openStore loads the profile's config and opens its persistent session
// store, returning it with a text logger writing to stderr. The caller must
// Close the store.
func openStore(ctx context.Context, app *App, stderr io.Writer) (sessions.Store, *slog.Logger, error) {
	cfg, err := config.Load(app.Profile, config.WithConfigDir(app.ConfigDir))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logCfg := config.LogConfig{Level: cfg.Log.Level, Format: logging.FormatText}
	if app.Verbose {
		logCfg.Level = "debug"
	}
	logger := logging.New(logCfg, stderr)

	if cfg.Session.Store == config.StoreMemory {
		return nil, nil, errMemoryStore
	}

	logger.DebugContext(ctx, "opening session store",
		slog.String("profile", app.Profile),
		slog.String("store", cfg.Session.Store),
		slog.String("path", cfg.Session.SQLitePath),
	)
	store, err := sessions.Open(ctx, cfg.Session)
	if err != nil {
		return nil, nil, fmt.Errorf("opening session store: %w", err)
	}
	return store, logger, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
