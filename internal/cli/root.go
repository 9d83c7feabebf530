// Package cli defines the cobra command tree for propdesk.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"propdesk/internal/config"
	"propdesk/internal/database"
	"propdesk/internal/logging"
)

// NewRootCmd creates the root cobra command and its subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "propdesk",
		Short:         "Property management back office",
		Long:          "Back office API for buildings, units, owners, leases, payments, stock and service requests.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newSweepCmd(),
	)

	return root
}

// env is what every subcommand needs before doing its own work.
type env struct {
	cfg *config.AppConfig
	log *logrus.Logger
	db  *sql.DB
}

// bootstrap loads configuration, builds the logger and opens the database.
func bootstrap(ctx context.Context) (*env, error) {
	cfg := config.Load()
	log := logging.New(cfg.Log, cfg.Location())

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return &env{cfg: cfg, log: log, db: db}, nil
}

func (e *env) close() {
	if err := e.db.Close(); err != nil {
		e.log.WithError(err).Warn("closing database")
	}
}
