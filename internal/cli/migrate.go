package cli

import (
	"github.com/spf13/cobra"

	"propdesk/internal/database/migration"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long:  "Create the schema if it has not been applied yet. Safe to run repeatedly.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			return migration.EnsureMigrated(cmd.Context(), e.db, e.log, e.cfg.Database.Host)
		},
	}
}
