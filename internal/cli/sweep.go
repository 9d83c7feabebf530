package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"propdesk/internal/events"
	"propdesk/internal/repository/postgres"
	"propdesk/internal/scheduler"
	"propdesk/internal/service"
)

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Expire ended leases and flag overdue payments once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			settings := service.NewSettingsService(postgres.NewSettingsPostgres(e.db), events.NewEmitter(nil, e.log))
			s := scheduler.NewSweeper(postgres.NewLeasePostgres(e.db), postgres.NewPaymentPostgres(e.db),
				postgres.NewUnitPostgres(e.db), settings, e.log)
			res, err := s.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "leases expired: %d, units occupied: %d, units vacated: %d, payments overdue: %d\n",
				res.LeasesExpired, res.UnitsOccupied, res.UnitsVacated, res.PaymentsOverdue)
			return nil
		},
	}
}
