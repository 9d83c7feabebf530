package cli

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"propdesk/internal/repository/postgres"
	"propdesk/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load cities and districts from a YAML file",
		Long:  "Create the cities and districts listed in a YAML file. Existing records are left alone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			f, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			e, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			rep, err := seed.Apply(cmd.Context(), f, postgres.NewCityPostgres(e.db), postgres.NewDistrictPostgres(e.db))
			if err != nil {
				return err
			}
			e.log.WithFields(logrus.Fields{
				"cities_created":     rep.CitiesCreated,
				"cities_existing":    rep.CitiesExisting,
				"districts_created":  rep.DistrictsCreated,
				"districts_existing": rep.DistrictsExisting,
			}).Info("seed applied")
			fmt.Fprintf(cmd.OutOrStdout(), "cities: %d created, %d existing; districts: %d created, %d existing\n",
				rep.CitiesCreated, rep.CitiesExisting, rep.DistrictsCreated, rep.DistrictsExisting)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the YAML seed file")

	return cmd
}
