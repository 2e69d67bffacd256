package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mroblesd/hotel-reservation/cmd/customer"
	"github.com/mroblesd/hotel-reservation/cmd/demo"
	"github.com/mroblesd/hotel-reservation/cmd/hotel"
	"github.com/mroblesd/hotel-reservation/cmd/migrate"
	"github.com/mroblesd/hotel-reservation/cmd/reservation"
	"github.com/mroblesd/hotel-reservation/cmd/seed"
	"github.com/mroblesd/hotel-reservation/pkg/config"
	"github.com/mroblesd/hotel-reservation/pkg/persistence"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hotel-reservation",
	Short: "manage hotels, customers and reservations stored as JSON documents",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	logrus.SetLevel(logrus.InfoLevel)

	rootCmd.PersistentFlags().StringVar(&config.ConfigPath, "config",
		persistence.DefaultConfigPath, "config file selecting the storage backend and document paths")

	rootCmd.AddCommand(hotel.HotelCmd)
	rootCmd.AddCommand(customer.CustomerCmd)
	rootCmd.AddCommand(reservation.ReservationCmd)
	rootCmd.AddCommand(seed.SeedCmd)
	rootCmd.AddCommand(demo.DemoCmd)
	rootCmd.AddCommand(migrate.MigrateCmd)
}
