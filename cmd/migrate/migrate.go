package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mroblesd/hotel-reservation/pkg/config"
	"github.com/mroblesd/hotel-reservation/pkg/persistence"
)

var (
	fromBackend string
	toBackend   string
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "migrate the documents between storage backends",
	Long:  `Migrate all three documents from one storage backend to another (e.g. json to sqlite), using the configured document paths.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func init() {
	MigrateCmd.Flags().StringVar(&fromBackend, "from", "json", "source backend (json or sqlite)")
	MigrateCmd.Flags().StringVar(&toBackend, "to", "sqlite", "destination backend (json or sqlite)")
}

func runMigrate() error {
	if fromBackend == toBackend {
		return fmt.Errorf("source and destination backends are the same: %s", fromBackend)
	}

	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	srcCfg := cfg.Storage
	srcCfg.Backend = fromBackend
	src, err := persistence.NewStore(srcCfg)
	if err != nil {
		return fmt.Errorf("failed to open source store: %w", err)
	}
	defer src.Close()

	dstCfg := cfg.Storage
	dstCfg.Backend = toBackend
	dst, err := persistence.NewStore(dstCfg)
	if err != nil {
		return fmt.Errorf("failed to open destination store: %w", err)
	}
	defer dst.Close()

	hotels, err := src.LoadHotels()
	if err != nil {
		return fmt.Errorf("failed to load hotels from source: %w", err)
	}
	if err := dst.DumpHotels(hotels); err != nil {
		return fmt.Errorf("failed to write hotels to destination: %w", err)
	}

	customers, err := src.LoadCustomers()
	if err != nil {
		return fmt.Errorf("failed to load customers from source: %w", err)
	}
	if err := dst.DumpCustomers(customers); err != nil {
		return fmt.Errorf("failed to write customers to destination: %w", err)
	}

	reservations, err := src.LoadReservations()
	if err != nil {
		return fmt.Errorf("failed to load reservations from source: %w", err)
	}
	if err := dst.DumpReservations(reservations); err != nil {
		return fmt.Errorf("failed to write reservations to destination: %w", err)
	}

	fmt.Printf("Successfully migrated %d hotel(s), %d customer(s) and %d reservation(s) from %s to %s.\n",
		len(hotels), len(customers), len(reservations), fromBackend, toBackend)
	fmt.Println("Update your config.yaml to use the new backend:")
	fmt.Println("  storage:")
	fmt.Printf("    backend: %s\n", toBackend)
	return nil
}
