package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mroblesd/hotel-reservation/pkg/config"
	"github.com/mroblesd/hotel-reservation/pkg/seed"
)

var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "create the starter documents if they do not exist",
	Long:  `Create each of the three JSON documents with fixed starter records. Documents that already exist are never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return seed.Run(cfg.Storage)
	},
}
