package demo

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mroblesd/hotel-reservation/pkg/config"
	"github.com/mroblesd/hotel-reservation/pkg/demo"
)

var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "run a sequential walkthrough of the repository operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		return demo.Run(store, os.Stdout)
	},
}
