package hotel

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mroblesd/hotel-reservation/pkg/booking"
	"github.com/mroblesd/hotel-reservation/pkg/config"
	"github.com/mroblesd/hotel-reservation/pkg/types"
)

var (
	id       int
	name     string
	location string
	rooms    int
)

var HotelCmd = &cobra.Command{
	Use:   "hotel",
	Short: "manage hotel records",
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "create a hotel",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		return booking.NewHotelRepo(store).Create(types.Hotel{
			HotelID:  id,
			Name:     name,
			Location: location,
			Rooms:    rooms,
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "delete a hotel",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		return booking.NewHotelRepo(store).Delete(id)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "display a hotel",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		h, err := booking.NewHotelRepo(store).Get(id)
		if err != nil {
			return err
		}

		data, err := json.Marshal(h)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var modifyCmd = &cobra.Command{
	Use:   "modify",
	Short: "update fields of a hotel",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		var upd types.HotelUpdate
		if cmd.Flags().Changed("name") {
			upd.Name = &name
		}
		if cmd.Flags().Changed("location") {
			upd.Location = &location
		}
		if cmd.Flags().Changed("rooms") {
			upd.Rooms = &rooms
		}

		return booking.NewHotelRepo(store).Modify(id, upd)
	},
}

func init() {
	HotelCmd.PersistentFlags().IntVar(&id, "id", 0, "hotel id")
	HotelCmd.MarkPersistentFlagRequired("id")

	createCmd.Flags().StringVar(&name, "name", "", "hotel name")
	createCmd.MarkFlagRequired("name")
	createCmd.Flags().StringVar(&location, "location", "", "hotel location")
	createCmd.MarkFlagRequired("location")
	createCmd.Flags().IntVar(&rooms, "rooms", 0, "total room count")
	createCmd.MarkFlagRequired("rooms")

	modifyCmd.Flags().StringVar(&name, "name", "", "hotel name")
	modifyCmd.Flags().StringVar(&location, "location", "", "hotel location")
	modifyCmd.Flags().IntVar(&rooms, "rooms", 0, "total room count")

	HotelCmd.AddCommand(createCmd)
	HotelCmd.AddCommand(deleteCmd)
	HotelCmd.AddCommand(showCmd)
	HotelCmd.AddCommand(modifyCmd)
}
