package reservation

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mroblesd/hotel-reservation/pkg/booking"
	"github.com/mroblesd/hotel-reservation/pkg/config"
	"github.com/mroblesd/hotel-reservation/pkg/types"
)

var (
	id         int
	customerID int
	hotelID    int
	roomNumber int
)

var ReservationCmd = &cobra.Command{
	Use:   "reservation",
	Short: "manage reservation records",
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "create a reservation for an existing customer and hotel",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		return booking.NewReservationRepo(store).Create(types.Reservation{
			ReservationID: id,
			CustomerID:    customerID,
			HotelID:       hotelID,
			RoomNumber:    roomNumber,
		})
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "cancel a reservation",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		return booking.NewReservationRepo(store).Cancel(id)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "display a reservation",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		res, err := booking.NewReservationRepo(store).Get(id)
		if err != nil {
			return err
		}

		data, err := json.Marshal(res)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var modifyCmd = &cobra.Command{
	Use:   "modify",
	Short: "update fields of a reservation",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		var upd types.ReservationUpdate
		if cmd.Flags().Changed("customer-id") {
			upd.CustomerID = &customerID
		}
		if cmd.Flags().Changed("hotel-id") {
			upd.HotelID = &hotelID
		}
		if cmd.Flags().Changed("room") {
			upd.RoomNumber = &roomNumber
		}

		return booking.NewReservationRepo(store).Modify(id, upd)
	},
}

func init() {
	ReservationCmd.PersistentFlags().IntVar(&id, "id", 0, "reservation id")
	ReservationCmd.MarkPersistentFlagRequired("id")

	createCmd.Flags().IntVar(&customerID, "customer-id", 0, "id of an existing customer")
	createCmd.MarkFlagRequired("customer-id")
	createCmd.Flags().IntVar(&hotelID, "hotel-id", 0, "id of an existing hotel")
	createCmd.MarkFlagRequired("hotel-id")
	createCmd.Flags().IntVar(&roomNumber, "room", 0, "room number, at most the hotel's room count")
	createCmd.MarkFlagRequired("room")

	modifyCmd.Flags().IntVar(&customerID, "customer-id", 0, "customer id")
	modifyCmd.Flags().IntVar(&hotelID, "hotel-id", 0, "hotel id")
	modifyCmd.Flags().IntVar(&roomNumber, "room", 0, "room number")

	ReservationCmd.AddCommand(createCmd)
	ReservationCmd.AddCommand(cancelCmd)
	ReservationCmd.AddCommand(showCmd)
	ReservationCmd.AddCommand(modifyCmd)
}
