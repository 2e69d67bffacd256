package customer

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mroblesd/hotel-reservation/pkg/booking"
	"github.com/mroblesd/hotel-reservation/pkg/config"
	"github.com/mroblesd/hotel-reservation/pkg/types"
)

var (
	id    int
	name  string
	email string
)

var CustomerCmd = &cobra.Command{
	Use:   "customer",
	Short: "manage customer records",
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "create a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		return booking.NewCustomerRepo(store).Create(types.Customer{
			CustomerID: id,
			Name:       name,
			Email:      email,
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "delete a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		return booking.NewCustomerRepo(store).Delete(id)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "display a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		c, err := booking.NewCustomerRepo(store).Get(id)
		if err != nil {
			return err
		}

		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var modifyCmd = &cobra.Command{
	Use:   "modify",
	Short: "update fields of a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.OpenStore(config.ConfigPath)
		if err != nil {
			return err
		}
		defer store.Close()

		var upd types.CustomerUpdate
		if cmd.Flags().Changed("name") {
			upd.Name = &name
		}
		if cmd.Flags().Changed("email") {
			upd.Email = &email
		}

		return booking.NewCustomerRepo(store).Modify(id, upd)
	},
}

func init() {
	CustomerCmd.PersistentFlags().IntVar(&id, "id", 0, "customer id")
	CustomerCmd.MarkPersistentFlagRequired("id")

	createCmd.Flags().StringVar(&name, "name", "", "customer name")
	createCmd.MarkFlagRequired("name")
	createCmd.Flags().StringVar(&email, "email", "", "customer email")
	createCmd.MarkFlagRequired("email")

	modifyCmd.Flags().StringVar(&name, "name", "", "customer name")
	modifyCmd.Flags().StringVar(&email, "email", "", "customer email")

	CustomerCmd.AddCommand(createCmd)
	CustomerCmd.AddCommand(deleteCmd)
	CustomerCmd.AddCommand(showCmd)
	CustomerCmd.AddCommand(modifyCmd)
}
