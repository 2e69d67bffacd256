// Package demo walks the repositories through a fixed validation sequence
// and renders each intermediate state. It exercises the public interface
// only; repository errors are reported and the walkthrough continues.
package demo

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mroblesd/hotel-reservation/pkg/booking"
	"github.com/mroblesd/hotel-reservation/pkg/persistence"
	"github.com/mroblesd/hotel-reservation/pkg/types"
)

// Run drives the three repositories against the given store: it prints the
// current documents, creates a hotel, a customer and a reservation for
// them, cancels reservation 1 and prints the state after every step.
func Run(store persistence.Store, out io.Writer) error {
	hotels := booking.NewHotelRepo(store)
	customers := booking.NewCustomerRepo(store)
	reservations := booking.NewReservationRepo(store)

	if err := printDocuments(store, out); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nCreating a new hotel...")
	report(out, hotels.Create(types.Hotel{
		HotelID:  3,
		Name:     "Mountain Lodge",
		Location: "Denver",
		Rooms:    50,
	}))
	if err := printHotels(store, out); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nCreating a new customer...")
	report(out, customers.Create(types.Customer{
		CustomerID: 3,
		Name:       "Alice Johnson",
		Email:      "alice@example.com",
	}))
	if err := printCustomers(store, out); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nCreating a new reservation...")
	report(out, reservations.Create(types.Reservation{
		ReservationID: 3,
		CustomerID:    3,
		HotelID:       3,
		RoomNumber:    25,
	}))
	if err := printReservations(store, out); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nCancelling reservation 1...")
	report(out, reservations.Cancel(1))
	return printReservations(store, out)
}

func report(out io.Writer, err error) {
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func printDocuments(store persistence.Store, out io.Writer) error {
	if err := printHotels(store, out); err != nil {
		return err
	}
	if err := printCustomers(store, out); err != nil {
		return err
	}
	return printReservations(store, out)
}

func printHotels(store persistence.Store, out io.Writer) error {
	hotels, err := store.LoadHotels()
	if err != nil {
		return fmt.Errorf("failed to load hotels: %w", err)
	}
	return printRecords(out, "Hotels", hotels)
}

func printCustomers(store persistence.Store, out io.Writer) error {
	customers, err := store.LoadCustomers()
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}
	return printRecords(out, "Customers", customers)
}

func printReservations(store persistence.Store, out io.Writer) error {
	reservations, err := store.LoadReservations()
	if err != nil {
		return fmt.Errorf("failed to load reservations: %w", err)
	}
	return printRecords(out, "Reservations", reservations)
}

func printRecords(out io.Writer, title string, records interface{}) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", title, err)
	}

	fmt.Fprintf(out, "%s: %s\n", title, data)
	return nil
}
