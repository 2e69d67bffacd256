// Package seed populates absent documents with fixed starter records. It
// never touches a document that already exists, corrupt or not.
package seed

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mroblesd/hotel-reservation/pkg/persistence"
	"github.com/mroblesd/hotel-reservation/pkg/types"
)

func starterHotels() []types.Hotel {
	return []types.Hotel{
		{HotelID: 1, Name: "Hotel Paradise", Location: "New York", Rooms: 100},
		{HotelID: 2, Name: "Ocean View Resort", Location: "Miami", Rooms: 200},
	}
}

func starterCustomers() []types.Customer {
	return []types.Customer{
		{CustomerID: 1, Name: "John Doe", Email: "john@example.com"},
		{CustomerID: 2, Name: "Jane Smith", Email: "jane@example.com"},
	}
}

func starterReservations() []types.Reservation {
	return []types.Reservation{
		{ReservationID: 1, CustomerID: 1, HotelID: 1, RoomNumber: 50},
		{ReservationID: 2, CustomerID: 2, HotelID: 2, RoomNumber: 100},
	}
}

// Run seeds the JSON documents configured in cfg. Each document file that
// does not exist is created with its starter records; existing files are
// reported and left alone.
func Run(cfg types.StorageConfig) error {
	hotelsPath, customersPath, reservationsPath := persistence.JSONDocumentPaths(cfg)
	store := persistence.NewJSONStore(hotelsPath, customersPath, reservationsPath)

	if err := seedDocument(hotelsPath, func() error {
		return store.DumpHotels(starterHotels())
	}); err != nil {
		return err
	}

	if err := seedDocument(customersPath, func() error {
		return store.DumpCustomers(starterCustomers())
	}); err != nil {
		return err
	}

	return seedDocument(reservationsPath, func() error {
		return store.DumpReservations(starterReservations())
	})
}

func seedDocument(path string, dump func() error) error {
	if _, err := os.Stat(path); err == nil {
		logrus.Infof("document %s already exists, leaving it unchanged", path)
		return nil
	}

	if err := dump(); err != nil {
		return fmt.Errorf("failed to seed %s: %w", path, err)
	}

	logrus.Infof("document %s created with starter records", path)
	return nil
}
