package persistence

import (
	"fmt"

	"github.com/mroblesd/hotel-reservation/pkg/types"
)

// Store abstracts persistence of the three entity documents. Loads return
// records in their stored order; dumps replace the whole document with the
// given sequence. There is no concurrency protection: the last writer wins.
type Store interface {
	LoadHotels() ([]types.Hotel, error)
	DumpHotels(hotels []types.Hotel) error
	LoadCustomers() ([]types.Customer, error)
	DumpCustomers(customers []types.Customer) error
	LoadReservations() ([]types.Reservation, error)
	DumpReservations(reservations []types.Reservation) error
	Close() error
}

// JSONDocumentPaths returns the configured JSON document paths with
// defaults applied for empty fields.
func JSONDocumentPaths(cfg types.StorageConfig) (hotels, customers, reservations string) {
	hotels = cfg.HotelsPath
	if hotels == "" {
		hotels = DefaultHotelsPath
	}
	customers = cfg.CustomersPath
	if customers == "" {
		customers = DefaultCustomersPath
	}
	reservations = cfg.ReservationsPath
	if reservations == "" {
		reservations = DefaultReservationsPath
	}

	return hotels, customers, reservations
}

// NewStore creates a Store based on the storage configuration.
func NewStore(cfg types.StorageConfig) (Store, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = "json" // default to json for backward compatibility
	}

	switch backend {
	case "json":
		return NewJSONStore(JSONDocumentPaths(cfg)), nil
	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			path = DefaultSQLitePath
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
