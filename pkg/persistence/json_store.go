package persistence

import "github.com/mroblesd/hotel-reservation/pkg/types"

// JSONStore implements Store using one JSON file per document.
type JSONStore struct {
	hotelsPath       string
	customersPath    string
	reservationsPath string
}

func NewJSONStore(hotelsPath, customersPath, reservationsPath string) *JSONStore {
	return &JSONStore{
		hotelsPath:       hotelsPath,
		customersPath:    customersPath,
		reservationsPath: reservationsPath,
	}
}

func (s *JSONStore) LoadHotels() ([]types.Hotel, error) {
	return loadDocument[types.Hotel](s.hotelsPath)
}

func (s *JSONStore) DumpHotels(hotels []types.Hotel) error {
	return dumpDocument(s.hotelsPath, hotels)
}

func (s *JSONStore) LoadCustomers() ([]types.Customer, error) {
	return loadDocument[types.Customer](s.customersPath)
}

func (s *JSONStore) DumpCustomers(customers []types.Customer) error {
	return dumpDocument(s.customersPath, customers)
}

func (s *JSONStore) LoadReservations() ([]types.Reservation, error) {
	return loadDocument[types.Reservation](s.reservationsPath)
}

func (s *JSONStore) DumpReservations(reservations []types.Reservation) error {
	return dumpDocument(s.reservationsPath, reservations)
}

func (s *JSONStore) Close() error {
	return nil
}
