package booking

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mroblesd/hotel-reservation/pkg/persistence"
	"github.com/mroblesd/hotel-reservation/pkg/types"
)

// newTestStore returns an isolated JSON store plus the directory holding
// its document files, so tests can assert on the files themselves.
func newTestStore(t *testing.T) (*persistence.JSONStore, string) {
	dir := t.TempDir()
	store := persistence.NewJSONStore(
		filepath.Join(dir, "hotels.json"),
		filepath.Join(dir, "customers.json"),
		filepath.Join(dir, "reservations.json"),
	)
	return store, dir
}

func documentExists(t *testing.T, dir, name string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(dir, name))
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("stat %s: %v", name, err)
	}
	return err == nil
}

func paradiseHotel() types.Hotel {
	return types.Hotel{HotelID: 1, Name: "Hotel Paradise", Location: "New York", Rooms: 100}
}

func johnDoe() types.Customer {
	return types.Customer{CustomerID: 1, Name: "John Doe", Email: "john@example.com"}
}
