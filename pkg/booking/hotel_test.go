package booking

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mroblesd/hotel-reservation/pkg/types"
)

func TestHotelCreate(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHotelRepo(store)

	if err := repo.Create(paradiseHotel()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	hotels, err := store.LoadHotels()
	if err != nil {
		t.Fatalf("LoadHotels: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(hotels))
	}
	if !reflect.DeepEqual(hotels[0], paradiseHotel()) {
		t.Errorf("stored hotel mismatch: %+v", hotels[0])
	}
}

func TestHotelCreateDuplicateID(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHotelRepo(store)

	if err := repo.Create(paradiseHotel()); err != nil {
		t.Fatalf("Create (first): %v", err)
	}

	err := repo.Create(types.Hotel{HotelID: 1, Name: "Hotel Sunshine", Location: "Los Angeles", Rooms: 50})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	hotels, err := store.LoadHotels()
	if err != nil {
		t.Fatalf("LoadHotels: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(hotels))
	}
	if hotels[0].Name != "Hotel Paradise" {
		t.Errorf("expected first hotel to survive, got %q", hotels[0].Name)
	}
}

func TestHotelCreateInvalidRecord(t *testing.T) {
	store, dir := newTestStore(t)
	repo := NewHotelRepo(store)

	err := repo.Create(types.Hotel{HotelID: 1, Name: "", Location: "New York", Rooms: 100})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
	if documentExists(t, dir, "hotels.json") {
		t.Error("rejected create must not write the document")
	}
}

func TestHotelGet(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHotelRepo(store)

	if err := repo.Create(paradiseHotel()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	h, err := repo.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(h, paradiseHotel()) {
		t.Errorf("Get mismatch: %+v", h)
	}

	if _, err := repo.Get(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHotelModify(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHotelRepo(store)

	if err := repo.Create(paradiseHotel()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rooms := 150
	if err := repo.Modify(1, types.HotelUpdate{Rooms: &rooms}); err != nil {
		t.Fatalf("Modify: %v", err)
	}

	h, err := repo.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if h.Rooms != 150 {
		t.Errorf("expected 150 rooms, got %d", h.Rooms)
	}
	if h.Name != "Hotel Paradise" {
		t.Errorf("name must be untouched, got %q", h.Name)
	}
}

func TestHotelModifyMultipleFields(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHotelRepo(store)

	if err := repo.Create(paradiseHotel()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "Updated Paradise"
	rooms := 150
	if err := repo.Modify(1, types.HotelUpdate{Name: &name, Rooms: &rooms}); err != nil {
		t.Fatalf("Modify: %v", err)
	}

	h, err := repo.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if h.Name != "Updated Paradise" || h.Rooms != 150 {
		t.Errorf("update not applied: %+v", h)
	}
	if h.Location != "New York" {
		t.Errorf("location must be untouched, got %q", h.Location)
	}
}

// Modify on a missing ID reports not-found but still rewrites the unchanged
// document.
func TestHotelModifyMissingIDStillWrites(t *testing.T) {
	store, dir := newTestStore(t)
	repo := NewHotelRepo(store)

	name := "Non-existent Hotel"
	err := repo.Modify(999, types.HotelUpdate{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if !documentExists(t, dir, "hotels.json") {
		t.Fatal("modify must rewrite the document even on a miss")
	}
	hotels, err := store.LoadHotels()
	if err != nil {
		t.Fatalf("LoadHotels: %v", err)
	}
	if len(hotels) != 0 {
		t.Errorf("expected unchanged empty document, got %d hotels", len(hotels))
	}
}

func TestHotelDelete(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHotelRepo(store)

	if err := repo.Create(paradiseHotel()); err != nil {
		t.Fatalf("Create (1): %v", err)
	}
	if err := repo.Create(types.Hotel{HotelID: 2, Name: "Hotel Sunshine", Location: "Los Angeles", Rooms: 50}); err != nil {
		t.Fatalf("Create (2): %v", err)
	}

	if err := repo.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	hotels, err := store.LoadHotels()
	if err != nil {
		t.Fatalf("LoadHotels: %v", err)
	}
	if len(hotels) != 1 || hotels[0].HotelID != 2 {
		t.Errorf("expected only hotel 2 to remain, got %+v", hotels)
	}
}

func TestHotelDeleteMissingID(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHotelRepo(store)

	if err := repo.Create(paradiseHotel()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(999); err != nil {
		t.Fatalf("Delete of a missing ID must not fail: %v", err)
	}

	hotels, err := store.LoadHotels()
	if err != nil {
		t.Fatalf("LoadHotels: %v", err)
	}
	if len(hotels) != 1 {
		t.Errorf("expected document unchanged, got %d hotels", len(hotels))
	}
}
