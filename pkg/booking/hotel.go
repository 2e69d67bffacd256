package booking

import (
	"fmt"

	"github.com/mroblesd/hotel-reservation/pkg/persistence"
	"github.com/mroblesd/hotel-reservation/pkg/types"
)

// HotelRepo manages the hotels document.
type HotelRepo struct {
	store persistence.Store
}

func NewHotelRepo(store persistence.Store) *HotelRepo {
	return &HotelRepo{store: store}
}

// Create appends the hotel to the hotels document. It fails with
// ErrDuplicateKey if a hotel with the same ID already exists.
func (r *HotelRepo) Create(h types.Hotel) error {
	if err := types.ValidateRecord(h); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	hotels, err := r.store.LoadHotels()
	if err != nil {
		return fmt.Errorf("failed to load hotels: %w", err)
	}

	if _, ok := types.FindHotel(hotels, h.HotelID); ok {
		return fmt.Errorf("%w: hotel %d already exists", ErrDuplicateKey, h.HotelID)
	}

	hotels = append(hotels, h)
	if err := r.store.DumpHotels(hotels); err != nil {
		return fmt.Errorf("failed to dump hotels: %w", err)
	}

	return nil
}

// Delete removes the hotel with the given ID. Deleting an absent ID is not
// an error; the document is rewritten either way. Reservations referencing
// the hotel are left in place.
func (r *HotelRepo) Delete(id int) error {
	hotels, err := r.store.LoadHotels()
	if err != nil {
		return fmt.Errorf("failed to load hotels: %w", err)
	}

	kept := make([]types.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if h.HotelID != id {
			kept = append(kept, h)
		}
	}

	if err := r.store.DumpHotels(kept); err != nil {
		return fmt.Errorf("failed to dump hotels: %w", err)
	}

	return nil
}

// Get returns the hotel with the given ID, or ErrNotFound.
func (r *HotelRepo) Get(id int) (types.Hotel, error) {
	hotels, err := r.store.LoadHotels()
	if err != nil {
		return types.Hotel{}, fmt.Errorf("failed to load hotels: %w", err)
	}

	h, ok := types.FindHotel(hotels, id)
	if !ok {
		return types.Hotel{}, fmt.Errorf("%w: hotel %d", ErrNotFound, id)
	}

	return h, nil
}

// Modify merges the update into the stored hotel record. When the ID is
// missing the unchanged document is still rewritten and ErrNotFound is
// returned.
func (r *HotelRepo) Modify(id int, upd types.HotelUpdate) error {
	hotels, err := r.store.LoadHotels()
	if err != nil {
		return fmt.Errorf("failed to load hotels: %w", err)
	}

	found := false
	for i := range hotels {
		if hotels[i].HotelID == id {
			hotels[i] = upd.Apply(hotels[i])
			found = true
			break
		}
	}

	if err := r.store.DumpHotels(hotels); err != nil {
		return fmt.Errorf("failed to dump hotels: %w", err)
	}

	if !found {
		return fmt.Errorf("%w: hotel %d", ErrNotFound, id)
	}

	return nil
}
