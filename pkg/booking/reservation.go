package booking

import (
	"fmt"

	"github.com/mroblesd/hotel-reservation/pkg/persistence"
	"github.com/mroblesd/hotel-reservation/pkg/types"
)

// ReservationRepo manages the reservations document.
type ReservationRepo struct {
	store persistence.Store
}

func NewReservationRepo(store persistence.Store) *ReservationRepo {
	return &ReservationRepo{store: store}
}

// Create appends the reservation after checking that the referenced
// customer exists, the referenced hotel exists and the room number does not
// exceed the hotel's room count. Known limitation: reservation IDs are not
// checked for duplicates, so two reservations may share an ID and nothing
// prevents double-booking a room.
func (r *ReservationRepo) Create(res types.Reservation) error {
	if err := types.ValidateRecord(res); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	reservations, err := r.store.LoadReservations()
	if err != nil {
		return fmt.Errorf("failed to load reservations: %w", err)
	}

	customers, err := r.store.LoadCustomers()
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}

	if _, ok := types.FindCustomer(customers, res.CustomerID); !ok {
		return fmt.Errorf("%w: customer %d does not exist", ErrInvalidReference, res.CustomerID)
	}

	hotels, err := r.store.LoadHotels()
	if err != nil {
		return fmt.Errorf("failed to load hotels: %w", err)
	}

	hotel, ok := types.FindHotel(hotels, res.HotelID)
	if !ok {
		return fmt.Errorf("%w: hotel %d does not exist", ErrInvalidReference, res.HotelID)
	}
	if res.RoomNumber > hotel.Rooms {
		return fmt.Errorf("%w: room %d exceeds the %d rooms of hotel %d",
			ErrInvalidReference, res.RoomNumber, hotel.Rooms, res.HotelID)
	}

	reservations = append(reservations, res)
	if err := r.store.DumpReservations(reservations); err != nil {
		return fmt.Errorf("failed to dump reservations: %w", err)
	}

	return nil
}

// Cancel removes every reservation with the given ID. Cancelling an absent
// ID is not an error; the document is rewritten either way.
func (r *ReservationRepo) Cancel(id int) error {
	reservations, err := r.store.LoadReservations()
	if err != nil {
		return fmt.Errorf("failed to load reservations: %w", err)
	}

	kept := make([]types.Reservation, 0, len(reservations))
	for _, res := range reservations {
		if res.ReservationID != id {
			kept = append(kept, res)
		}
	}

	if err := r.store.DumpReservations(kept); err != nil {
		return fmt.Errorf("failed to dump reservations: %w", err)
	}

	return nil
}

// Get returns the first reservation with the given ID, or ErrNotFound.
func (r *ReservationRepo) Get(id int) (types.Reservation, error) {
	reservations, err := r.store.LoadReservations()
	if err != nil {
		return types.Reservation{}, fmt.Errorf("failed to load reservations: %w", err)
	}

	res, ok := types.FindReservation(reservations, id)
	if !ok {
		return types.Reservation{}, fmt.Errorf("%w: reservation %d", ErrNotFound, id)
	}

	return res, nil
}

// Modify merges the update into the first stored reservation with the given
// ID. Updated customer, hotel and room fields are not re-validated; the
// referential checks run at creation only. When the ID is missing the
// unchanged document is still rewritten and ErrNotFound is returned.
func (r *ReservationRepo) Modify(id int, upd types.ReservationUpdate) error {
	reservations, err := r.store.LoadReservations()
	if err != nil {
		return fmt.Errorf("failed to load reservations: %w", err)
	}

	found := false
	for i := range reservations {
		if reservations[i].ReservationID == id {
			reservations[i] = upd.Apply(reservations[i])
			found = true
			break
		}
	}

	if err := r.store.DumpReservations(reservations); err != nil {
		return fmt.Errorf("failed to dump reservations: %w", err)
	}

	if !found {
		return fmt.Errorf("%w: reservation %d", ErrNotFound, id)
	}

	return nil
}
