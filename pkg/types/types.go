package types

// StorageConfig selects the persistence backend and the document
// locations. Empty fields fall back to the package defaults.
type StorageConfig struct {
	Backend          string `yaml:"backend"`
	HotelsPath       string `yaml:"hotelsPath"`
	CustomersPath    string `yaml:"customersPath"`
	ReservationsPath string `yaml:"reservationsPath"`
	SQLitePath       string `yaml:"sqlitePath"`
}

// Hotel is one record of the hotels document.
type Hotel struct {
	HotelID  int    `json:"hotel_id" validate:"gt=0"`
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Rooms    int    `json:"rooms"`
}

// Customer is one record of the customers document.
type Customer struct {
	CustomerID int    `json:"customer_id" validate:"gt=0"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
}

// Reservation is one record of the reservations document. CustomerID and
// HotelID reference records in the other two documents; the references are
// checked at creation time only and never cleaned up afterwards.
type Reservation struct {
	ReservationID int `json:"reservation_id" validate:"gt=0"`
	CustomerID    int `json:"customer_id" validate:"gt=0"`
	HotelID       int `json:"hotel_id" validate:"gt=0"`
	RoomNumber    int `json:"room_number" validate:"gt=0"`
}

func FindHotel(hotels []Hotel, id int) (Hotel, bool) {
	for _, h := range hotels {
		if h.HotelID == id {
			return h, true
		}
	}

	return Hotel{}, false
}

func FindCustomer(customers []Customer, id int) (Customer, bool) {
	for _, c := range customers {
		if c.CustomerID == id {
			return c, true
		}
	}

	return Customer{}, false
}

// FindReservation returns the first reservation with the given ID.
// Reservation IDs are not guaranteed unique.
func FindReservation(reservations []Reservation, id int) (Reservation, bool) {
	for _, r := range reservations {
		if r.ReservationID == id {
			return r, true
		}
	}

	return Reservation{}, false
}

// HotelUpdate is a partial update of a hotel record. Nil fields are left
// untouched by Apply.
type HotelUpdate struct {
	Name     *string
	Location *string
	Rooms    *int
}

func (u HotelUpdate) Apply(h Hotel) Hotel {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Location != nil {
		h.Location = *u.Location
	}
	if u.Rooms != nil {
		h.Rooms = *u.Rooms
	}

	return h
}

// CustomerUpdate is a partial update of a customer record.
type CustomerUpdate struct {
	Name  *string
	Email *string
}

func (u CustomerUpdate) Apply(c Customer) Customer {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}

	return c
}

// ReservationUpdate is a partial update of a reservation record. Updated
// references are not re-validated against the other documents.
type ReservationUpdate struct {
	CustomerID *int
	HotelID    *int
	RoomNumber *int
}

func (u ReservationUpdate) Apply(r Reservation) Reservation {
	if u.CustomerID != nil {
		r.CustomerID = *u.CustomerID
	}
	if u.HotelID != nil {
		r.HotelID = *u.HotelID
	}
	if u.RoomNumber != nil {
		r.RoomNumber = *u.RoomNumber
	}

	return r
}
