package persistence

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/mroblesd/hotel-reservation/pkg/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS hotels (
    seq      INTEGER PRIMARY KEY AUTOINCREMENT,
    hotel_id INTEGER NOT NULL,
    name     TEXT NOT NULL,
    location TEXT NOT NULL,
    rooms    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
    seq         INTEGER PRIMARY KEY AUTOINCREMENT,
    customer_id INTEGER NOT NULL,
    name        TEXT NOT NULL,
    email       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reservations (
    seq            INTEGER PRIMARY KEY AUTOINCREMENT,
    reservation_id INTEGER NOT NULL,
    customer_id    INTEGER NOT NULL,
    hotel_id       INTEGER NOT NULL,
    room_number    INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_hotels_hotel_id ON hotels(hotel_id);
CREATE INDEX IF NOT EXISTS idx_customers_customer_id ON customers(customer_id);
CREATE INDEX IF NOT EXISTS idx_reservations_reservation_id ON reservations(reservation_id);
`

// SQLiteStore implements Store using a SQLite database with one table per
// document. The seq column preserves the insertion order the JSON documents
// get for free. Entity keys carry no UNIQUE constraint on purpose: key
// uniqueness is a repository rule, and reservation IDs may legally repeat.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadHotels() ([]types.Hotel, error) {
	rows, err := s.db.Query("SELECT hotel_id, name, location, rooms FROM hotels ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query hotels: %w", err)
	}
	defer rows.Close()

	hotels := []types.Hotel{}
	for rows.Next() {
		var h types.Hotel
		if err := rows.Scan(&h.HotelID, &h.Name, &h.Location, &h.Rooms); err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("hotel rows error: %w", err)
	}

	return hotels, nil
}

func (s *SQLiteStore) DumpHotels(hotels []types.Hotel) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM hotels"); err != nil {
		return fmt.Errorf("failed to clear hotels: %w", err)
	}

	for _, h := range hotels {
		if _, err := tx.Exec(
			"INSERT INTO hotels (hotel_id, name, location, rooms) VALUES (?, ?, ?, ?)",
			h.HotelID, h.Name, h.Location, h.Rooms,
		); err != nil {
			return fmt.Errorf("failed to insert hotel %d: %w", h.HotelID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadCustomers() ([]types.Customer, error) {
	rows, err := s.db.Query("SELECT customer_id, name, email FROM customers ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []types.Customer{}
	for rows.Next() {
		var c types.Customer
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("customer rows error: %w", err)
	}

	return customers, nil
}

func (s *SQLiteStore) DumpCustomers(customers []types.Customer) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM customers"); err != nil {
		return fmt.Errorf("failed to clear customers: %w", err)
	}

	for _, c := range customers {
		if _, err := tx.Exec(
			"INSERT INTO customers (customer_id, name, email) VALUES (?, ?, ?)",
			c.CustomerID, c.Name, c.Email,
		); err != nil {
			return fmt.Errorf("failed to insert customer %d: %w", c.CustomerID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadReservations() ([]types.Reservation, error) {
	rows, err := s.db.Query("SELECT reservation_id, customer_id, hotel_id, room_number FROM reservations ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	reservations := []types.Reservation{}
	for rows.Next() {
		var r types.Reservation
		if err := rows.Scan(&r.ReservationID, &r.CustomerID, &r.HotelID, &r.RoomNumber); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reservation rows error: %w", err)
	}

	return reservations, nil
}

func (s *SQLiteStore) DumpReservations(reservations []types.Reservation) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM reservations"); err != nil {
		return fmt.Errorf("failed to clear reservations: %w", err)
	}

	for _, r := range reservations {
		if _, err := tx.Exec(
			"INSERT INTO reservations (reservation_id, customer_id, hotel_id, room_number) VALUES (?, ?, ?, ?)",
			r.ReservationID, r.CustomerID, r.HotelID, r.RoomNumber,
		); err != nil {
			return fmt.Errorf("failed to insert reservation %d: %w", r.ReservationID, err)
		}
	}

	return tx.Commit()
}
