package booking

import (
	"fmt"

	"github.com/mroblesd/hotel-reservation/pkg/persistence"
	"github.com/mroblesd/hotel-reservation/pkg/types"
)

// CustomerRepo manages the customers document.
type CustomerRepo struct {
	store persistence.Store
}

func NewCustomerRepo(store persistence.Store) *CustomerRepo {
	return &CustomerRepo{store: store}
}

// Create appends the customer to the customers document. It fails with
// ErrDuplicateKey if a customer with the same ID already exists.
func (r *CustomerRepo) Create(c types.Customer) error {
	if err := types.ValidateRecord(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	customers, err := r.store.LoadCustomers()
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}

	if _, ok := types.FindCustomer(customers, c.CustomerID); ok {
		return fmt.Errorf("%w: customer %d already exists", ErrDuplicateKey, c.CustomerID)
	}

	customers = append(customers, c)
	if err := r.store.DumpCustomers(customers); err != nil {
		return fmt.Errorf("failed to dump customers: %w", err)
	}

	return nil
}

// Delete removes the customer with the given ID. Deleting an absent ID is
// not an error; the document is rewritten either way. Reservations
// referencing the customer are left in place.
func (r *CustomerRepo) Delete(id int) error {
	customers, err := r.store.LoadCustomers()
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}

	kept := make([]types.Customer, 0, len(customers))
	for _, c := range customers {
		if c.CustomerID != id {
			kept = append(kept, c)
		}
	}

	if err := r.store.DumpCustomers(kept); err != nil {
		return fmt.Errorf("failed to dump customers: %w", err)
	}

	return nil
}

// Get returns the customer with the given ID, or ErrNotFound.
func (r *CustomerRepo) Get(id int) (types.Customer, error) {
	customers, err := r.store.LoadCustomers()
	if err != nil {
		return types.Customer{}, fmt.Errorf("failed to load customers: %w", err)
	}

	c, ok := types.FindCustomer(customers, id)
	if !ok {
		return types.Customer{}, fmt.Errorf("%w: customer %d", ErrNotFound, id)
	}

	return c, nil
}

// Modify merges the update into the stored customer record. When the ID is
// missing the unchanged document is still rewritten and ErrNotFound is
// returned.
func (r *CustomerRepo) Modify(id int, upd types.CustomerUpdate) error {
	customers, err := r.store.LoadCustomers()
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}

	found := false
	for i := range customers {
		if customers[i].CustomerID == id {
			customers[i] = upd.Apply(customers[i])
			found = true
			break
		}
	}

	if err := r.store.DumpCustomers(customers); err != nil {
		return fmt.Errorf("failed to dump customers: %w", err)
	}

	if !found {
		return fmt.Errorf("%w: customer %d", ErrNotFound, id)
	}

	return nil
}
