package booking

import (
	"errors"
	"testing"

	"github.com/mroblesd/hotel-reservation/pkg/types"
)

func TestCustomerCreate(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewCustomerRepo(store)

	if err := repo.Create(johnDoe()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	customers, err := store.LoadCustomers()
	if err != nil {
		t.Fatalf("LoadCustomers: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}
	if customers[0].Email != "john@example.com" {
		t.Errorf("stored email mismatch: %q", customers[0].Email)
	}
}

func TestCustomerCreateDuplicateID(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewCustomerRepo(store)

	if err := repo.Create(johnDoe()); err != nil {
		t.Fatalf("Create (first): %v", err)
	}

	err := repo.Create(types.Customer{CustomerID: 1, Name: "Jane Doe", Email: "jane@example.com"})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	customers, err := store.LoadCustomers()
	if err != nil {
		t.Fatalf("LoadCustomers: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}
	if customers[0].Name != "John Doe" {
		t.Errorf("expected first customer to survive, got %q", customers[0].Name)
	}
}

func TestCustomerCreateInvalidEmail(t *testing.T) {
	store, dir := newTestStore(t)
	repo := NewCustomerRepo(store)

	err := repo.Create(types.Customer{CustomerID: 1, Name: "John Doe", Email: "not-an-email"})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
	if documentExists(t, dir, "customers.json") {
		t.Error("rejected create must not write the document")
	}
}

// Modify applies the supplied updates verbatim: setting the email to
// js@ex.com stores exactly js@ex.com.
func TestCustomerModify(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewCustomerRepo(store)

	if err := repo.Create(johnDoe()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "John Smith"
	email := "js@ex.com"
	if err := repo.Modify(1, types.CustomerUpdate{Name: &name, Email: &email}); err != nil {
		t.Fatalf("Modify: %v", err)
	}

	c, err := repo.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.Name != "John Smith" {
		t.Errorf("expected updated name, got %q", c.Name)
	}
	if c.Email != "js@ex.com" {
		t.Errorf("expected updated email, got %q", c.Email)
	}
}

func TestCustomerModifyMissingIDStillWrites(t *testing.T) {
	store, dir := newTestStore(t)
	repo := NewCustomerRepo(store)

	name := "NA"
	email := "na@ex.com"
	err := repo.Modify(999, types.CustomerUpdate{Name: &name, Email: &email})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if !documentExists(t, dir, "customers.json") {
		t.Fatal("modify must rewrite the document even on a miss")
	}
	customers, err := store.LoadCustomers()
	if err != nil {
		t.Fatalf("LoadCustomers: %v", err)
	}
	if len(customers) != 0 {
		t.Errorf("expected unchanged empty document, got %d customers", len(customers))
	}
}

func TestCustomerDeleteMissingID(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewCustomerRepo(store)

	if err := repo.Delete(999); err != nil {
		t.Fatalf("Delete of a missing ID must not fail: %v", err)
	}

	customers, err := store.LoadCustomers()
	if err != nil {
		t.Fatalf("LoadCustomers: %v", err)
	}
	if len(customers) != 0 {
		t.Errorf("expected empty document, got %d customers", len(customers))
	}
}

func TestCustomerGetNotFound(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewCustomerRepo(store)

	if _, err := repo.Get(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
