package customer

import (
	"errors"
	"fmt"
	"strings"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer represents a registered buyer who can place orders.
//
// Customer is a standalone aggregate: orders reference customers by id and
// never embed them, so customer data can change without touching order
// history.
type Customer struct {
	// id is the unique identifier for the customer
	id kernel.UUID

	// name is the customer's display name
	name string

	// email is the customer's contact address
	email string

	// guard ensures the customer was created via a constructor
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with validated parameters.
//
// Parameters:
//   - id: Unique identifier for the customer (must be a valid UUID)
//   - name: Display name (must not be empty)
//   - email: Contact address (must contain a local part and a domain)
//
// Returns:
//   - *Customer: The created customer if all validations pass
//   - error: Validation error if any parameter is invalid
func NewCustomer(id kernel.UUID, name string, email string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage.
func RestoreCustomer(id kernel.UUID, name string, email string) (*Customer, error) {
	return NewCustomer(id, name, email)
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact address.
func (c *Customer) Email() string {
	return c.email
}

// Rename changes the customer's display name.
func (c *Customer) Rename(name string) error {
	return c.setName(name)
}

// ChangeEmail changes the customer's contact address.
func (c *Customer) ChangeEmail(email string) error {
	return c.setEmail(email)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

// setEmail applies a minimal shape check. Deliverability is out of scope for
// the domain; anything beyond local@domain belongs to a verification flow.
func (c *Customer) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"email is invalid",
			fmt.Errorf("%q does not look like an email address", email),
		)
	}

	c.email = email
	return nil
}
