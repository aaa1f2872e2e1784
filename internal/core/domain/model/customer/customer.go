// Package customer provides the Customer aggregate. Customers are referenced
// by orders through their id only and live an independent CRUD lifecycle.
package customer

import (
	"errors"

	"ordersapp/internal/core/domain/model/shared"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the aggregate for a buyer's identity and contact details.
type Customer struct {
	shared.Entity

	firstName  string
	lastName   string
	email      string
	address    string
	city       string
	postalCode string
	country    string
	phone      string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer, requiring every identity field to be set.
func NewCustomer(firstName, lastName, email, address, city, postalCode, country, phone string) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	if err := c.setFields(firstName, lastName, email, address, city, postalCode, country, phone); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence, including its
// system fields.
func RestoreCustomer(
	entity shared.Entity,
	firstName, lastName, email, address, city, postalCode, country, phone string,
) (*Customer, error) {
	c := &Customer{Entity: entity, guard: guard.NewConstructorGuard()}

	if err := c.setFields(firstName, lastName, email, address, city, postalCode, country, phone); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Update replaces every identity field wholesale.
func (c *Customer) Update(firstName, lastName, email, address, city, postalCode, country, phone string) error {
	return c.setFields(firstName, lastName, email, address, city, postalCode, country, phone)
}

// Patch holds a sparse set of field changes. A nil field means "leave the
// stored value untouched" — the null-is-ignored merge is spelled out per
// field in ApplyPatch rather than hidden behind reflection.
type Patch struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Address    *string
	City       *string
	PostalCode *string
	Country    *string
	Phone      *string
}

// ApplyPatch merges the non-nil patch fields into the customer.
func (c *Customer) ApplyPatch(p Patch) error {
	merged := func(field *string, current string) string {
		if field != nil {
			return *field
		}
		return current
	}

	return c.setFields(
		merged(p.FirstName, c.firstName),
		merged(p.LastName, c.lastName),
		merged(p.Email, c.email),
		merged(p.Address, c.address),
		merged(p.City, c.city),
		merged(p.PostalCode, c.postalCode),
		merged(p.Country, c.country),
		merged(p.Phone, c.phone),
	)
}

func (c *Customer) FirstName() string  { return c.firstName }
func (c *Customer) LastName() string   { return c.lastName }
func (c *Customer) Email() string      { return c.email }
func (c *Customer) Address() string    { return c.address }
func (c *Customer) City() string       { return c.city }
func (c *Customer) PostalCode() string { return c.postalCode }
func (c *Customer) Country() string    { return c.country }
func (c *Customer) Phone() string      { return c.phone }

func (c *Customer) setFields(firstName, lastName, email, address, city, postalCode, country, phone string) error {
	required := map[string]string{
		"firstName":  firstName,
		"lastName":   lastName,
		"email":      email,
		"address":    address,
		"city":       city,
		"postalCode": postalCode,
		"country":    country,
		"phone":      phone,
	}
	for _, name := range []string{"firstName", "lastName", "email", "address", "city", "postalCode", "country", "phone"} {
		if required[name] == "" {
			return errs.NewValueIsRequiredError(name)
		}
	}

	c.firstName = firstName
	c.lastName = lastName
	c.email = email
	c.address = address
	c.city = city
	c.postalCode = postalCode
	c.country = country
	c.phone = phone
	return nil
}
