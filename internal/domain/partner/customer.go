package partner

import (
	"regexp"
	"strings"

	"github.com/goldledger/backend/internal/domain/shared"
)

var validPhone = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)

// ErrCustomerNotFound matches shared.ErrNotFound under errors.Is
var ErrCustomerNotFound = shared.NewDomainError("NOT_FOUND", "Customer not found")

// Customer is a workshop client that gold and cash are booked against
type Customer struct {
	shared.BaseEntity
	Name  string
	Phone string
	Notes string
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Update replaces the customer's editable details.
// Empty phone or notes clear the stored value.
func (c *Customer) Update(name, phone, notes string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if err := validateCustomerName(name); err != nil {
		return err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if err := validateNotes(notes); err != nil {
		return err
	}

	c.Name = name
	c.Phone = phone
	c.Notes = notes
	c.Touch()
	return nil
}

// SetContact sets phone and notes on a freshly created customer
func (c *Customer) SetContact(phone, notes string) error {
	return c.Update(c.Name, phone, notes)
}

func validateCustomerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validateNotes(notes string) error {
	if len(notes) > 2000 {
		return shared.NewDomainError("INVALID_NOTES", "Notes cannot exceed 2000 characters")
	}
	return nil
}
