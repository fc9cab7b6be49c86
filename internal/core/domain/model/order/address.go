package order

import (
	"errors"
	"strings"

	"fanstore/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the shipping destination snapshot taken at checkout.
// It is intentionally independent of any live profile address: editing the
// profile after ordering must not move a parcel already on its way.
type Address struct {
	street     string
	city       string
	state      string
	postalCode string
	country    string
	phone      string

	isConstructed bool
}

// NewAddress creates a validated shipping address. State and phone are
// optional; the rest is required.
func NewAddress(street, city, state, postalCode, country, phone string) (Address, error) {
	if strings.TrimSpace(street) == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if strings.TrimSpace(city) == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if strings.TrimSpace(postalCode) == "" {
		return Address{}, errs.NewValueIsRequiredError("postal code")
	}
	if strings.TrimSpace(country) == "" {
		return Address{}, errs.NewValueIsRequiredError("country")
	}

	return Address{
		street:        street,
		city:          city,
		state:         state,
		postalCode:    postalCode,
		country:       country,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the state or region ("" when not applicable).
func (a Address) State() string { return a.state }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a Address) Country() string { return a.country }

// Phone returns the contact phone for the delivery ("" when not given).
func (a Address) Phone() string { return a.phone }
