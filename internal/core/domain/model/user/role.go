package user

import (
	"fmt"

	"fanstore/internal/pkg/errs"
)

// Role enumerates the three actor roles of the platform. Every permission
// decision in the order lifecycle dispatches on this single type instead of
// ad hoc role strings scattered across handlers.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer is a shopper: creates orders, pays, cancels, and subscribes
	// to updates for orders they own.
	RoleCustomer

	// RoleAdmin manages the store: ships paid orders and assigns riders.
	RoleAdmin

	// RoleRider delivers shipped orders and reports the delivery outcome.
	RoleRider
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleAdmin:    "admin",
		RoleRider:    "rider",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "customer",
		RoleAdmin:    "admin",
		RoleRider:    "rider",
	}
}

// RoleFromString parses a role from its persisted/API string form.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
// Valid roles are: customer, admin, rider. RoleUnknown (0) and any other
// values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the lowercase name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
