package queries

import (
	"errors"
	"time"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery lists a customer's orders, newest first.
// Customers may only list their own orders; admins may list anyone's.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	actor      order.Actor

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
// Rejects the request up front when the actor is a customer asking for
// somebody else's orders, or a rider.
func NewGetCustomerOrdersQuery(customerID kernel.UUID, actor order.Actor) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	allowed := actor.Role() == user.RoleAdmin ||
		(actor.Role() == user.RoleCustomer && actor.ID().IsEqual(customerID))
	if !allowed {
		return GetCustomerOrdersQuery{}, order.ErrNotOrderOwner
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrdersQueryIsNotConstructed if validation fails.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	ID            kernel.UUID  `json:"id"`
	CustomerID    kernel.UUID  `json:"customerId"`
	RiderID       *kernel.UUID `json:"riderId,omitempty"`
	Status        string       `json:"status"`
	PaymentStatus string       `json:"paymentStatus"`
	Total         string       `json:"total"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
