// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning flat response structs shaped for the API.
package queries

import (
	"errors"
	"time"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its full detail: line items,
// shipping address, totals and lifecycle state.
//
// Access follows the same rules as the realtime channel: the owning
// customer, the assigned rider and any admin may read the order; everyone
// else gets a not-found response rather than a hint that the order exists.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order on behalf of an actor.
func NewGetOrderQuery(orderID kernel.UUID, actor order.Actor) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the authenticated requester.
func (q GetOrderQuery) Actor() order.Actor {
	return q.actor
}

// OrderItemResponse is one line of an order in API shape.
type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// OrderAddressResponse is the shipping address in API shape.
type OrderAddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// GetOrderQueryResponse is the full order detail.
type GetOrderQueryResponse struct {
	ID              kernel.UUID          `json:"id"`
	CustomerID      kernel.UUID          `json:"customerId"`
	RiderID         *kernel.UUID         `json:"riderId,omitempty"`
	Status          string               `json:"status"`
	PaymentMethod   string               `json:"paymentMethod"`
	PaymentStatus   string               `json:"paymentStatus"`
	Items           []OrderItemResponse  `json:"items"`
	Address         OrderAddressResponse `json:"address"`
	DiscountPercent int                  `json:"discountPercent"`
	Subtotal        string               `json:"subtotal"`
	Tax             string               `json:"tax"`
	Total           string               `json:"total"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}
