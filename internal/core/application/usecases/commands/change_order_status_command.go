package commands

import (
	"errors"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a target
// status on behalf of an authenticated actor. It is the single entry point
// for every lifecycle action: pay, cancel, ship, deliver and undeliver are
// all expressed as a target status plus action-specific extras (payment
// method for pay, rider id for ship).
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actor         order.Actor
	targetStatus  order.Status
	paymentMethod order.PaymentMethod
	riderID       *kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status transition request.
// paymentMethod may be PaymentMethodUnknown for every action but pay, where
// it optionally replaces the method chosen at checkout. riderID must be set
// for ship and nil otherwise; the handler rejects a shipping request without
// it.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	actor order.Actor,
	targetStatus order.Status,
	paymentMethod order.PaymentMethod,
	riderID *kernel.UUID,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setTargetStatus(targetStatus),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setRiderID(riderID),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated requester.
func (c ChangeOrderStatusCommand) Actor() order.Actor {
	return c.actor
}

// TargetStatus returns the requested target status.
func (c ChangeOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// PaymentMethod returns the payment method override for pay requests,
// or PaymentMethodUnknown when absent.
func (c ChangeOrderStatusCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// RiderID returns the rider to assign for ship requests, or nil.
func (c ChangeOrderStatusCommand) RiderID() *kernel.UUID {
	return c.riderID
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ChangeOrderStatusCommand) setTargetStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.targetStatus = status
	return nil
}

func (c *ChangeOrderStatusCommand) setPaymentMethod(method order.PaymentMethod) error {
	if method != order.PaymentMethodUnknown {
		if err := method.Validate(); err != nil {
			return err
		}
	}

	c.paymentMethod = method
	return nil
}

func (c *ChangeOrderStatusCommand) setRiderID(riderID *kernel.UUID) error {
	if riderID == nil {
		return nil
	}
	if err := riderID.Validate(); err != nil {
		return err
	}

	rid := *riderID
	c.riderID = &rid
	return nil
}
