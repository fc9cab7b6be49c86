package order

import (
	"errors"
	"time"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/pkg/errs"
)

// taxRatePercent is applied to the discounted subtotal at order creation.
const taxRatePercent = 10

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the order lifecycle. It is created at
// checkout in pending status and afterwards mutated exclusively through its
// transition methods (Pay, Cancel, Ship, Deliver, MarkUndelivered), each of
// which consults the transition table in status.go plus the preconditions
// that need aggregate state: ownership for customer actions, the assigned
// rider identity for delivery outcomes, rider presence for shipping.
//
// Order follows these invariants:
//   - Line items, address, and totals are immutable snapshots from creation
//   - Totals are the sum of snapshot line prices, discounted, plus tax;
//     never recomputed from live catalog data
//   - A rider is set exactly at the shipped transition and never cleared, so
//     rider != nil iff status is shipped, delivered or undelivered
//   - Terminal statuses (delivered, undelivered, cancelled) admit no
//     further transition
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the owning customer (immutable after creation)
	customerID kernel.UUID

	// items are the line-item snapshots captured at checkout
	items []Item

	// address is the shipping address snapshot captured at checkout
	address Address

	// paymentMethod is the method chosen at checkout, possibly updated once
	// at payment confirmation
	paymentMethod PaymentMethod

	// paymentStatus moves from unpaid to paid with the paid transition
	paymentStatus PaymentStatus

	// riderID is the assigned rider's ID (nil until shipped)
	riderID *kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// discountPercent is the discount applied at creation (0-100)
	discountPercent int

	// subtotal, tax and total are computed once at creation
	subtotal kernel.Money
	tax      kernel.Money
	total    kernel.Money

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates an order from checkout data. The order starts pending and
// unpaid with no rider. Totals are computed here, once: subtotal is the sum
// of the line subtotals, the discount percentage is applied to it, and tax
// is added on the discounted amount.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	address Address,
	paymentMethod PaymentMethod,
	discountPercent int,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		paymentStatus: PaymentStatusUnpaid,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
		o.setDiscountPercent(discountPercent),
	); err != nil {
		return nil, err
	}

	o.computeTotals()

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an order from persisted state, re-validating the
// structural invariants (including the rider/status consistency rule) without
// recomputing the totals: they are part of the historical snapshot.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	address Address,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	riderID *kernel.UUID,
	discountPercent int,
	subtotal, tax, total kernel.Money,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
		o.setDiscountPercent(discountPercent),
		paymentStatus.Validate(),
		status.Validate(),
		status.ValidateCanHaveRider(riderID != nil),
	); err != nil {
		return nil, err
	}

	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}
		rid := *riderID
		o.riderID = &rid
	}

	o.paymentStatus = paymentStatus
	o.status = status
	o.subtotal = subtotal
	o.tax = tax
	o.total = total
	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the line-item snapshots.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Address returns the shipping address snapshot.
func (o *Order) Address() Address {
	return o.address
}

// PaymentMethod returns the payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Rider returns the assigned rider's ID, or nil before shipping.
func (o *Order) Rider() *kernel.UUID {
	return o.riderID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DiscountPercent returns the discount applied at creation.
func (o *Order) DiscountPercent() int {
	return o.discountPercent
}

// Subtotal returns the sum of line subtotals before discount.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Tax returns the tax amount.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Total returns the grand total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-transition timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Pay records payment confirmation: pending -> paid, requested by the owning
// customer. A non-unknown method replaces the one chosen at checkout (the
// customer may switch from card to PayPal at confirmation time).
func (o *Order) Pay(actor Actor, method PaymentMethod) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.status.TransitionTo(StatusPaid, actor.Role()); err != nil {
		return err
	}
	if !actor.ID().IsEqual(o.customerID) {
		return ErrNotOrderOwner
	}

	if method != PaymentMethodUnknown {
		if err := method.Validate(); err != nil {
			return err
		}
		o.paymentMethod = method
	}

	o.paymentStatus = PaymentStatusPaid
	o.status = StatusPaid
	o.touch()
	return nil
}

// Cancel stops the order before shipping: pending/paid -> cancelled,
// requested by the owning customer.
func (o *Order) Cancel(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.status.TransitionTo(StatusCancelled, actor.Role()); err != nil {
		return err
	}
	if !actor.ID().IsEqual(o.customerID) {
		return ErrNotOrderOwner
	}

	o.status = StatusCancelled
	o.touch()
	return nil
}

// Ship hands the order to a rider: paid -> shipped, requested by an admin.
// The rider must be supplied and must hold the rider role; the assignment is
// atomic with the transition and never cleared afterwards.
func (o *Order) Ship(actor Actor, rider *user.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.status.TransitionTo(StatusShipped, actor.Role()); err != nil {
		return err
	}
	if rider == nil {
		return ErrRiderRequired
	}
	if err := rider.Validate(); err != nil {
		return err
	}
	if !rider.IsRider() {
		return NewInvalidRiderError(rider.ID())
	}

	riderID := rider.ID()
	o.riderID = &riderID
	o.status = StatusShipped
	o.touch()
	return nil
}

// Deliver records a successful delivery: shipped -> delivered, requested by
// the order's assigned rider.
func (o *Order) Deliver(actor Actor) error {
	return o.completeDelivery(actor, StatusDelivered)
}

// MarkUndelivered records a failed delivery attempt: shipped -> undelivered,
// requested by the order's assigned rider.
func (o *Order) MarkUndelivered(actor Actor) error {
	return o.completeDelivery(actor, StatusUndelivered)
}

func (o *Order) completeDelivery(actor Actor, outcome Status) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.status.TransitionTo(outcome, actor.Role()); err != nil {
		return err
	}
	if o.riderID == nil || !o.riderID.IsEqual(actor.ID()) {
		return ErrNotAssignedRider
	}

	o.status = outcome
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) computeTotals() {
	subtotal := kernel.Zero()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Subtotal())
	}

	discounted := subtotal.ApplyPercent(int64(100 - o.discountPercent))
	tax := discounted.ApplyPercent(taxRatePercent)

	o.subtotal = subtotal
	o.tax = tax
	o.total = discounted.Add(tax)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setDiscountPercent(percent int) error {
	if percent < 0 || percent > 100 {
		return errs.NewValueIsOutOfRangeError("discount", percent, 0, 100)
	}
	o.discountPercent = percent
	return nil
}
