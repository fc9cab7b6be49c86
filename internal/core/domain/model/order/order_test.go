package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/pkg/errs"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func fixtureItems(t *testing.T) []Item {
	t.Helper()
	fan, err := NewItem(kernel.NewUUID(), "Tower Fan 3000", "", "white", mustMoney(t, 4999), 2)
	require.NoError(t, err)
	ac, err := NewItem(kernel.NewUUID(), "Split AC 12K BTU", "12000", "", mustMoney(t, 39900), 1)
	require.NoError(t, err)
	return []Item{fan, ac}
}

func fixtureAddress(t *testing.T) Address {
	t.Helper()
	addr, err := NewAddress("12 Breeze St", "Coolville", "CA", "90210", "US", "+1 555 0100")
	require.NoError(t, err)
	return addr
}

func fixtureOrder(t *testing.T) (*Order, kernel.UUID) {
	t.Helper()
	customerID := kernel.NewUUID()
	o, err := NewOrder(
		kernel.NewUUID(),
		customerID,
		fixtureItems(t),
		fixtureAddress(t),
		PaymentMethodCreditCard,
		0,
	)
	require.NoError(t, err)
	return o, customerID
}

func actorOf(t *testing.T, id kernel.UUID, role user.Role) Actor {
	t.Helper()
	a, err := NewActor(id, role)
	require.NoError(t, err)
	return a
}

func fixtureRider(t *testing.T) *user.User {
	t.Helper()
	rider, err := user.NewUser(kernel.NewUUID(), "Robin Rider", "robin@fanstore.dev", user.RoleRider)
	require.NoError(t, err)
	return rider
}

func shipOrder(t *testing.T, o *Order, rider *user.User) {
	t.Helper()
	customer := actorOf(t, o.CustomerID(), user.RoleCustomer)
	require.NoError(t, o.Pay(customer, PaymentMethodUnknown))
	admin := actorOf(t, kernel.NewUUID(), user.RoleAdmin)
	require.NoError(t, o.Ship(admin, rider))
}

func Test_NewOrder_Success(t *testing.T) {
	o, customerID := fixtureOrder(t)

	assert.NoError(t, o.Validate())
	assert.Equal(t, StatusPending, o.Status())
	assert.Equal(t, PaymentStatusUnpaid, o.PaymentStatus())
	assert.Equal(t, PaymentMethodCreditCard, o.PaymentMethod())
	assert.True(t, o.CustomerID().IsEqual(customerID))
	assert.Nil(t, o.Rider())
	assert.Len(t, o.Items(), 2)
	assert.False(t, o.CreatedAt().IsZero())
	assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
}

func Test_NewOrder_Totals(t *testing.T) {
	// 2 x 49.99 + 1 x 399.00 = 498.98
	o, _ := fixtureOrder(t)

	assert.Equal(t, int64(49898), o.Subtotal().Cents())
	// tax is 10% of the discounted subtotal
	assert.Equal(t, int64(4990), o.Tax().Cents())
	assert.Equal(t, int64(54888), o.Total().Cents())
}

func Test_NewOrder_Totals_WithDiscount(t *testing.T) {
	o, err := NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		fixtureItems(t),
		fixtureAddress(t),
		PaymentMethodPaypal,
		10,
	)
	require.NoError(t, err)

	// subtotal 498.98, discounted by 10% -> 449.08, tax 44.91, total 493.99
	assert.Equal(t, int64(49898), o.Subtotal().Cents())
	assert.Equal(t, 10, o.DiscountPercent())
	assert.Equal(t, int64(4491), o.Tax().Cents())
	assert.Equal(t, int64(49399), o.Total().Cents())
}

func Test_NewOrder_Validation(t *testing.T) {
	items := fixtureItems(t)
	address := fixtureAddress(t)

	tests := []struct {
		name string
		run  func() (*Order, error)
	}{
		{"empty id", func() (*Order, error) {
			return NewOrder(kernel.UUID{}, kernel.NewUUID(), items, address, PaymentMethodCreditCard, 0)
		}},
		{"empty customer id", func() (*Order, error) {
			return NewOrder(kernel.NewUUID(), kernel.UUID{}, items, address, PaymentMethodCreditCard, 0)
		}},
		{"no items", func() (*Order, error) {
			return NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, address, PaymentMethodCreditCard, 0)
		}},
		{"unconstructed address", func() (*Order, error) {
			return NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, Address{}, PaymentMethodCreditCard, 0)
		}},
		{"unknown payment method", func() (*Order, error) {
			return NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, address, PaymentMethodUnknown, 0)
		}},
		{"discount below range", func() (*Order, error) {
			return NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, address, PaymentMethodCreditCard, -1)
		}},
		{"discount above range", func() (*Order, error) {
			return NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, address, PaymentMethodCreditCard, 101)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := tt.run()
			assert.Error(t, err)
			assert.Nil(t, o)
		})
	}
}

func Test_Order_Pay_Success(t *testing.T) {
	o, customerID := fixtureOrder(t)
	before := o.UpdatedAt()

	err := o.Pay(actorOf(t, customerID, user.RoleCustomer), PaymentMethodUnknown)

	require.NoError(t, err)
	assert.Equal(t, StatusPaid, o.Status())
	assert.Equal(t, PaymentStatusPaid, o.PaymentStatus())
	assert.Equal(t, PaymentMethodCreditCard, o.PaymentMethod())
	assert.False(t, o.UpdatedAt().Before(before))
}

func Test_Order_Pay_SwitchesPaymentMethod(t *testing.T) {
	o, customerID := fixtureOrder(t)

	err := o.Pay(actorOf(t, customerID, user.RoleCustomer), PaymentMethodPaypal)

	require.NoError(t, err)
	assert.Equal(t, PaymentMethodPaypal, o.PaymentMethod())
}

func Test_Order_Pay_NotOwner(t *testing.T) {
	o, _ := fixtureOrder(t)

	err := o.Pay(actorOf(t, kernel.NewUUID(), user.RoleCustomer), PaymentMethodUnknown)

	assert.ErrorIs(t, err, ErrNotOrderOwner)
	assert.Equal(t, StatusPending, o.Status())
	assert.Equal(t, PaymentStatusUnpaid, o.PaymentStatus())
}

func Test_Order_Pay_Twice(t *testing.T) {
	o, customerID := fixtureOrder(t)
	customer := actorOf(t, customerID, user.RoleCustomer)
	require.NoError(t, o.Pay(customer, PaymentMethodUnknown))

	err := o.Pay(customer, PaymentMethodUnknown)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func Test_Order_Pay_WrongRole(t *testing.T) {
	o, customerID := fixtureOrder(t)

	err := o.Pay(actorOf(t, customerID, user.RoleAdmin), PaymentMethodUnknown)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func Test_Order_Cancel_Pending(t *testing.T) {
	o, customerID := fixtureOrder(t)

	err := o.Cancel(actorOf(t, customerID, user.RoleCustomer))

	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, o.Status())
}

func Test_Order_Cancel_Paid(t *testing.T) {
	o, customerID := fixtureOrder(t)
	customer := actorOf(t, customerID, user.RoleCustomer)
	require.NoError(t, o.Pay(customer, PaymentMethodUnknown))

	err := o.Cancel(customer)

	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, o.Status())
}

func Test_Order_Cancel_AfterShipping(t *testing.T) {
	o, customerID := fixtureOrder(t)
	shipOrder(t, o, fixtureRider(t))

	err := o.Cancel(actorOf(t, customerID, user.RoleCustomer))

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusShipped, o.Status())
}

func Test_Order_Cancel_NotOwner(t *testing.T) {
	o, _ := fixtureOrder(t)

	err := o.Cancel(actorOf(t, kernel.NewUUID(), user.RoleCustomer))

	assert.ErrorIs(t, err, ErrNotOrderOwner)
}

func Test_Order_Ship_Success(t *testing.T) {
	o, customerID := fixtureOrder(t)
	require.NoError(t, o.Pay(actorOf(t, customerID, user.RoleCustomer), PaymentMethodUnknown))
	rider := fixtureRider(t)

	err := o.Ship(actorOf(t, kernel.NewUUID(), user.RoleAdmin), rider)

	require.NoError(t, err)
	assert.Equal(t, StatusShipped, o.Status())
	require.NotNil(t, o.Rider())
	assert.True(t, o.Rider().IsEqual(rider.ID()))
}

func Test_Order_Ship_RequiresRider(t *testing.T) {
	o, customerID := fixtureOrder(t)
	require.NoError(t, o.Pay(actorOf(t, customerID, user.RoleCustomer), PaymentMethodUnknown))

	err := o.Ship(actorOf(t, kernel.NewUUID(), user.RoleAdmin), nil)

	assert.ErrorIs(t, err, ErrRiderRequired)
	assert.Equal(t, StatusPaid, o.Status())
}

func Test_Order_Ship_RejectsNonRider(t *testing.T) {
	o, customerID := fixtureOrder(t)
	require.NoError(t, o.Pay(actorOf(t, customerID, user.RoleCustomer), PaymentMethodUnknown))
	notARider, err := user.NewUser(kernel.NewUUID(), "Casey Customer", "casey@fanstore.dev", user.RoleCustomer)
	require.NoError(t, err)

	err = o.Ship(actorOf(t, kernel.NewUUID(), user.RoleAdmin), notARider)

	assert.ErrorIs(t, err, ErrInvalidRider)
	assert.Nil(t, o.Rider())
}

func Test_Order_Ship_BeforePayment(t *testing.T) {
	o, _ := fixtureOrder(t)

	err := o.Ship(actorOf(t, kernel.NewUUID(), user.RoleAdmin), fixtureRider(t))

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func Test_Order_Ship_WrongRole(t *testing.T) {
	o, customerID := fixtureOrder(t)
	require.NoError(t, o.Pay(actorOf(t, customerID, user.RoleCustomer), PaymentMethodUnknown))

	err := o.Ship(actorOf(t, customerID, user.RoleCustomer), fixtureRider(t))

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func Test_Order_Deliver_Success(t *testing.T) {
	o, _ := fixtureOrder(t)
	rider := fixtureRider(t)
	shipOrder(t, o, rider)

	err := o.Deliver(actorOf(t, rider.ID(), user.RoleRider))

	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, o.Status())
	assert.True(t, o.Status().IsTerminal())
}

func Test_Order_Deliver_NotAssignedRider(t *testing.T) {
	o, _ := fixtureOrder(t)
	shipOrder(t, o, fixtureRider(t))

	err := o.Deliver(actorOf(t, kernel.NewUUID(), user.RoleRider))

	assert.ErrorIs(t, err, ErrNotAssignedRider)
	assert.Equal(t, StatusShipped, o.Status())
}

func Test_Order_MarkUndelivered_Success(t *testing.T) {
	o, _ := fixtureOrder(t)
	rider := fixtureRider(t)
	shipOrder(t, o, rider)

	err := o.MarkUndelivered(actorOf(t, rider.ID(), user.RoleRider))

	require.NoError(t, err)
	assert.Equal(t, StatusUndelivered, o.Status())
}

func Test_Order_MarkUndelivered_NotAssignedRider(t *testing.T) {
	o, _ := fixtureOrder(t)
	shipOrder(t, o, fixtureRider(t))

	err := o.MarkUndelivered(actorOf(t, kernel.NewUUID(), user.RoleRider))

	assert.ErrorIs(t, err, ErrNotAssignedRider)
}

func Test_Order_TerminalStatusesRejectEverything(t *testing.T) {
	o, _ := fixtureOrder(t)
	rider := fixtureRider(t)
	shipOrder(t, o, rider)
	riderActor := actorOf(t, rider.ID(), user.RoleRider)
	require.NoError(t, o.Deliver(riderActor))

	customer := actorOf(t, o.CustomerID(), user.RoleCustomer)
	assert.ErrorIs(t, o.Pay(customer, PaymentMethodUnknown), ErrInvalidTransition)
	assert.ErrorIs(t, o.Cancel(customer), ErrInvalidTransition)
	assert.ErrorIs(t, o.Deliver(riderActor), ErrInvalidTransition)
	assert.ErrorIs(t, o.MarkUndelivered(riderActor), ErrInvalidTransition)
}

func Test_Order_Validate_NotConstructed(t *testing.T) {
	var o Order
	assert.ErrorIs(t, o.Validate(), ErrOrderIsNotConstructed)

	var nilOrder *Order
	assert.ErrorIs(t, nilOrder.Validate(), ErrOrderIsNotConstructed)
}

func Test_RestoreOrder_Success(t *testing.T) {
	riderID := kernel.NewUUID()
	createdAt := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(2 * time.Hour)

	o, err := RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		fixtureItems(t),
		fixtureAddress(t),
		PaymentMethodPaypal,
		PaymentStatusPaid,
		StatusShipped,
		&riderID,
		5,
		mustMoney(t, 49898), mustMoney(t, 4740), mustMoney(t, 52143),
		createdAt, updatedAt,
	)

	require.NoError(t, err)
	assert.Equal(t, StatusShipped, o.Status())
	require.NotNil(t, o.Rider())
	assert.True(t, o.Rider().IsEqual(riderID))
	assert.Equal(t, int64(52143), o.Total().Cents())
	assert.Equal(t, createdAt, o.CreatedAt())
	assert.Equal(t, updatedAt, o.UpdatedAt())
}

func Test_RestoreOrder_RiderStatusConsistency(t *testing.T) {
	riderID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("rider on a pending order", func(t *testing.T) {
		_, err := RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), fixtureItems(t), fixtureAddress(t),
			PaymentMethodCreditCard, PaymentStatusUnpaid, StatusPending, &riderID,
			0, mustMoney(t, 100), mustMoney(t, 10), mustMoney(t, 110), now, now,
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("shipped order without rider", func(t *testing.T) {
		_, err := RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), fixtureItems(t), fixtureAddress(t),
			PaymentMethodCreditCard, PaymentStatusPaid, StatusShipped, nil,
			0, mustMoney(t, 100), mustMoney(t, 10), mustMoney(t, 110), now, now,
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
