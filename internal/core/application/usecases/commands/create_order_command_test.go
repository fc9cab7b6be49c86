package commands_test

import (
	"testing"

	"fanstore/internal/core/application/usecases/commands"
	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()
	price, err := kernel.NewMoney(4999)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Tower Fan 3000", "", "white", price, 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress("12 Breeze St", "Coolville", "CA", "90210", "US", "")
	require.NoError(t, err)
	return addr
}

func TestNewCreateOrderCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	items := testItems(t)

	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, items, testAddress(t), order.PaymentMethodCreditCard, 15,
	)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.CustomerID().IsEqual(customerID))
	assert.Len(t, cmd.Items(), 1)
	assert.Equal(t, order.PaymentMethodCreditCard, cmd.PaymentMethod())
	assert.Equal(t, 15, cmd.DiscountPercent())
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	items := testItems(t)
	address := testAddress(t)

	tests := []struct {
		name string
		run  func() (commands.CreateOrderCommand, error)
	}{
		{"empty order id", func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				kernel.UUID{}, kernel.NewUUID(), items, address, order.PaymentMethodCreditCard, 0,
			)
		}},
		{"empty customer id", func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				kernel.NewUUID(), kernel.UUID{}, items, address, order.PaymentMethodCreditCard, 0,
			)
		}},
		{"no items", func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				kernel.NewUUID(), kernel.NewUUID(), nil, address, order.PaymentMethodCreditCard, 0,
			)
		}},
		{"unconstructed item", func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				kernel.NewUUID(), kernel.NewUUID(), []order.Item{{}}, address, order.PaymentMethodCreditCard, 0,
			)
		}},
		{"unconstructed address", func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				kernel.NewUUID(), kernel.NewUUID(), items, order.Address{}, order.PaymentMethodCreditCard, 0,
			)
		}},
		{"unknown payment method", func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				kernel.NewUUID(), kernel.NewUUID(), items, address, order.PaymentMethodUnknown, 0,
			)
		}},
		{"discount out of range", func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				kernel.NewUUID(), kernel.NewUUID(), items, address, order.PaymentMethodCreditCard, 120,
			)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.run()
			require.Error(t, err)
		})
	}
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
