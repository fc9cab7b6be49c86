package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/pkg/errs"
)

func Test_NewItem_Success(t *testing.T) {
	productID := kernel.NewUUID()

	item, err := NewItem(productID, "Desk Fan Mini", "S", "black", mustMoney(t, 1999), 3)

	require.NoError(t, err)
	assert.NoError(t, item.Validate())
	assert.True(t, item.ProductID().IsEqual(productID))
	assert.Equal(t, "Desk Fan Mini", item.Name())
	assert.Equal(t, "S", item.Size())
	assert.Equal(t, "black", item.Color())
	assert.Equal(t, int64(1999), item.UnitPrice().Cents())
	assert.Equal(t, 3, item.Quantity())
}

func Test_NewItem_Validation(t *testing.T) {
	price := mustMoney(t, 1999)

	tests := []struct {
		name string
		run  func() (Item, error)
	}{
		{"empty product id", func() (Item, error) {
			return NewItem(kernel.UUID{}, "Desk Fan Mini", "S", "black", price, 1)
		}},
		{"empty name", func() (Item, error) {
			return NewItem(kernel.NewUUID(), "  ", "S", "black", price, 1)
		}},
		{"zero quantity", func() (Item, error) {
			return NewItem(kernel.NewUUID(), "Desk Fan Mini", "S", "black", price, 0)
		}},
		{"quantity over limit", func() (Item, error) {
			return NewItem(kernel.NewUUID(), "Desk Fan Mini", "S", "black", price, 101)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.run()
			assert.Error(t, err)
		})
	}
}

func Test_NewItem_QuantityOutOfRange(t *testing.T) {
	_, err := NewItem(kernel.NewUUID(), "Desk Fan Mini", "", "", mustMoney(t, 1999), 200)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func Test_Item_Subtotal(t *testing.T) {
	item, err := NewItem(kernel.NewUUID(), "Desk Fan Mini", "", "", mustMoney(t, 1999), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(5997), item.Subtotal().Cents())
}

func Test_Item_Variant(t *testing.T) {
	tests := []struct {
		name  string
		size  string
		color string
		want  string
	}{
		{"both", "M", "white", "M / white"},
		{"size only", "M", "", "M"},
		{"color only", "", "white", "white"},
		{"neither", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewItem(kernel.NewUUID(), "Desk Fan Mini", tt.size, tt.color, mustMoney(t, 1999), 1)
			require.NoError(t, err)

			assert.Equal(t, tt.want, item.Variant())
		})
	}
}

func Test_Item_Validate_NotConstructed(t *testing.T) {
	var item Item
	assert.ErrorIs(t, item.Validate(), ErrItemIsNotConstructed)
}
