package order

import (
	"errors"
	"fmt"
	"strings"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/pkg/errs"
)

// maxItemQuantity bounds a single line item; larger orders are a data-entry
// mistake, not a sale.
const maxItemQuantity = 100

// Item is one order line: a product variant snapshot with a quantity.
//
// The product name, variant (size, color) and unit price are captured at
// order time and never re-read from the catalog, so the line stays accurate
// when the catalog changes.
type Item struct {
	productID kernel.UUID
	name      string
	size      string
	color     string
	unitPrice kernel.Money
	quantity  int

	isConstructed bool
}

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// NewItem creates a validated order line. Size and color may be empty for
// products without variants.
func NewItem(
	productID kernel.UUID,
	name, size, color string,
	unitPrice kernel.Money,
	quantity int,
) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Item{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity < 1 || quantity > maxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}

	return Item{
		productID:     productID,
		name:          name,
		size:          size,
		color:         color,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name captured at order time.
func (i Item) Name() string {
	return i.name
}

// Size returns the chosen variant size ("" when not applicable).
func (i Item) Size() string {
	return i.size
}

// Color returns the chosen variant color ("" when not applicable).
func (i Item) Color() string {
	return i.color
}

// UnitPrice returns the per-unit price captured at order time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price times quantity.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.MultiplyBy(i.quantity)
}

// Variant renders the variant for display, e.g. "M / white".
// Returns "" for products without variants.
func (i Item) Variant() string {
	switch {
	case i.size != "" && i.color != "":
		return fmt.Sprintf("%s / %s", i.size, i.color)
	case i.size != "":
		return i.size
	case i.color != "":
		return i.color
	default:
		return ""
	}
}
