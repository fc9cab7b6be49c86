// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items are stored as a JSONB snapshot: they are immutable after
// checkout and never queried individually, so a relational child table would
// buy nothing. Status is stored as its string form and carries an index
// because the conditional transition write filters on it.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	RiderID         *uuid.UUID `gorm:"type:uuid;index"`
	Items           []ItemDTO  `gorm:"serializer:json;type:jsonb"`
	Address         AddressDTO `gorm:"embedded"`
	PaymentMethod   string
	PaymentStatus   string
	Status          string `gorm:"index"`
	DiscountPercent int
	SubtotalCents   int64
	TaxCents        int64
	TotalCents      int64
	CreatedAt       time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one line of the JSONB items snapshot. The JSON tags are part of
// the storage format and shared with the read-side queries.
type ItemDTO struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Size           string `json:"size,omitempty"`
	Color          string `json:"color,omitempty"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

// AddressDTO represents the embedded shipping address within the order table.
type AddressDTO struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductID:      item.ProductID().String(),
			Name:           item.Name(),
			Size:           item.Size(),
			Color:          item.Color(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
		})
	}

	address := aggregate.Address()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		RiderID:    riderID,
		Items:      items,
		Address: AddressDTO{
			Street:     address.Street(),
			City:       address.City(),
			State:      address.State(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
			Phone:      address.Phone(),
		},
		PaymentMethod:   aggregate.PaymentMethod().String(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		Status:          aggregate.Status().String(),
		DiscountPercent: aggregate.DiscountPercent(),
		SubtotalCents:   aggregate.Subtotal().Cents(),
		TaxCents:        aggregate.Tax().Cents(),
		TotalCents:      aggregate.Total().Cents(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, re-validating the structural invariants on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromString(itemDTO.ProductID)
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPriceCents)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(
			productID, itemDTO.Name, itemDTO.Size, itemDTO.Color, unitPrice, itemDTO.Quantity,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.State,
		dto.Address.PostalCode,
		dto.Address.Country,
		dto.Address.Phone,
	)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.SubtotalCents)
	if err != nil {
		return nil, err
	}

	tax, err := kernel.NewMoney(dto.TaxCents)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, items, address,
		paymentMethod, paymentStatus, status, riderID,
		dto.DiscountPercent,
		subtotal, tax, total,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
