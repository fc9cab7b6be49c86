package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/pkg/errs"
)

// orderItemRow mirrors the JSON shape items are stored in.
type orderItemRow struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Size           string `json:"size"`
	Color          string `json:"color"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

// formatCents renders a cents amount with the same decimal representation the
// domain's money type uses.
func formatCents(cents int64) string {
	m, err := kernel.NewMoney(cents)
	if err != nil {
		return "0.00"
	}
	return m.String()
}

func itemsFromJSON(raw []byte) ([]OrderItemResponse, error) {
	var rows []orderItemRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	items := make([]OrderItemResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, OrderItemResponse{
			ProductID: r.ProductID,
			Name:      r.Name,
			Size:      r.Size,
			Color:     r.Color,
			UnitPrice: formatCents(r.UnitPriceCents),
			Quantity:  r.Quantity,
		})
	}
	return items, nil
}

// GetOrderQueryHandler retrieves one order with full detail directly from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns *errs.ObjectNotFoundError both when the
// order does not exist and when the actor is not allowed to see it.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			rider_id,
			status,
			payment_method,
			payment_status,
			items,
			street, city, state, postal_code, country, phone,
			discount_percent,
			subtotal_cents, tax_cents, total_cents,
			created_at, updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id              uuid.UUID
		customerID      uuid.UUID
		riderID         *uuid.UUID
		status          string
		paymentMethod   string
		paymentStatus   string
		itemsJSON       []byte
		street          string
		city            string
		state           string
		postalCode      string
		country         string
		phone           string
		discountPercent int
		subtotalCents   int64
		taxCents        int64
		totalCents      int64
		createdAt       time.Time
		updatedAt       time.Time
	)

	err := row.Scan(
		&id, &customerID, &riderID,
		&status, &paymentMethod, &paymentStatus,
		&itemsJSON,
		&street, &city, &state, &postalCode, &country, &phone,
		&discountPercent,
		&subtotalCents, &taxCents, &totalCents,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if !canViewOrder(query.Actor(), customerID, riderID) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	resp := GetOrderQueryResponse{
		Status:          status,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   paymentStatus,
		DiscountPercent: discountPercent,
		Subtotal:        formatCents(subtotalCents),
		Tax:             formatCents(taxCents),
		Total:           formatCents(totalCents),
		Address: OrderAddressResponse{
			Street:     street,
			City:       city,
			State:      state,
			PostalCode: postalCode,
			Country:    country,
			Phone:      phone,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if riderID != nil {
		rid, ridErr := kernel.UUIDFromBytes(riderID[:])
		if ridErr != nil {
			return GetOrderQueryResponse{}, ridErr
		}
		resp.RiderID = &rid
	}
	if resp.Items, err = itemsFromJSON(itemsJSON); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

// canViewOrder applies the read access rule shared with the realtime channel:
// admins see everything, customers their own orders, riders the orders
// assigned to them.
func canViewOrder(actor order.Actor, customerID uuid.UUID, riderID *uuid.UUID) bool {
	switch actor.Role() {
	case user.RoleAdmin:
		return true
	case user.RoleCustomer:
		return actor.ID().Bytes() == customerID
	case user.RoleRider:
		return riderID != nil && actor.ID().Bytes() == *riderID
	default:
		return false
	}
}
