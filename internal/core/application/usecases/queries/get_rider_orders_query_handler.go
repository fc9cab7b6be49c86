package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fanstore/internal/core/domain/model/kernel"
)

// GetRiderOrdersQueryHandler lists a rider's assigned orders from the
// database.
type GetRiderOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderOrdersQueryHandler creates a handler for rider assignment
// listings. Requires a GORM database connection for query execution.
func NewGetRiderOrdersQueryHandler(db *gorm.DB) GetRiderOrdersQueryHandler {
	return GetRiderOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the rider's assigned orders newest
// first; an empty slice when none are assigned.
func (h GetRiderOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRiderOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			rider_id,
			status,
			payment_status,
			total_cents,
			created_at,
			updated_at
		FROM orders
		WHERE rider_id = ?
		ORDER BY created_at DESC
	`, query.RiderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// scanOrderSummaries converts listing rows into API summaries. Shared by the
// customer and rider listings, whose projections are identical.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	summaries := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			customerID    uuid.UUID
			riderID       *uuid.UUID
			status        string
			paymentStatus string
			totalCents    int64
		)
		summary := OrderSummaryResponse{}

		if err := rows.Scan(
			&id, &customerID, &riderID,
			&status, &paymentStatus, &totalCents,
			&summary.CreatedAt, &summary.UpdatedAt,
		); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		summary.ID = orderID

		ownerID, err := kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}
		summary.CustomerID = ownerID

		if riderID != nil {
			rid, ridErr := kernel.UUIDFromBytes(riderID[:])
			if ridErr != nil {
				return nil, ridErr
			}
			summary.RiderID = &rid
		}

		summary.Status = status
		summary.PaymentStatus = paymentStatus
		summary.Total = formatCents(totalCents)
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
