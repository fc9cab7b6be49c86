package queries

import (
	"context"

	"gorm.io/gorm"

	"fanstore/internal/core/domain/model/order"
)

// GetSalesReportQueryHandler aggregates order data for a reporting window.
type GetSalesReportQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesReportQueryHandler creates a handler for sales report queries.
// Requires a GORM database connection for query execution.
func NewGetSalesReportQueryHandler(db *gorm.DB) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{db: db}
}

// Handle executes the report query. Revenue counts orders whose payment was
// confirmed, regardless of their later delivery outcome; cancelled orders
// before payment contribute a status count only.
func (h GetSalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetSalesReportQuery,
) (GetSalesReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	resp := GetSalesReportQueryResponse{
		From:           query.From(),
		To:             query.To(),
		OrdersByStatus: make(map[string]int64),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(total_cents) FILTER (WHERE payment_status = ?), 0)
		FROM orders
		WHERE created_at >= ? AND created_at < ?
		GROUP BY status
	`, order.PaymentStatusPaid.String(), query.From(), query.To()).Rows()
	if err != nil {
		return GetSalesReportQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status       string
			count        int64
			revenueCents int64
		)

		if err = rows.Scan(&status, &count, &revenueCents); err != nil {
			return GetSalesReportQueryResponse{}, err
		}

		resp.OrdersByStatus[status] = count
		resp.TotalOrders += count
		resp.RevenueCents += revenueCents
		if status == order.StatusDelivered.String() {
			resp.DeliveredOrders = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	resp.Revenue = formatCents(resp.RevenueCents)
	return resp, nil
}
