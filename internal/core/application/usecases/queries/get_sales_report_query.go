package queries

import (
	"errors"
	"time"

	"fanstore/internal/pkg/errs"
	"fanstore/internal/pkg/guard"
)

var ErrGetSalesReportQueryIsNotConstructed = errors.New(
	"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
)

// GetSalesReportQuery aggregates paid orders created inside a time window:
// order counts per status and total revenue. Backs both the admin dashboard
// endpoint and the daily report email.
type GetSalesReportQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetSalesReportQuery creates a report query for the half-open window
// [from, to).
func NewGetSalesReportQuery(from, to time.Time) (GetSalesReportQuery, error) {
	if from.IsZero() || to.IsZero() {
		return GetSalesReportQuery{}, errs.NewValueIsRequiredError("report window")
	}
	if !to.After(from) {
		return GetSalesReportQuery{}, errs.NewValueIsInvalidError("report window")
	}

	return GetSalesReportQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSalesReportQueryIsNotConstructed if validation fails.
func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

// From returns the window start (inclusive).
func (q GetSalesReportQuery) From() time.Time {
	return q.from
}

// To returns the window end (exclusive).
func (q GetSalesReportQuery) To() time.Time {
	return q.to
}

// GetSalesReportQueryResponse summarizes a reporting window.
type GetSalesReportQueryResponse struct {
	From            time.Time      `json:"from"`
	To              time.Time      `json:"to"`
	TotalOrders     int64          `json:"totalOrders"`
	OrdersByStatus  map[string]int64 `json:"ordersByStatus"`
	Revenue         string         `json:"revenue"`
	RevenueCents    int64          `json:"revenueCents"`
	DeliveredOrders int64          `json:"deliveredOrders"`
}
