package kernel

import (
	"fmt"

	"fanstore/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in cents.
// Storing cents as an integer avoids the floating-point drift that creeps in
// when prices are summed and taxed as fractional dollars.
//
// Money is immutable: arithmetic methods return new values. Negative amounts
// are rejected on construction since nothing in the order model deals with
// refunds or credits.
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in cents.
// Returns an error for negative amounts.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// Zero returns the zero monetary amount.
func Zero() Money {
	return Money{}
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyBy returns the amount multiplied by a non-negative quantity.
func (m Money) MultiplyBy(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// ApplyPercent returns the given percentage of the amount, rounded to the
// nearest cent. Used for tax and discount calculations.
func (m Money) ApplyPercent(percent int64) Money {
	return Money{cents: (m.cents*percent + 50) / 100}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as dollars with two decimal places, e.g. "129.99".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
