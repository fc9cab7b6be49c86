package order

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/pkg/errs"
)

func Test_Status_Constants(t *testing.T) {
	assert.Equal(t, Status(0), StatusUnknown)
	assert.Equal(t, Status(1), StatusPending)
	assert.Equal(t, Status(2), StatusPaid)
	assert.Equal(t, Status(3), StatusShipped)
	assert.Equal(t, Status(4), StatusDelivered)
	assert.Equal(t, Status(5), StatusUndelivered)
	assert.Equal(t, Status(6), StatusCancelled)
}

func Test_Status_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"paid", StatusPaid, false},
		{"shipped", StatusShipped, false},
		{"delivered", StatusDelivered, false},
		{"undelivered", StatusUndelivered, false},
		{"cancelled", StatusCancelled, false},
		{"unknown is invalid", StatusUnknown, true},
		{"out of range is invalid", Status(42), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_Status_String(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "paid", StatusPaid.String())
	assert.Equal(t, "shipped", StatusShipped.String())
	assert.Equal(t, "delivered", StatusDelivered.String())
	assert.Equal(t, "undelivered", StatusUndelivered.String())
	assert.Equal(t, "cancelled", StatusCancelled.String())
	assert.Equal(t, "unknown", StatusUnknown.String())
}

func Test_StatusFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"paid", StatusPaid, false},
		{"shipped", StatusShipped, false},
		{"delivered", StatusDelivered, false},
		{"undelivered", StatusUndelivered, false},
		{"cancelled", StatusCancelled, false},
		{"unknown", StatusUnknown, true},
		{"", StatusUnknown, true},
		{"PAID", StatusUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := StatusFromString(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Status_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusPaid.IsTerminal())
	assert.False(t, StatusShipped.IsTerminal())
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusUndelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

// Test_Status_TransitionTo_Grid walks every (role, from, to) combination and
// asserts that exactly the six allowed transitions succeed for exactly the
// role that owns them.
func Test_Status_TransitionTo_Grid(t *testing.T) {
	allStatuses := []Status{
		StatusPending, StatusPaid, StatusShipped,
		StatusDelivered, StatusUndelivered, StatusCancelled,
	}
	allRoles := []user.Role{user.RoleCustomer, user.RoleAdmin, user.RoleRider}

	allowed := map[transition]user.Role{
		{from: StatusPending, to: StatusPaid}:        user.RoleCustomer,
		{from: StatusPending, to: StatusCancelled}:   user.RoleCustomer,
		{from: StatusPaid, to: StatusCancelled}:      user.RoleCustomer,
		{from: StatusPaid, to: StatusShipped}:        user.RoleAdmin,
		{from: StatusShipped, to: StatusDelivered}:   user.RoleRider,
		{from: StatusShipped, to: StatusUndelivered}: user.RoleRider,
	}

	for _, role := range allRoles {
		for _, from := range allStatuses {
			for _, to := range allStatuses {
				t.Run(role.String()+"_"+from.String()+"_to_"+to.String(), func(t *testing.T) {
					err := from.TransitionTo(to, role)

					if owner, ok := allowed[transition{from: from, to: to}]; ok && owner == role {
						assert.NoError(t, err)
						return
					}

					require.ErrorIs(t, err, ErrInvalidTransition)

					var transitionErr *InvalidTransitionError
					require.True(t, errors.As(err, &transitionErr))
					assert.Equal(t, from, transitionErr.From)
					assert.Equal(t, to, transitionErr.To)
				})
			}
		}
	}
}

func Test_Status_TransitionTo_SameStateIsRejected(t *testing.T) {
	err := StatusPaid.TransitionTo(StatusPaid, user.RoleCustomer)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func Test_Status_TransitionTo_InvalidTargetStatus(t *testing.T) {
	err := StatusPending.TransitionTo(Status(42), user.RoleCustomer)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_Status_ValidateCanHaveRider(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		hasRider bool
		wantErr  bool
	}{
		{"pending without rider", StatusPending, false, false},
		{"pending with rider", StatusPending, true, true},
		{"paid without rider", StatusPaid, false, false},
		{"paid with rider", StatusPaid, true, true},
		{"cancelled without rider", StatusCancelled, false, false},
		{"shipped with rider", StatusShipped, true, false},
		{"shipped without rider", StatusShipped, false, true},
		{"delivered with rider", StatusDelivered, true, false},
		{"delivered without rider", StatusDelivered, false, true},
		{"undelivered with rider", StatusUndelivered, true, false},
		{"undelivered without rider", StatusUndelivered, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.ValidateCanHaveRider(tt.hasRider)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
