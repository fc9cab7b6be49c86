package user_test

import (
	"fmt"
	"testing"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(user.RoleUnknown))
		assert.Equal(t, 1, int(user.RoleCustomer))
		assert.Equal(t, 2, int(user.RoleAdmin))
		assert.Equal(t, 3, int(user.RoleRider))
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should validate valid roles", func(t *testing.T) {
		validRoles := []user.Role{
			user.RoleCustomer,
			user.RoleAdmin,
			user.RoleRider,
		}

		for _, role := range validRoles {
			t.Run(fmt.Sprintf("should validate %s role", role.String()), func(t *testing.T) {
				require.NoError(t, role.Validate())
			})
		}
	})

	t.Run("should reject invalid role values", func(t *testing.T) {
		invalidRoles := []user.Role{
			user.RoleUnknown,
			user.Role(-1),
			user.Role(4),
			user.Role(100),
		}

		for _, role := range invalidRoles {
			t.Run(fmt.Sprintf("should reject role value %d", int(role)), func(t *testing.T) {
				err := role.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "customer", user.RoleCustomer.String())
	assert.Equal(t, "admin", user.RoleAdmin.String())
	assert.Equal(t, "rider", user.RoleRider.String())
	assert.Equal(t, "unknown", user.RoleUnknown.String())
	assert.Equal(t, "unknown", user.Role(42).String())
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid role strings", func(t *testing.T) {
		cases := map[string]user.Role{
			"customer": user.RoleCustomer,
			"admin":    user.RoleAdmin,
			"rider":    user.RoleRider,
		}

		for s, expected := range cases {
			role, err := user.RoleFromString(s)
			require.NoError(t, err)
			assert.Equal(t, expected, role)
		}
	})

	t.Run("should reject unknown role strings", func(t *testing.T) {
		for _, s := range []string{"", "superuser", "Customer", "RIDER"} {
			_, err := user.RoleFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestNewUser(t *testing.T) {
	t.Run("should create valid user", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "Maria Santos", "maria@example.com", user.RoleCustomer)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "Maria Santos", u.Name())
		assert.Equal(t, "maria@example.com", u.Email())
		assert.Equal(t, user.RoleCustomer, u.Role())
		assert.False(t, u.IsRider())
	})

	t.Run("should recognize riders", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Dinesh", "dinesh@example.com", user.RoleRider)

		require.NoError(t, err)
		assert.True(t, u.IsRider())
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		var id kernel.UUID

		_, err := user.NewUser(id, "Maria", "maria@example.com", user.RoleCustomer)

		require.Error(t, err)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "  ", "maria@example.com", user.RoleCustomer)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Maria", "not-an-email", user.RoleCustomer)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Maria", "maria@example.com", user.RoleUnknown)

		require.Error(t, err)
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var u user.User

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, user.ErrUserIsNotConstructed, err)
	})

	t.Run("nil user fails validation", func(t *testing.T) {
		var u *user.User

		require.Error(t, u.Validate())
	})
}
