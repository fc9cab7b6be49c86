package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/domain/model/user"
)

// Identity headers set by the authenticating gateway in front of this
// service. The service trusts them; it performs authorization, not
// authentication.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// actorFromRequest builds the acting identity from the gateway headers.
// Returns an *echo.HTTPError with status 401 when the headers are missing
// or malformed.
func actorFromRequest(ctx echo.Context) (order.Actor, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	rawRole := ctx.Request().Header.Get(HeaderUserRole)
	if rawID == "" || rawRole == "" {
		return order.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing identity headers")
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return order.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid user id")
	}

	role, err := user.RoleFromString(rawRole)
	if err != nil {
		return order.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid user role")
	}

	actor, err := order.NewActor(id, role)
	if err != nil {
		return order.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid identity")
	}

	return actor, nil
}

// requireRole wraps a handler with a role check on the gateway identity.
func requireRole(role user.Role, next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		actor, err := actorFromRequest(ctx)
		if err != nil {
			return err
		}
		if actor.Role() != role {
			return writeError(ctx, http.StatusForbidden, "insufficient role")
		}
		return next(ctx)
	}
}
