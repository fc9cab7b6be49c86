package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/pkg/errs"
)

// respondError maps a use-case error to its HTTP status.
//
// The taxonomy: unknown ids are 404, rejected state machine moves and lost
// write races are 409, acting on someone else's order is 403, malformed or
// incomplete input is 400 and anything else is a 500 with the detail kept
// out of the response body.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrentModification):
		return writeError(ctx, http.StatusConflict, err.Error())

	case errors.Is(err, order.ErrNotOrderOwner),
		errors.Is(err, order.ErrNotAssignedRider):
		return writeError(ctx, http.StatusForbidden, err.Error())

	case errors.Is(err, order.ErrRiderRequired),
		errors.Is(err, order.ErrInvalidRider),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, err.Error())

	default:
		return writeError(ctx, http.StatusInternalServerError, "internal error")
	}
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
