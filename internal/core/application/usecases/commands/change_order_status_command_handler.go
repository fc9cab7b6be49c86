package commands

import (
	"context"
	"errors"

	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/ports"
	"fanstore/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler executes order status transitions.
//
// It loads the aggregate, lets the domain decide whether the actor may make
// the move, and persists the result with a conditional write keyed on the
// status the order had when it was loaded. Two racing requests therefore
// resolve to one winner: the loser's write matches no row and fails with
// *errs.ConcurrentModificationError, leaving the order exactly one
// transition ahead.
//
// Notification fan-out is triggered once, after the commit, so side effects
// are only ever emitted for transitions that are durably stored.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.OrderNotifier
}

// NewChangeOrderStatusCommandHandler creates a handler for status transition
// operations. Requires a UoWFactory for transactional persistence and the
// notifier that fans out committed transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	notifier ports.OrderNotifier,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the transition command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	priorStatus := aggregate.Status()

	if err = h.applyTransition(ctx, uow, aggregate, cmd); err != nil {
		return err
	}

	customer, err := uow.UserRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().UpdateInStatus(ctx, aggregate, priorStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(aggregate, customer)
	return nil
}

func (h *ChangeOrderStatusCommandHandler) applyTransition(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	cmd ChangeOrderStatusCommand,
) error {
	switch cmd.TargetStatus() {
	case order.StatusPaid:
		return aggregate.Pay(cmd.Actor(), cmd.PaymentMethod())
	case order.StatusCancelled:
		return aggregate.Cancel(cmd.Actor())
	case order.StatusShipped:
		return h.ship(ctx, uow, aggregate, cmd)
	case order.StatusDelivered:
		return aggregate.Deliver(cmd.Actor())
	case order.StatusUndelivered:
		return aggregate.MarkUndelivered(cmd.Actor())
	default:
		return order.NewInvalidTransitionError(aggregate.Status(), cmd.TargetStatus())
	}
}

func (h *ChangeOrderStatusCommandHandler) ship(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	cmd ChangeOrderStatusCommand,
) error {
	if cmd.RiderID() == nil {
		return order.ErrRiderRequired
	}

	rider, err := uow.UserRepository().Get(ctx, *cmd.RiderID())
	if err != nil {
		// an unknown rider id is a bad request, not a missing order
		if errors.Is(err, errs.ErrObjectNotFound) {
			return order.NewInvalidRiderError(*cmd.RiderID())
		}
		return err
	}

	return aggregate.Ship(cmd.Actor(), rider)
}
