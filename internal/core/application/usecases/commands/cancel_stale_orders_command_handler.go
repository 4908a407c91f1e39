package commands

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/order"
)

// CancelStaleOrdersCommandHandler cancels orders stuck in AwaitingPayment.
// Each stale order goes through the regular AwaitingPayment -> Cancelled
// transition; orders that moved on since the query are skipped, not failed.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order cleanup.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cleanup command.
// All cancellations happen in one transaction; a persistence failure on any
// order rolls back the whole batch.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
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

	orderRepo := uow.OrderRepository()

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	staleOrders, err := orderRepo.GetAllAwaitingPaymentBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range staleOrders {
		if err := aggregate.ChangeStatus(order.Cancelled); err != nil {
			// Already moved on since the query; nothing to cancel.
			continue
		}

		if err := orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
