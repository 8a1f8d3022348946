package crimping

import (
	"context"
	"errors"

	domaincrimping "crimpqc/internal/domain/crimping"
	"crimpqc/internal/errs"
)

// DeleteOrder cascades deletion of the order's records and their samples.
// Unknown ids are a success no-op. Orders holding any Pass record are
// protected: accepted inspections must stay traceable.
func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.orders == nil || s.uow == nil {
		return errors.New("order repository and unit of work are required")
	}

	return s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.orders.GetOrderHeader(txCtx, id); err != nil {
			if errors.Is(err, domaincrimping.ErrOrderNotFound) {
				return nil
			}
			return err
		}

		passed, err := s.orders.HasPassedRecords(txCtx, id)
		if err != nil {
			return err
		}
		if passed {
			return domaincrimping.ErrOrderHasPassed
		}

		return s.orders.DeleteOrder(txCtx, id)
	})
}
