package crimping

import (
	"context"
	"errors"

	"crimpqc/internal/errs"
)

// ToggleClose sets the closed flag unconditionally; closing and
// reopening are both allowed regardless of existing records. A closed
// order only rejects new record submissions, not audits.
func (s *Service) ToggleClose(ctx context.Context, id string, isClosed bool) error {
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
		return s.orders.SetOrderClosed(txCtx, id, isClosed)
	})
}
