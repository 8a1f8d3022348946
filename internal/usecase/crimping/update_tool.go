package crimping

import (
	"context"
	"errors"
	"strings"

	domaincrimping "crimpqc/internal/domain/crimping"
	"crimpqc/internal/errs"
)

// UpdateToolNo overwrites the tool reference, independent of the closed
// state.
func (s *Service) UpdateToolNo(ctx context.Context, id string, toolNo string) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.orders == nil || s.uow == nil {
		return errors.New("order repository and unit of work are required")
	}

	toolNo = strings.TrimSpace(toolNo)
	if toolNo == "" {
		return domaincrimping.ErrToolNoRequired
	}

	return s.uow.WithTx(ctx, func(txCtx context.Context) error {
		return s.orders.SetOrderToolNo(txCtx, id, toolNo)
	})
}
