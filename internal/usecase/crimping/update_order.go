package crimping

import (
	"context"
	"errors"
	"strings"

	domaincrimping "crimpqc/internal/domain/crimping"
	"crimpqc/internal/errs"
	"crimpqc/internal/ports"
)

// UpdateOrder overwrites process-parameter fields only. Closed flag,
// creator and audit data stay untouched. Orders that already carry
// inspection records are still updatable: the "frozen parameters" rule
// is deliberately not enforced.
func (s *Service) UpdateOrder(ctx context.Context, id string, order ports.ProductionOrder) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.orders == nil || s.uow == nil {
		return errors.New("order repository and unit of work are required")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return domaincrimping.ErrOrderIDRequired
	}
	if strings.TrimSpace(order.ProductionOrderNo) == "" {
		return domaincrimping.ErrOrderNoRequired
	}

	return s.uow.WithTx(ctx, func(txCtx context.Context) error {
		return s.orders.UpdateOrderParams(txCtx, ports.OrderParams{
			ID:                id,
			ProductionOrderNo: order.ProductionOrderNo,
			ProductName:       order.ProductName,
			ProductModel:      order.ProductModel,
			ToolNo:            order.ToolNo,
			TerminalSpecID:    order.TerminalSpecID,
			WireSpecID:        order.WireSpecID,
			StandardPullForce: order.StandardPullForce,
		})
	})
}
