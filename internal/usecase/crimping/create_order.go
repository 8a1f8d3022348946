package crimping

import (
	"context"
	"errors"
	"strings"

	domaincrimping "crimpqc/internal/domain/crimping"
	"crimpqc/internal/errs"
	"crimpqc/internal/ports"
)

// CreateOrder inserts the order as-is; the client supplies the id.
// Duplicate ids surface as a storage failure from the primary-key
// constraint.
func (s *Service) CreateOrder(ctx context.Context, order ports.ProductionOrder) (ports.ProductionOrder, error) {
	if ctx == nil {
		return ports.ProductionOrder{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.ProductionOrder{}, errs.Wrap(err, "check context")
	}
	if s.orders == nil || s.uow == nil {
		return ports.ProductionOrder{}, errors.New("order repository and unit of work are required")
	}

	order.ID = strings.TrimSpace(order.ID)
	if order.ID == "" {
		return ports.ProductionOrder{}, domaincrimping.ErrOrderIDRequired
	}
	if strings.TrimSpace(order.ProductionOrderNo) == "" {
		return ports.ProductionOrder{}, domaincrimping.ErrOrderNoRequired
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now()
	}

	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		return s.orders.CreateOrder(txCtx, order)
	}); err != nil {
		return ports.ProductionOrder{}, err
	}

	return order, nil
}
