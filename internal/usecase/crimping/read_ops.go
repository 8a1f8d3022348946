package crimping

import (
	"context"
	"errors"
	"strings"

	"crimpqc/internal/errs"
	"crimpqc/internal/ports"
)

// ListOrders returns every order with its full record -> sample tree,
// newest first.
func (s *Service) ListOrders(ctx context.Context) ([]ports.ProductionOrder, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if s.orders == nil {
		return nil, errors.New("order repository is required")
	}

	return s.orders.ListOrders(ctx)
}

func (s *Service) GetOrder(ctx context.Context, id string) (ports.ProductionOrder, error) {
	if ctx == nil {
		return ports.ProductionOrder{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.ProductionOrder{}, errs.Wrap(err, "check context")
	}
	if s.orders == nil {
		return ports.ProductionOrder{}, errors.New("order repository is required")
	}

	return s.orders.GetOrder(ctx, id)
}

// ListOrdersByCreator filters by the stored creator employee id. A blank
// id yields an empty result, not an error.
func (s *Service) ListOrdersByCreator(ctx context.Context, employeeID string, includeClosed bool) ([]ports.ProductionOrder, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if s.orders == nil {
		return nil, errors.New("order repository is required")
	}

	if strings.TrimSpace(employeeID) == "" {
		return []ports.ProductionOrder{}, nil
	}

	return s.orders.ListOrdersByCreator(ctx, employeeID, includeClosed)
}
