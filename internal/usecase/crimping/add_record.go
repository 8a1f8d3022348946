package crimping

import (
	"context"
	"errors"
	"strings"

	domaincrimping "crimpqc/internal/domain/crimping"
	"crimpqc/internal/errs"
	"crimpqc/internal/ports"
)

// AddRecord binds the record to the order and inserts it together with
// its nested samples as one unit. Closed orders reject submissions until
// reopened.
func (s *Service) AddRecord(ctx context.Context, orderID string, record ports.InspectionRecord) (ports.InspectionRecord, error) {
	if ctx == nil {
		return ports.InspectionRecord{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.InspectionRecord{}, errs.Wrap(err, "check context")
	}
	if s.orders == nil || s.uow == nil {
		return ports.InspectionRecord{}, errors.New("order repository and unit of work are required")
	}

	record.ID = strings.TrimSpace(record.ID)
	if record.ID == "" {
		return ports.InspectionRecord{}, domaincrimping.ErrRecordIDRequired
	}

	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		order, err := s.orders.GetOrderHeader(txCtx, orderID)
		if err != nil {
			return err
		}
		if order.IsClosed {
			return domaincrimping.ErrOrderClosed
		}

		record.OrderID = order.ID
		if record.SubmittedAt == nil {
			now := s.now()
			record.SubmittedAt = &now
		}
		for i := range record.Samples {
			record.Samples[i].InspectionRecordID = record.ID
		}

		return s.orders.CreateRecord(txCtx, record)
	}); err != nil {
		return ports.InspectionRecord{}, err
	}

	return record, nil
}
