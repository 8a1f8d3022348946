package crimping

import (
	"context"
	"errors"
	"strings"

	domaincrimping "crimpqc/internal/domain/crimping"
	"crimpqc/internal/errs"
)

// DeleteRecord cascades deletion of the record's samples. Unknown ids
// are a success no-op.
func (s *Service) DeleteRecord(ctx context.Context, recordID string) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.orders == nil || s.uow == nil {
		return errors.New("order repository and unit of work are required")
	}

	if strings.TrimSpace(recordID) == "" {
		return domaincrimping.ErrRecordIDRequired
	}

	return s.uow.WithTx(ctx, func(txCtx context.Context) error {
		return s.orders.DeleteRecord(txCtx, recordID)
	})
}
