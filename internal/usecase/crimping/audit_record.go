package crimping

import (
	"context"
	"errors"
	"strings"

	domaincrimping "crimpqc/internal/domain/crimping"
	"crimpqc/internal/errs"
	"crimpqc/internal/ports"
)

// AuditRecord resolves a pending record to Pass or Fail: status, auditor,
// timestamp and note are set atomically with the optional per-sample
// measurement overwrite. Incoming samples match existing ones by
// SampleIndex; unmatched indices are silently ignored. Audits do not
// check the order's closed state.
func (s *Service) AuditRecord(ctx context.Context, recordID string, input AuditRecordInput) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.orders == nil || s.uow == nil {
		return errors.New("order repository and unit of work are required")
	}

	auditorName := strings.TrimSpace(input.AuditorName)
	if auditorName == "" {
		return domaincrimping.ErrAuditorRequired
	}
	if !domaincrimping.ValidAuditTarget(domaincrimping.RecordStatus(input.Status)) {
		return domaincrimping.ErrInvalidAuditState
	}

	return s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.orders.ApplyRecordAudit(txCtx, ports.RecordAudit{
			RecordID:    recordID,
			Status:      input.Status,
			AuditorName: auditorName,
			AuditedAt:   s.now(),
			AuditNote:   input.AuditNote,
		}); err != nil {
			return err
		}

		for _, sample := range input.Samples {
			if _, err := s.orders.OverwriteSampleByIndex(txCtx, recordID, sample.SampleIndex, sample.MeasuredForce, sample.IsPassed); err != nil {
				return err
			}
		}
		return nil
	})
}
