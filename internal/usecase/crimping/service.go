package crimping

import (
	"time"

	"crimpqc/internal/ports"
)

// Service owns the order -> record -> sample lifecycle and the audit
// state machine. Every mutation runs inside the request-scoped unit of
// work.
type Service struct {
	orders ports.OrderRepository
	refs   ports.ReferenceRepository
	uow    ports.UnitOfWork
	now    func() time.Time
}

func NewService(orders ports.OrderRepository, refs ports.ReferenceRepository, uow ports.UnitOfWork) *Service {
	return &Service{
		orders: orders,
		refs:   refs,
		uow:    uow,
		now:    time.Now,
	}
}

// SampleOverwrite is a per-sample measurement correction applied during
// audit. Matching is by SampleIndex; indices with no existing sample are
// ignored, never created.
type SampleOverwrite struct {
	SampleIndex   int     `json:"sampleIndex"`
	MeasuredForce float64 `json:"measuredForce"`
	IsPassed      bool    `json:"isPassed"`
}

type AuditRecordInput struct {
	Status      int
	AuditorName string
	AuditNote   *string
	Samples     []SampleOverwrite
}
