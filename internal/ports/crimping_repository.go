package ports

import (
	"context"
	"time"
)

// ProductionOrder is one production batch tracked for quality control.
// Child records carry the parent id as a plain foreign-key value, never
// a back-pointer, so the in-memory graph has no cycles.
type ProductionOrder struct {
	ID                string             `json:"id"`
	ProductionOrderNo string             `json:"productionOrderNo"`
	ProductName       *string            `json:"productName"`
	ProductModel      *string            `json:"productModel"`
	ToolNo            *string            `json:"toolNo"`
	TerminalSpecID    *string            `json:"terminalSpecId"`
	WireSpecID        *string            `json:"wireSpecId"`
	StandardPullForce *float64           `json:"standardPullForce"`
	CreatorName       *string            `json:"creatorName"`
	CreatorEmployeeID *string            `json:"creatorEmployeeId"`
	IsClosed          bool               `json:"isClosed"`
	CreatedAt         time.Time          `json:"createdAt"`
	Records           []InspectionRecord `json:"records"`
}

// InspectionRecord is one inspection event against an order, pending audit.
type InspectionRecord struct {
	ID            string           `json:"id"`
	OrderID       string           `json:"orderId"`
	Type          *string          `json:"type"`
	SubmitterName *string          `json:"submitterName"`
	SubmittedAt   *time.Time       `json:"submittedAt"`
	Status        int              `json:"status"`
	AuditorName   *string          `json:"auditorName"`
	AuditedAt     *time.Time       `json:"auditedAt"`
	AuditNote     *string          `json:"auditNote"`
	Samples       []TerminalSample `json:"samples"`
}

// TerminalSample is one measured pull-force reading within a record.
// Its identity within a record is SampleIndex, not the row id.
type TerminalSample struct {
	ID                 uint64   `json:"id"`
	InspectionRecordID string   `json:"inspectionRecordId"`
	SampleIndex        int      `json:"sampleIndex"`
	MeasuredForce      *float64 `json:"measuredForce"`
	IsPassed           *bool    `json:"isPassed"`
}

// OrderParams are the process-parameter fields an order update may touch.
// Closed flag, creator and audit data are out of reach by design.
type OrderParams struct {
	ID                string
	ProductionOrderNo string
	ProductName       *string
	ProductModel      *string
	ToolNo            *string
	TerminalSpecID    *string
	WireSpecID        *string
	StandardPullForce *float64
}

// RecordAudit is the audit payload applied to a pending record.
type RecordAudit struct {
	RecordID    string
	Status      int
	AuditorName string
	AuditedAt   time.Time
	AuditNote   *string
}

// OrderRepository persists the order -> record -> sample tree.
type OrderRepository interface {
	ListOrders(ctx context.Context) ([]ProductionOrder, error)
	GetOrder(ctx context.Context, id string) (ProductionOrder, error)
	ListOrdersByCreator(ctx context.Context, employeeID string, includeClosed bool) ([]ProductionOrder, error)
	GetOrderHeader(ctx context.Context, id string) (ProductionOrder, error)
	CreateOrder(ctx context.Context, order ProductionOrder) error
	UpdateOrderParams(ctx context.Context, params OrderParams) error
	SetOrderClosed(ctx context.Context, id string, closed bool) error
	SetOrderToolNo(ctx context.Context, id string, toolNo string) error
	HasPassedRecords(ctx context.Context, orderID string) (bool, error)
	DeleteOrder(ctx context.Context, id string) error

	CreateRecord(ctx context.Context, record InspectionRecord) error
	GetRecord(ctx context.Context, id string) (InspectionRecord, error)
	ApplyRecordAudit(ctx context.Context, audit RecordAudit) error
	OverwriteSampleByIndex(ctx context.Context, recordID string, sampleIndex int, measuredForce float64, isPassed bool) (bool, error)
	DeleteRecord(ctx context.Context, id string) error
}

// CrimpingTool, TerminalSpec, WireSpec and PullForceStandard are static
// lookup tables, read-only from the API's perspective.
type CrimpingTool struct {
	ID    int64  `json:"id"`
	Model string `json:"model"`
	Type  string `json:"type"`
}

type TerminalSpec struct {
	ID           int64   `json:"id"`
	MaterialCode string  `json:"materialCode"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Method       int     `json:"method"`
}

type WireSpec struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	SectionArea float64 `json:"sectionArea"`
}

type PullForceStandard struct {
	ID            int64   `json:"id"`
	Method        int     `json:"method"`
	SectionArea   float64 `json:"sectionArea"`
	StandardValue int     `json:"standardValue"`
}

// ReferenceRepository reads lookup tables; upserts exist for the seed
// command only, the HTTP surface never writes them.
type ReferenceRepository interface {
	ListTerminals(ctx context.Context) ([]TerminalSpec, error)
	ListWires(ctx context.Context) ([]WireSpec, error)
	ListTools(ctx context.Context) ([]CrimpingTool, error)
	ListStandards(ctx context.Context) ([]PullForceStandard, error)

	UpsertTerminals(ctx context.Context, items []TerminalSpec) error
	UpsertWires(ctx context.Context, items []WireSpec) error
	UpsertTools(ctx context.Context, items []CrimpingTool) error
	UpsertStandards(ctx context.Context, items []PullForceStandard) error
}
