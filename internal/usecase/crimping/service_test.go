package crimping

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	domaincrimping "crimpqc/internal/domain/crimping"
	"crimpqc/internal/infrastructure/persistence/sqlite/model"
	"crimpqc/internal/infrastructure/persistence/sqlite/repository"
	"crimpqc/internal/infrastructure/persistence/sqlite/uow"
	"crimpqc/internal/ports"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "crimpqc.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := db.AutoMigrate(
		&model.CrimpingTool{},
		&model.TerminalSpec{},
		&model.WireSpec{},
		&model.PullForceStandard{},
		&model.ProductionOrder{},
		&model.InspectionRecord{},
		&model.TerminalSample{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	return NewService(
		repository.NewOrderRepository(db),
		repository.NewReferenceRepository(db),
		uow.NewUnitOfWork(db),
	)
}

func strptr(s string) *string { return &s }

func f64ptr(f float64) *float64 { return &f }

func boolptr(b bool) *bool { return &b }

func mustCreateOrder(t *testing.T, svc *Service, id string, closed bool) {
	t.Helper()
	order := ports.ProductionOrder{
		ID:                id,
		ProductionOrderNo: "PN-" + id,
		CreatorEmployeeID: strptr("E100"),
	}
	if _, err := svc.CreateOrder(context.Background(), order); err != nil {
		t.Fatalf("CreateOrder(%s) error = %v", id, err)
	}
	if closed {
		if err := svc.ToggleClose(context.Background(), id, true); err != nil {
			t.Fatalf("ToggleClose(%s) error = %v", id, err)
		}
	}
}

func mustAddRecord(t *testing.T, svc *Service, orderID, recordID string, samples ...ports.TerminalSample) {
	t.Helper()
	if _, err := svc.AddRecord(context.Background(), orderID, ports.InspectionRecord{
		ID:      recordID,
		Samples: samples,
	}); err != nil {
		t.Fatalf("AddRecord(%s) error = %v", recordID, err)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateOrder(ctx, ports.ProductionOrder{ProductionOrderNo: "PN"}); !errors.Is(err, domaincrimping.ErrOrderIDRequired) {
		t.Fatalf("CreateOrder(no id) error = %v, want ErrOrderIDRequired", err)
	}
	if _, err := svc.CreateOrder(ctx, ports.ProductionOrder{ID: "O1"}); !errors.Is(err, domaincrimping.ErrOrderNoRequired) {
		t.Fatalf("CreateOrder(no order no) error = %v, want ErrOrderNoRequired", err)
	}
}

func TestCreateOrderDefaultsCreatedAt(t *testing.T) {
	svc := setupService(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, err := svc.CreateOrder(context.Background(), ports.ProductionOrder{
		ID:                "O1",
		ProductionOrderNo: "PN-O1",
	})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if !created.CreatedAt.Equal(fixed) {
		t.Fatalf("created at = %v, want %v", created.CreatedAt, fixed)
	}
}

func TestAddRecordRejectsClosedOrder(t *testing.T) {
	svc := setupService(t)
	mustCreateOrder(t, svc, "O1", true)

	_, err := svc.AddRecord(context.Background(), "O1", ports.InspectionRecord{ID: "R1"})
	if !errors.Is(err, domaincrimping.ErrOrderClosed) {
		t.Fatalf("AddRecord(closed) error = %v, want ErrOrderClosed", err)
	}
}

func TestAddRecordAfterReopen(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	mustCreateOrder(t, svc, "O1", true)

	if err := svc.ToggleClose(ctx, "O1", false); err != nil {
		t.Fatalf("ToggleClose(reopen) error = %v", err)
	}
	if _, err := svc.AddRecord(ctx, "O1", ports.InspectionRecord{ID: "R1"}); err != nil {
		t.Fatalf("AddRecord(reopened) error = %v", err)
	}
}

func TestAddRecordBindsOrderAndTimestamp(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	mustCreateOrder(t, svc, "O1", false)

	fixed := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	record, err := svc.AddRecord(ctx, "O1", ports.InspectionRecord{
		ID:      "R1",
		OrderID: "bogus",
		Samples: []ports.TerminalSample{
			{SampleIndex: 1, MeasuredForce: f64ptr(61), IsPassed: boolptr(true)},
		},
	})
	if err != nil {
		t.Fatalf("AddRecord() error = %v", err)
	}
	if record.OrderID != "O1" {
		t.Fatalf("record order id = %q, want O1", record.OrderID)
	}
	if record.SubmittedAt == nil || !record.SubmittedAt.Equal(fixed) {
		t.Fatalf("submitted at = %v, want %v", record.SubmittedAt, fixed)
	}
	if record.Status != int(domaincrimping.StatusPending) {
		t.Fatalf("status = %d, want pending", record.Status)
	}

	order, err := svc.GetOrder(ctx, "O1")
	if err != nil {
		t.Fatalf("GetOrder() error = %v", err)
	}
	if len(order.Records) != 1 || len(order.Records[0].Samples) != 1 {
		t.Fatalf("stored tree = %+v", order.Records)
	}
}

func TestAddRecordUnknownOrder(t *testing.T) {
	svc := setupService(t)

	_, err := svc.AddRecord(context.Background(), "missing", ports.InspectionRecord{ID: "R1"})
	if !errors.Is(err, domaincrimping.ErrOrderNotFound) {
		t.Fatalf("AddRecord(unknown order) error = %v, want ErrOrderNotFound", err)
	}
}

func TestAuditRecordValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	mustCreateOrder(t, svc, "O1", false)
	mustAddRecord(t, svc, "O1", "R1")

	if err := svc.AuditRecord(ctx, "R1", AuditRecordInput{Status: 1}); !errors.Is(err, domaincrimping.ErrAuditorRequired) {
		t.Fatalf("AuditRecord(no auditor) error = %v, want ErrAuditorRequired", err)
	}
	for _, status := range []int{0, 3, -1} {
		err := svc.AuditRecord(ctx, "R1", AuditRecordInput{Status: status, AuditorName: "Alice"})
		if !errors.Is(err, domaincrimping.ErrInvalidAuditState) {
			t.Fatalf("AuditRecord(status %d) error = %v, want ErrInvalidAuditState", status, err)
		}
	}
	if err := svc.AuditRecord(ctx, "missing", AuditRecordInput{Status: 1, AuditorName: "Alice"}); !errors.Is(err, domaincrimping.ErrRecordNotFound) {
		t.Fatalf("AuditRecord(unknown record) error = %v, want ErrRecordNotFound", err)
	}
}

func TestAuditRecordAppliesStatusAndSamples(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	mustCreateOrder(t, svc, "O1", false)
	mustAddRecord(t, svc, "O1", "R1",
		ports.TerminalSample{SampleIndex: 1, MeasuredForce: f64ptr(55), IsPassed: boolptr(false)},
		ports.TerminalSample{SampleIndex: 2, MeasuredForce: f64ptr(70), IsPassed: boolptr(true)},
	)

	fixed := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	err := svc.AuditRecord(ctx, "R1", AuditRecordInput{
		Status:      int(domaincrimping.StatusPass),
		AuditorName: "  Alice  ",
		AuditNote:   strptr("retested sample 1"),
		Samples: []SampleOverwrite{
			{SampleIndex: 1, MeasuredForce: 63.5, IsPassed: true},
			{SampleIndex: 99, MeasuredForce: 1, IsPassed: false},
		},
	})
	if err != nil {
		t.Fatalf("AuditRecord() error = %v", err)
	}

	order, err := svc.GetOrder(ctx, "O1")
	if err != nil {
		t.Fatalf("GetOrder() error = %v", err)
	}
	record := order.Records[0]
	if record.Status != int(domaincrimping.StatusPass) {
		t.Fatalf("status = %d, want pass", record.Status)
	}
	if record.AuditorName == nil || *record.AuditorName != "Alice" {
		t.Fatalf("auditor = %v, want trimmed Alice", record.AuditorName)
	}
	if record.AuditedAt == nil || !record.AuditedAt.Equal(fixed) {
		t.Fatalf("audited at = %v, want %v", record.AuditedAt, fixed)
	}
	if record.AuditNote == nil || *record.AuditNote != "retested sample 1" {
		t.Fatalf("audit note = %v", record.AuditNote)
	}
	if len(record.Samples) != 2 {
		t.Fatalf("samples = %d, want 2 (index 99 must not be created)", len(record.Samples))
	}
	if *record.Samples[0].MeasuredForce != 63.5 || !*record.Samples[0].IsPassed {
		t.Fatalf("sample 1 not overwritten: %+v", record.Samples[0])
	}
	if *record.Samples[1].MeasuredForce != 70 {
		t.Fatalf("sample 2 changed unexpectedly: %+v", record.Samples[1])
	}
}

func TestAuditRecordAllowedOnClosedOrder(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	mustCreateOrder(t, svc, "O1", false)
	mustAddRecord(t, svc, "O1", "R1")
	if err := svc.ToggleClose(ctx, "O1", true); err != nil {
		t.Fatalf("ToggleClose() error = %v", err)
	}

	err := svc.AuditRecord(ctx, "R1", AuditRecordInput{Status: int(domaincrimping.StatusFail), AuditorName: "Alice"})
	if err != nil {
		t.Fatalf("AuditRecord(closed order) error = %v", err)
	}
}

func TestDeleteOrderBlockedByPassedRecord(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	mustCreateOrder(t, svc, "O1", false)
	mustAddRecord(t, svc, "O1", "R1")
	if err := svc.AuditRecord(ctx, "R1", AuditRecordInput{Status: int(domaincrimping.StatusPass), AuditorName: "Alice"}); err != nil {
		t.Fatalf("AuditRecord() error = %v", err)
	}

	if err := svc.DeleteOrder(ctx, "O1"); !errors.Is(err, domaincrimping.ErrOrderHasPassed) {
		t.Fatalf("DeleteOrder(passed) error = %v, want ErrOrderHasPassed", err)
	}
	if _, err := svc.GetOrder(ctx, "O1"); err != nil {
		t.Fatalf("order vanished after rejected delete: %v", err)
	}
}

func TestDeleteOrderCascades(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	mustCreateOrder(t, svc, "O1", false)
	mustAddRecord(t, svc, "O1", "R1", ports.TerminalSample{SampleIndex: 1})
	if err := svc.AuditRecord(ctx, "R1", AuditRecordInput{Status: int(domaincrimping.StatusFail), AuditorName: "Alice"}); err != nil {
		t.Fatalf("AuditRecord() error = %v", err)
	}

	if err := svc.DeleteOrder(ctx, "O1"); err != nil {
		t.Fatalf("DeleteOrder() error = %v", err)
	}
	if _, err := svc.GetOrder(ctx, "O1"); !errors.Is(err, domaincrimping.ErrOrderNotFound) {
		t.Fatalf("GetOrder() after delete error = %v", err)
	}

	// Unknown order id deletes are a success no-op.
	if err := svc.DeleteOrder(ctx, "O1"); err != nil {
		t.Fatalf("DeleteOrder(unknown) error = %v", err)
	}
}

func TestDeleteRecordThenDeleteOrder(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	mustCreateOrder(t, svc, "O1", false)
	mustAddRecord(t, svc, "O1", "R1")
	if err := svc.AuditRecord(ctx, "R1", AuditRecordInput{Status: int(domaincrimping.StatusPass), AuditorName: "Alice"}); err != nil {
		t.Fatalf("AuditRecord() error = %v", err)
	}

	if err := svc.DeleteRecord(ctx, "R1"); err != nil {
		t.Fatalf("DeleteRecord() error = %v", err)
	}
	// With the pass record gone the order is deletable again.
	if err := svc.DeleteOrder(ctx, "O1"); err != nil {
		t.Fatalf("DeleteOrder() after record delete error = %v", err)
	}
}

func TestListOrdersByCreatorBlankID(t *testing.T) {
	svc := setupService(t)
	mustCreateOrder(t, svc, "O1", false)

	orders, err := svc.ListOrdersByCreator(context.Background(), "   ", true)
	if err != nil {
		t.Fatalf("ListOrdersByCreator(blank) error = %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("ListOrdersByCreator(blank) = %v, want empty non-nil slice", orders)
	}
}

func TestToggleCloseUnknownOrder(t *testing.T) {
	svc := setupService(t)

	if err := svc.ToggleClose(context.Background(), "missing", true); !errors.Is(err, domaincrimping.ErrOrderNotFound) {
		t.Fatalf("ToggleClose(unknown) error = %v, want ErrOrderNotFound", err)
	}
}

func TestUpdateToolNoValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	mustCreateOrder(t, svc, "O1", false)

	if err := svc.UpdateToolNo(ctx, "O1", "  "); !errors.Is(err, domaincrimping.ErrToolNoRequired) {
		t.Fatalf("UpdateToolNo(blank) error = %v, want ErrToolNoRequired", err)
	}
	if err := svc.UpdateToolNo(ctx, "O1", "T7"); err != nil {
		t.Fatalf("UpdateToolNo() error = %v", err)
	}

	order, err := svc.GetOrder(ctx, "O1")
	if err != nil {
		t.Fatalf("GetOrder() error = %v", err)
	}
	if order.ToolNo == nil || *order.ToolNo != "T7" {
		t.Fatalf("tool no = %v, want T7", order.ToolNo)
	}
}

func TestUpdateOrderValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	mustCreateOrder(t, svc, "O1", false)

	if err := svc.UpdateOrder(ctx, " ", ports.ProductionOrder{ProductionOrderNo: "PN"}); !errors.Is(err, domaincrimping.ErrOrderIDRequired) {
		t.Fatalf("UpdateOrder(blank id) error = %v, want ErrOrderIDRequired", err)
	}
	if err := svc.UpdateOrder(ctx, "O1", ports.ProductionOrder{}); !errors.Is(err, domaincrimping.ErrOrderNoRequired) {
		t.Fatalf("UpdateOrder(no order no) error = %v, want ErrOrderNoRequired", err)
	}

	if err := svc.UpdateOrder(ctx, "O1", ports.ProductionOrder{
		ProductionOrderNo: "PN-NEW",
		ProductModel:      strptr("M2"),
	}); err != nil {
		t.Fatalf("UpdateOrder() error = %v", err)
	}

	order, err := svc.GetOrder(ctx, "O1")
	if err != nil {
		t.Fatalf("GetOrder() error = %v", err)
	}
	if order.ProductionOrderNo != "PN-NEW" {
		t.Fatalf("order no = %q", order.ProductionOrderNo)
	}
	if order.ProductModel == nil || *order.ProductModel != "M2" {
		t.Fatalf("product model = %v", order.ProductModel)
	}
}
