package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"crimpqc/internal/domain/crimping"
	"crimpqc/internal/errs"
	"crimpqc/internal/infrastructure/persistence/sqlite/model"
	"crimpqc/internal/ports"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

func (r *OrderRepository) ListOrders(ctx context.Context) ([]ports.ProductionOrder, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.ProductionOrder
	if err := db.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query orders")
	}
	return r.assembleTrees(db, rows)
}

func (r *OrderRepository) GetOrder(ctx context.Context, id string) (ports.ProductionOrder, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.ProductionOrder{}, err
	}

	row, err := getOrderRow(db, id)
	if err != nil {
		return ports.ProductionOrder{}, err
	}

	orders, err := r.assembleTrees(db, []model.ProductionOrder{row})
	if err != nil {
		return ports.ProductionOrder{}, err
	}
	return orders[0], nil
}

func (r *OrderRepository) ListOrdersByCreator(ctx context.Context, employeeID string, includeClosed bool) ([]ports.ProductionOrder, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.ProductionOrder{}).
		Where("creator_employee_id = ?", strings.TrimSpace(employeeID))
	if !includeClosed {
		query = query.Where("is_closed = ?", false)
	}

	var rows []model.ProductionOrder
	if err := query.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query orders by creator")
	}
	return r.assembleTrees(db, rows)
}

// GetOrderHeader reads the order row without its record tree.
func (r *OrderRepository) GetOrderHeader(ctx context.Context, id string) (ports.ProductionOrder, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.ProductionOrder{}, err
	}

	row, err := getOrderRow(db, id)
	if err != nil {
		return ports.ProductionOrder{}, err
	}
	return mapOrder(row, nil), nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order ports.ProductionOrder) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	if err := db.Create(orderToRow(order)).Error; err != nil {
		return errs.Wrap(err, "insert order")
	}

	for _, record := range order.Records {
		record.OrderID = order.ID
		if err := createRecordRows(db, record); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) UpdateOrderParams(ctx context.Context, params ports.OrderParams) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Model(&model.ProductionOrder{}).
		Where("id = ?", params.ID).
		Select("production_order_no", "product_name", "product_model", "tool_no",
			"terminal_spec_id", "wire_spec_id", "standard_pull_force").
		Updates(model.ProductionOrder{
			ProductionOrderNo: params.ProductionOrderNo,
			ProductName:       params.ProductName,
			ProductModel:      params.ProductModel,
			ToolNo:            params.ToolNo,
			TerminalSpecID:    params.TerminalSpecID,
			WireSpecID:        params.WireSpecID,
			StandardPullForce: params.StandardPullForce,
		})
	if res.Error != nil {
		return errs.Wrap(res.Error, "update order params")
	}
	if res.RowsAffected == 0 {
		return crimping.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) SetOrderClosed(ctx context.Context, id string, closed bool) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Model(&model.ProductionOrder{}).
		Where("id = ?", id).
		Update("is_closed", closed)
	if res.Error != nil {
		return errs.Wrap(res.Error, "update order closed flag")
	}
	if res.RowsAffected == 0 {
		return crimping.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) SetOrderToolNo(ctx context.Context, id string, toolNo string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Model(&model.ProductionOrder{}).
		Where("id = ?", id).
		Update("tool_no", toolNo)
	if res.Error != nil {
		return errs.Wrap(res.Error, "update order tool no")
	}
	if res.RowsAffected == 0 {
		return crimping.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) HasPassedRecords(ctx context.Context, orderID string) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	var count int64
	if err := db.Model(&model.InspectionRecord{}).
		Where("order_id = ? AND status = ?", orderID, int(crimping.StatusPass)).
		Count(&count).Error; err != nil {
		return false, errs.Wrap(err, "count passed records")
	}
	return count > 0, nil
}

// DeleteOrder removes the order with its records and samples. Unknown id
// is a no-op.
func (r *OrderRepository) DeleteOrder(ctx context.Context, id string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	recordIDs := db.Model(&model.InspectionRecord{}).
		Select("id").
		Where("order_id = ?", id)
	if err := db.Where("inspection_record_id IN (?)", recordIDs).
		Delete(&model.TerminalSample{}).Error; err != nil {
		return errs.Wrap(err, "delete order samples")
	}
	if err := db.Where("order_id = ?", id).
		Delete(&model.InspectionRecord{}).Error; err != nil {
		return errs.Wrap(err, "delete order records")
	}
	if err := db.Where("id = ?", id).
		Delete(&model.ProductionOrder{}).Error; err != nil {
		return errs.Wrap(err, "delete order")
	}
	return nil
}

func (r *OrderRepository) CreateRecord(ctx context.Context, record ports.InspectionRecord) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}
	return createRecordRows(db, record)
}

func (r *OrderRepository) GetRecord(ctx context.Context, id string) (ports.InspectionRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.InspectionRecord{}, err
	}

	var row model.InspectionRecord
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.InspectionRecord{}, crimping.ErrRecordNotFound
		}
		return ports.InspectionRecord{}, errs.Wrap(err, "query record")
	}

	samples, err := listSampleRows(db, []string{row.ID})
	if err != nil {
		return ports.InspectionRecord{}, err
	}
	return mapRecord(row, samples[row.ID]), nil
}

func (r *OrderRepository) ApplyRecordAudit(ctx context.Context, audit ports.RecordAudit) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Model(&model.InspectionRecord{}).
		Where("id = ?", audit.RecordID).
		Select("status", "auditor_name", "audited_at", "audit_note").
		Updates(model.InspectionRecord{
			Status:      audit.Status,
			AuditorName: &audit.AuditorName,
			AuditedAt:   &audit.AuditedAt,
			AuditNote:   audit.AuditNote,
		})
	if res.Error != nil {
		return errs.Wrap(res.Error, "update record audit")
	}
	if res.RowsAffected == 0 {
		return crimping.ErrRecordNotFound
	}
	return nil
}

// OverwriteSampleByIndex updates the matching sample and reports whether
// one existed. Unmatched indices are the caller's business to ignore.
func (r *OrderRepository) OverwriteSampleByIndex(ctx context.Context, recordID string, sampleIndex int, measuredForce float64, isPassed bool) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	res := db.Model(&model.TerminalSample{}).
		Where("inspection_record_id = ? AND sample_index = ?", recordID, sampleIndex).
		Select("measured_force", "is_passed").
		Updates(model.TerminalSample{
			MeasuredForce: &measuredForce,
			IsPassed:      &isPassed,
		})
	if res.Error != nil {
		return false, errs.Wrap(res.Error, "update sample")
	}
	return res.RowsAffected > 0, nil
}

// DeleteRecord removes the record with its samples. Unknown id is a no-op.
func (r *OrderRepository) DeleteRecord(ctx context.Context, id string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	if err := db.Where("inspection_record_id = ?", id).
		Delete(&model.TerminalSample{}).Error; err != nil {
		return errs.Wrap(err, "delete record samples")
	}
	if err := db.Where("id = ?", id).
		Delete(&model.InspectionRecord{}).Error; err != nil {
		return errs.Wrap(err, "delete record")
	}
	return nil
}

// assembleTrees loads records and samples for the given order rows in two
// batched queries and stitches the tree together.
func (r *OrderRepository) assembleTrees(db *gorm.DB, rows []model.ProductionOrder) ([]ports.ProductionOrder, error) {
	orders := make([]ports.ProductionOrder, 0, len(rows))
	if len(rows) == 0 {
		return orders, nil
	}

	orderIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		orderIDs = append(orderIDs, row.ID)
	}

	var recordRows []model.InspectionRecord
	if err := db.Where("order_id IN ?", orderIDs).
		Order("submitted_at asc").
		Find(&recordRows).Error; err != nil {
		return nil, errs.Wrap(err, "query records")
	}

	recordIDs := make([]string, 0, len(recordRows))
	for _, row := range recordRows {
		recordIDs = append(recordIDs, row.ID)
	}

	samplesByRecord, err := listSampleRows(db, recordIDs)
	if err != nil {
		return nil, err
	}

	recordsByOrder := make(map[string][]ports.InspectionRecord, len(rows))
	for _, row := range recordRows {
		recordsByOrder[row.OrderID] = append(recordsByOrder[row.OrderID], mapRecord(row, samplesByRecord[row.ID]))
	}

	for _, row := range rows {
		orders = append(orders, mapOrder(row, recordsByOrder[row.ID]))
	}
	return orders, nil
}

func getOrderRow(db *gorm.DB, id string) (model.ProductionOrder, error) {
	var row model.ProductionOrder
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ProductionOrder{}, crimping.ErrOrderNotFound
		}
		return model.ProductionOrder{}, errs.Wrap(err, "query order")
	}
	return row, nil
}

func createRecordRows(db *gorm.DB, record ports.InspectionRecord) error {
	if err := db.Create(recordToRow(record)).Error; err != nil {
		return errs.Wrap(err, "insert record")
	}

	for _, sample := range record.Samples {
		row := sampleToRow(sample)
		row.ID = 0
		row.InspectionRecordID = record.ID
		if err := db.Create(&row).Error; err != nil {
			return errs.Wrap(err, "insert sample")
		}
	}
	return nil
}

func listSampleRows(db *gorm.DB, recordIDs []string) (map[string][]ports.TerminalSample, error) {
	byRecord := make(map[string][]ports.TerminalSample, len(recordIDs))
	if len(recordIDs) == 0 {
		return byRecord, nil
	}

	var rows []model.TerminalSample
	if err := db.Where("inspection_record_id IN ?", recordIDs).
		Order("sample_index asc").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query samples")
	}

	for _, row := range rows {
		byRecord[row.InspectionRecordID] = append(byRecord[row.InspectionRecordID], mapSample(row))
	}
	return byRecord, nil
}

func mapOrder(row model.ProductionOrder, records []ports.InspectionRecord) ports.ProductionOrder {
	if records == nil {
		records = []ports.InspectionRecord{}
	}
	return ports.ProductionOrder{
		ID:                row.ID,
		ProductionOrderNo: row.ProductionOrderNo,
		ProductName:       row.ProductName,
		ProductModel:      row.ProductModel,
		ToolNo:            row.ToolNo,
		TerminalSpecID:    row.TerminalSpecID,
		WireSpecID:        row.WireSpecID,
		StandardPullForce: row.StandardPullForce,
		CreatorName:       row.CreatorName,
		CreatorEmployeeID: row.CreatorEmployeeID,
		IsClosed:          row.IsClosed,
		CreatedAt:         row.CreatedAt,
		Records:           records,
	}
}

func orderToRow(order ports.ProductionOrder) *model.ProductionOrder {
	return &model.ProductionOrder{
		ID:                order.ID,
		ProductionOrderNo: order.ProductionOrderNo,
		ProductName:       order.ProductName,
		ProductModel:      order.ProductModel,
		ToolNo:            order.ToolNo,
		TerminalSpecID:    order.TerminalSpecID,
		WireSpecID:        order.WireSpecID,
		StandardPullForce: order.StandardPullForce,
		CreatorName:       order.CreatorName,
		CreatorEmployeeID: order.CreatorEmployeeID,
		IsClosed:          order.IsClosed,
		CreatedAt:         order.CreatedAt,
	}
}

func mapRecord(row model.InspectionRecord, samples []ports.TerminalSample) ports.InspectionRecord {
	if samples == nil {
		samples = []ports.TerminalSample{}
	}
	return ports.InspectionRecord{
		ID:            row.ID,
		OrderID:       row.OrderID,
		Type:          row.Type,
		SubmitterName: row.SubmitterName,
		SubmittedAt:   row.SubmittedAt,
		Status:        row.Status,
		AuditorName:   row.AuditorName,
		AuditedAt:     row.AuditedAt,
		AuditNote:     row.AuditNote,
		Samples:       samples,
	}
}

func recordToRow(record ports.InspectionRecord) *model.InspectionRecord {
	return &model.InspectionRecord{
		ID:            record.ID,
		OrderID:       record.OrderID,
		Type:          record.Type,
		SubmitterName: record.SubmitterName,
		SubmittedAt:   record.SubmittedAt,
		Status:        record.Status,
		AuditorName:   record.AuditorName,
		AuditedAt:     record.AuditedAt,
		AuditNote:     record.AuditNote,
	}
}

func mapSample(row model.TerminalSample) ports.TerminalSample {
	return ports.TerminalSample{
		ID:                 row.ID,
		InspectionRecordID: row.InspectionRecordID,
		SampleIndex:        row.SampleIndex,
		MeasuredForce:      row.MeasuredForce,
		IsPassed:           row.IsPassed,
	}
}

func sampleToRow(sample ports.TerminalSample) model.TerminalSample {
	return model.TerminalSample{
		ID:                 sample.ID,
		InspectionRecordID: sample.InspectionRecordID,
		SampleIndex:        sample.SampleIndex,
		MeasuredForce:      sample.MeasuredForce,
		IsPassed:           sample.IsPassed,
	}
}
