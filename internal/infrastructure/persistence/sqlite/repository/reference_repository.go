package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"crimpqc/internal/errs"
	"crimpqc/internal/infrastructure/persistence/sqlite/model"
	"crimpqc/internal/ports"
)

type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
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

func (r *ReferenceRepository) ListTerminals(ctx context.Context) ([]ports.TerminalSpec, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.TerminalSpec
	if err := db.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query terminal specs")
	}

	items := make([]ports.TerminalSpec, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.TerminalSpec{
			ID:           row.ID,
			MaterialCode: row.MaterialCode,
			Name:         row.Name,
			Description:  row.Description,
			Method:       row.Method,
		})
	}
	return items, nil
}

func (r *ReferenceRepository) ListWires(ctx context.Context) ([]ports.WireSpec, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.WireSpec
	if err := db.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query wire specs")
	}

	items := make([]ports.WireSpec, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.WireSpec{
			ID:          row.ID,
			DisplayName: row.DisplayName,
			SectionArea: row.SectionArea,
		})
	}
	return items, nil
}

func (r *ReferenceRepository) ListTools(ctx context.Context) ([]ports.CrimpingTool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.CrimpingTool
	if err := db.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query crimping tools")
	}

	items := make([]ports.CrimpingTool, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.CrimpingTool{
			ID:    row.ID,
			Model: row.Model,
			Type:  row.Type,
		})
	}
	return items, nil
}

func (r *ReferenceRepository) ListStandards(ctx context.Context) ([]ports.PullForceStandard, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.PullForceStandard
	if err := db.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query pull force standards")
	}

	items := make([]ports.PullForceStandard, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.PullForceStandard{
			ID:            row.ID,
			Method:        row.Method,
			SectionArea:   row.SectionArea,
			StandardValue: row.StandardValue,
		})
	}
	return items, nil
}

func (r *ReferenceRepository) UpsertTerminals(ctx context.Context, items []ports.TerminalSpec) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		row := model.TerminalSpec{
			ID:           item.ID,
			MaterialCode: item.MaterialCode,
			Name:         item.Name,
			Description:  item.Description,
			Method:       item.Method,
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			return errs.Wrapf(err, "upsert terminal spec %d", item.ID)
		}
	}
	return nil
}

func (r *ReferenceRepository) UpsertWires(ctx context.Context, items []ports.WireSpec) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		row := model.WireSpec{
			ID:          item.ID,
			DisplayName: item.DisplayName,
			SectionArea: item.SectionArea,
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			return errs.Wrapf(err, "upsert wire spec %q", item.ID)
		}
	}
	return nil
}

func (r *ReferenceRepository) UpsertTools(ctx context.Context, items []ports.CrimpingTool) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		row := model.CrimpingTool{
			ID:    item.ID,
			Model: item.Model,
			Type:  item.Type,
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			return errs.Wrapf(err, "upsert crimping tool %d", item.ID)
		}
	}
	return nil
}

func (r *ReferenceRepository) UpsertStandards(ctx context.Context, items []ports.PullForceStandard) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		row := model.PullForceStandard{
			ID:            item.ID,
			Method:        item.Method,
			SectionArea:   item.SectionArea,
			StandardValue: item.StandardValue,
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			return errs.Wrapf(err, "upsert pull force standard %d", item.ID)
		}
	}
	return nil
}
