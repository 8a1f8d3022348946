package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"crimpqc/internal/errs"
	"crimpqc/internal/infrastructure/persistence/sqlite/model"
	"crimpqc/internal/ports"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
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

func (r *UserRepository) FindByEmployeeID(ctx context.Context, employeeID string) (ports.User, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.User{}, err
	}

	var row model.User
	if err := db.Where("employee_id = ?", employeeID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, ports.ErrUserNotFound
		}
		return ports.User{}, errs.Wrap(err, "query user")
	}
	return mapUser(row), nil
}

func (r *UserRepository) SetToken(ctx context.Context, userID int64, token string, expireAt time.Time) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	res := db.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"token":             token,
			"token_expire_time": expireAt,
		})
	if res.Error != nil {
		return errs.Wrap(res.Error, "update user token")
	}
	if res.RowsAffected == 0 {
		return ports.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) ListSummaries(ctx context.Context) ([]ports.UserSummary, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.User
	if err := db.Order("name asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query users")
	}

	summaries := make([]ports.UserSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, ports.UserSummary{
			ID:   row.EmployeeID,
			Name: row.Name,
		})
	}
	return summaries, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user ports.User) (ports.User, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.User{}, err
	}

	row := model.User{
		Name:         user.Name,
		EmployeeID:   user.EmployeeID,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.User{}, errs.Wrap(err, "insert user")
	}
	return mapUser(row), nil
}

func mapUser(row model.User) ports.User {
	return ports.User{
		ID:              row.ID,
		Name:            row.Name,
		EmployeeID:      row.EmployeeID,
		PasswordHash:    row.PasswordHash,
		Role:            row.Role,
		Token:           row.Token,
		TokenExpireTime: row.TokenExpireTime,
	}
}
