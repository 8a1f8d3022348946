package model

import "time"

type User struct {
	ID              int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Name            string     `gorm:"column:name;type:text;not null"`
	EmployeeID      string     `gorm:"column:employee_id;type:text;not null;uniqueIndex"`
	PasswordHash    string     `gorm:"column:password_hash;type:text;not null"`
	Role            int        `gorm:"column:role;not null;default:0"`
	Token           *string    `gorm:"column:token;type:text"`
	TokenExpireTime *time.Time `gorm:"column:token_expire_time"`
}

func (User) TableName() string {
	return "users"
}
