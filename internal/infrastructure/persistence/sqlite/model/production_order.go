package model

import "time"

type ProductionOrder struct {
	ID                string    `gorm:"column:id;primaryKey"`
	ProductionOrderNo string    `gorm:"column:production_order_no;type:text;not null"`
	ProductName       *string   `gorm:"column:product_name;type:text"`
	ProductModel      *string   `gorm:"column:product_model;type:text"`
	ToolNo            *string   `gorm:"column:tool_no;type:text"`
	TerminalSpecID    *string   `gorm:"column:terminal_spec_id;type:text"`
	WireSpecID        *string   `gorm:"column:wire_spec_id;type:text"`
	StandardPullForce *float64  `gorm:"column:standard_pull_force"`
	CreatorName       *string   `gorm:"column:creator_name;type:text"`
	CreatorEmployeeID *string   `gorm:"column:creator_employee_id;type:text;index"`
	IsClosed          bool      `gorm:"column:is_closed;not null;default:0"`
	CreatedAt         time.Time `gorm:"column:created_at;not null"`
}

func (ProductionOrder) TableName() string {
	return "production_orders"
}
