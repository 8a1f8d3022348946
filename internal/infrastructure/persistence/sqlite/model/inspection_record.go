package model

import "time"

type InspectionRecord struct {
	ID            string     `gorm:"column:id;primaryKey"`
	OrderID       string     `gorm:"column:order_id;type:text;not null;index"`
	Type          *string    `gorm:"column:type;type:text"`
	SubmitterName *string    `gorm:"column:submitter_name;type:text"`
	SubmittedAt   *time.Time `gorm:"column:submitted_at"`
	Status        int        `gorm:"column:status;not null;default:0"`
	AuditorName   *string    `gorm:"column:auditor_name;type:text"`
	AuditedAt     *time.Time `gorm:"column:audited_at"`
	AuditNote     *string    `gorm:"column:audit_note;type:text"`
}

func (InspectionRecord) TableName() string {
	return "inspection_records"
}
