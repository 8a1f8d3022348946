package model

type TerminalSample struct {
	ID                 uint64   `gorm:"column:id;primaryKey;autoIncrement"`
	InspectionRecordID string   `gorm:"column:inspection_record_id;type:text;not null;index"`
	SampleIndex        int      `gorm:"column:sample_index;not null"`
	MeasuredForce      *float64 `gorm:"column:measured_force"`
	IsPassed           *bool    `gorm:"column:is_passed"`
}

func (TerminalSample) TableName() string {
	return "terminal_samples"
}
