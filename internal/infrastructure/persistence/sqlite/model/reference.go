package model

type CrimpingTool struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Model string `gorm:"column:model;type:text;not null"`
	Type  string `gorm:"column:type;type:text;not null"`
}

func (CrimpingTool) TableName() string {
	return "crimping_tools"
}

type TerminalSpec struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement"`
	MaterialCode string  `gorm:"column:material_code;type:text;not null"`
	Name         string  `gorm:"column:name;type:text;not null"`
	Description  *string `gorm:"column:description;type:text"`
	Method       int     `gorm:"column:method;not null;default:0"`
}

func (TerminalSpec) TableName() string {
	return "terminal_specs"
}

type WireSpec struct {
	ID          string  `gorm:"column:id;primaryKey"`
	DisplayName string  `gorm:"column:display_name;type:text;not null"`
	SectionArea float64 `gorm:"column:section_area;not null;default:0"`
}

func (WireSpec) TableName() string {
	return "wire_specs"
}

type PullForceStandard struct {
	ID            int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Method        int     `gorm:"column:method;not null;default:0"`
	SectionArea   float64 `gorm:"column:section_area;not null;default:0"`
	StandardValue int     `gorm:"column:standard_value;not null;default:0"`
}

func (PullForceStandard) TableName() string {
	return "pull_force_standards"
}
