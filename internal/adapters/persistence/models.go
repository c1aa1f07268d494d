package persistence

import "time"

// RunModel represents the runs table
type RunModel struct {
	ID                string    `gorm:"column:id;primaryKey;not null"`
	ScenarioName      string    `gorm:"column:scenario_name"`
	NumTurbines       int       `gorm:"column:num_turbines;not null"`
	CapacityMW        float64   `gorm:"column:capacity_mw;not null"`
	TotalCapex        float64   `gorm:"column:total_capex;not null"`
	CapexPerKW        float64   `gorm:"column:capex_per_kw;not null"`
	InstallationHours float64   `gorm:"column:installation_hours;not null"`
	CreatedAt         time.Time `gorm:"column:created_at;not null"`
}

func (RunModel) TableName() string {
	return "runs"
}

// ActionModel represents the actions table
type ActionModel struct {
	ID         int      `gorm:"column:id;primaryKey;autoIncrement"`
	RunID      string   `gorm:"column:run_id;not null;index"`
	Run        *RunModel `gorm:"foreignKey:RunID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Agent      string   `gorm:"column:agent"`
	Name       string   `gorm:"column:name;not null"`
	Phase      string   `gorm:"column:phase;not null"`
	Location   string   `gorm:"column:location"`
	StartHour  float64  `gorm:"column:start_hour;not null"`
	Duration   float64  `gorm:"column:duration;not null"`
	Cost       float64  `gorm:"column:cost;not null"`
	Multiplier float64  `gorm:"column:multiplier;not null;default:1"`
}

func (ActionModel) TableName() string {
	return "actions"
}

// DesignResultModel represents the design_results table
type DesignResultModel struct {
	ID         int      `gorm:"column:id;primaryKey;autoIncrement"`
	RunID      string   `gorm:"column:run_id;not null;index"`
	Run        *RunModel `gorm:"foreignKey:RunID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Component  string   `gorm:"column:component;not null"`
	Mass       float64  `gorm:"column:mass"`
	UnitCost   float64  `gorm:"column:unit_cost"`
	Units      int      `gorm:"column:units"`
	SystemCost float64  `gorm:"column:system_cost;not null"`
	Attributes string   `gorm:"column:attributes;type:text"` // JSON as text
	Labels     string   `gorm:"column:labels;type:text"`     // JSON as text
}

func (DesignResultModel) TableName() string {
	return "design_results"
}

// CapexEntryModel represents the capex_entries table
type CapexEntryModel struct {
	ID       int      `gorm:"column:id;primaryKey;autoIncrement"`
	RunID    string   `gorm:"column:run_id;not null;index"`
	Run      *RunModel `gorm:"foreignKey:RunID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Category string   `gorm:"column:category;not null"`
	Value    float64  `gorm:"column:value"`
	Absent   bool     `gorm:"column:absent;not null;default:false"`
	Reason   string   `gorm:"column:reason"`
}

func (CapexEntryModel) TableName() string {
	return "capex_entries"
}

// PhaseErrorModel represents the phase_errors table
type PhaseErrorModel struct {
	ID      int      `gorm:"column:id;primaryKey;autoIncrement"`
	RunID   string   `gorm:"column:run_id;not null;index"`
	Run     *RunModel `gorm:"foreignKey:RunID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Phase   string   `gorm:"column:phase;not null"`
	Message string   `gorm:"column:message;type:text;not null"`
}

func (PhaseErrorModel) TableName() string {
	return "phase_errors"
}
