package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/windward-offshore/windward-go/internal/application/orchestrator"
)

// RunRecord is the read-side view of a persisted run with its children
type RunRecord struct {
	Run          RunModel
	Actions      []ActionModel
	Designs      []DesignResultModel
	CapexEntries []CapexEntryModel
	PhaseErrors  []PhaseErrorModel
}

// GormRunRepository persists completed runs using GORM
type GormRunRepository struct {
	db *gorm.DB
}

// NewGormRunRepository creates a new GORM run repository
func NewGormRunRepository(db *gorm.DB) *GormRunRepository {
	return &GormRunRepository{db: db}
}

// Save persists a run result and all of its detail rows in one transaction
func (r *GormRunRepository) Save(ctx context.Context, result *orchestrator.RunResult, scenarioName string) error {
	run := RunModel{
		ID:                result.RunID,
		ScenarioName:      scenarioName,
		NumTurbines:       result.Params.Plant.NumTurbines,
		CapacityMW:        result.Params.CapacityMW(),
		TotalCapex:        result.TotalCapex(),
		CapexPerKW:        result.TotalCapex() / result.Params.CapacityKW(),
		InstallationHours: result.InstallationHours,
		CreatedAt:         time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return fmt.Errorf("failed to create run: %w", err)
		}

		if result.Ledger != nil {
			for _, a := range result.Ledger.Actions() {
				model := ActionModel{
					RunID:      result.RunID,
					Agent:      a.Agent(),
					Name:       a.Name(),
					Phase:      a.Phase(),
					Location:   a.Location(),
					StartHour:  a.Start(),
					Duration:   a.Duration(),
					Cost:       a.Cost(),
					Multiplier: a.Multiplier(),
				}
				if err := tx.Create(&model).Error; err != nil {
					return fmt.Errorf("failed to create action: %w", err)
				}
			}
		}

		for _, component := range result.Designs.Components() {
			d, _ := result.Designs.Get(component)
			model, err := designToModel(result.RunID, component, d.Mass, d.UnitCost, d.Units, d.SystemCost, d.Attributes, d.Labels)
			if err != nil {
				return err
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to create design result: %w", err)
			}
		}

		for _, category := range result.Breakdown.Categories() {
			value, _ := result.Breakdown.Value(category)
			model := CapexEntryModel{RunID: result.RunID, Category: string(category), Value: value}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create capex entry: %w", err)
			}
		}
		for _, category := range result.Breakdown.AbsentCategories() {
			reason, _ := result.Breakdown.AbsentReason(category)
			model := CapexEntryModel{
				RunID:    result.RunID,
				Category: string(category),
				Absent:   true,
				Reason:   reason,
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create capex entry: %w", err)
			}
		}

		for _, pe := range result.PhaseErrors {
			model := PhaseErrorModel{RunID: result.RunID, Phase: pe.Phase, Message: pe.Err.Error()}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create phase error: %w", err)
			}
		}

		return nil
	})
}

// FindByID retrieves a persisted run with all detail rows
func (r *GormRunRepository) FindByID(ctx context.Context, runID string) (*RunRecord, error) {
	var record RunRecord

	result := r.db.WithContext(ctx).Where("id = ?", runID).First(&record.Run)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("run %s not found", runID)
		}
		return nil, fmt.Errorf("failed to find run: %w", result.Error)
	}

	if err := r.db.WithContext(ctx).Where("run_id = ?", runID).Order("start_hour, id").Find(&record.Actions).Error; err != nil {
		return nil, fmt.Errorf("failed to load actions: %w", err)
	}
	if err := r.db.WithContext(ctx).Where("run_id = ?", runID).Find(&record.Designs).Error; err != nil {
		return nil, fmt.Errorf("failed to load design results: %w", err)
	}
	if err := r.db.WithContext(ctx).Where("run_id = ?", runID).Find(&record.CapexEntries).Error; err != nil {
		return nil, fmt.Errorf("failed to load capex entries: %w", err)
	}
	if err := r.db.WithContext(ctx).Where("run_id = ?", runID).Find(&record.PhaseErrors).Error; err != nil {
		return nil, fmt.Errorf("failed to load phase errors: %w", err)
	}

	return &record, nil
}

// List retrieves recent runs, newest first
func (r *GormRunRepository) List(ctx context.Context, limit int) ([]RunModel, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var runs []RunModel
	if err := query.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// designToModel converts a design result to its database model
func designToModel(runID, component string, mass, unitCost float64, units int, systemCost float64, attributes map[string]float64, labels map[string]string) (*DesignResultModel, error) {
	var attrJSON, labelJSON string
	if attributes != nil {
		bytes, err := json.Marshal(attributes)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal attributes: %w", err)
		}
		attrJSON = string(bytes)
	}
	if labels != nil {
		bytes, err := json.Marshal(labels)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal labels: %w", err)
		}
		labelJSON = string(bytes)
	}

	return &DesignResultModel{
		RunID:      runID,
		Component:  component,
		Mass:       mass,
		UnitCost:   unitCost,
		Units:      units,
		SystemCost: systemCost,
		Attributes: attrJSON,
		Labels:     labelJSON,
	}, nil
}
