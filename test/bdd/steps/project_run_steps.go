package steps

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/application/install"
	"github.com/windward-offshore/windward-go/internal/application/orchestrator"
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/resource"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

type projectRunContext struct {
	params        project.Params
	pool          *resource.Pool
	designPhases  []design.Phase
	installPhases []install.Phase
	result        *orchestrator.RunResult
	validationErr error
}

func (pc *projectRunContext) reset() {
	pc.params = project.Params{}
	pc.pool = resource.NewPool()
	pc.designPhases = nil
	pc.installPhases = nil
	pc.result = nil
	pc.validationErr = nil
}

// Setup steps

func (pc *projectRunContext) aPlantOfTurbines(numTurbines, ratedMW int) error {
	pc.params = project.Params{
		Site: project.Site{
			Depth:           25,
			DistanceToShore: 60,
			DistanceToPort:  50,
			MeanWindspeed:   9.5,
		},
		Plant: project.Plant{
			NumTurbines:        numTurbines,
			TurbineSpacing:     7,
			RowSpacing:         7,
			SubstationDistance: 1,
		},
		Turbine: project.Turbine{
			Name:           "SWT-6MW-154",
			RatedPowerMW:   float64(ratedMW),
			RotorDiameter:  154,
			HubHeight:      110,
			RatedWindspeed: 13,
		},
	}
	return nil
}

func (pc *projectRunContext) anInstallationVessel(name string, dayRate int) error {
	return pc.pool.Register(name, resource.Spec{
		Name:             name,
		DayRate:          float64(dayRate),
		IdleDayRate:      float64(dayRate) / 2,
		TransitSpeed:     10,
		MobilizationDays: 7,
	})
}

func (pc *projectRunContext) theSiteHasNoMeanWindspeed() error {
	pc.params.Site.MeanWindspeed = 0
	return nil
}

func (pc *projectRunContext) theDesignPhase(name string) error {
	phase, err := design.NewPhase(name, design.Options{})
	if err != nil {
		return err
	}
	pc.designPhases = append(pc.designPhases, phase)
	return nil
}

func (pc *projectRunContext) theInstallationPhaseUsingVessel(name, vessel string) error {
	phase, err := install.NewPhase(name, install.Options{
		Monopile: install.MonopileInstallConfig{Vessel: vessel},
		Turbine:  install.TurbineInstallConfig{Vessel: vessel},
	})
	if err != nil {
		return err
	}
	pc.installPhases = append(pc.installPhases, phase)
	return nil
}

// Action steps

func (pc *projectRunContext) newManager() (*orchestrator.Manager, error) {
	return orchestrator.NewManager(orchestrator.Config{
		Params:        pc.params,
		DesignPhases:  pc.designPhases,
		InstallPhases: pc.installPhases,
		Pool:          pc.pool,
	})
}

func (pc *projectRunContext) iRunTheProject() error {
	manager, err := pc.newManager()
	if err != nil {
		return err
	}
	pc.result, err = manager.Run(context.Background())
	return err
}

func (pc *projectRunContext) iValidateTheProject() error {
	manager, err := pc.newManager()
	if err != nil {
		return err
	}
	pc.validationErr = manager.Validate()
	return nil
}

// Assertion steps

func (pc *projectRunContext) theRunCompletesWithoutPhaseErrors() error {
	if pc.result == nil {
		return fmt.Errorf("no run result recorded")
	}
	if len(pc.result.PhaseErrors) > 0 {
		return fmt.Errorf("expected no phase errors, got %d: %v", len(pc.result.PhaseErrors), pc.result.PhaseErrors)
	}
	return nil
}

func (pc *projectRunContext) theRunRecordsPhaseErrors(count int) error {
	if pc.result == nil {
		return fmt.Errorf("no run result recorded")
	}
	if len(pc.result.PhaseErrors) != count {
		return fmt.Errorf("expected %d phase errors, got %d: %v", count, len(pc.result.PhaseErrors), pc.result.PhaseErrors)
	}
	return nil
}

func (pc *projectRunContext) theCapexCategoryIsComputed(category string) error {
	if _, ok := pc.result.Breakdown.Value(project.Category(category)); !ok {
		return fmt.Errorf("category %q was not computed", category)
	}
	return nil
}

func (pc *projectRunContext) theCapexCategoryIsAbsent(category string) error {
	if _, ok := pc.result.Breakdown.Value(project.Category(category)); ok {
		return fmt.Errorf("category %q was computed, expected absent", category)
	}
	if _, ok := pc.result.Breakdown.AbsentReason(project.Category(category)); !ok {
		return fmt.Errorf("category %q carries no absence reason", category)
	}
	return nil
}

func (pc *projectRunContext) theCapexCategoryEqualsTheLedgerTotal(category string) error {
	value, ok := pc.result.Breakdown.Value(project.Category(category))
	if !ok {
		return fmt.Errorf("category %q was not computed", category)
	}
	if total := pc.result.Ledger.TotalCost(); value != total {
		return fmt.Errorf("category %q is %f, ledger total is %f", category, value, total)
	}
	return nil
}

func (pc *projectRunContext) theTotalCapexEqualsTheSumOfComputedCategories() error {
	var sum float64
	for _, c := range pc.result.Breakdown.Categories() {
		v, _ := pc.result.Breakdown.Value(c)
		sum += v
	}
	if math.Abs(sum-pc.result.TotalCapex()) > 1e-6 {
		return fmt.Errorf("total capex %f does not match category sum %f", pc.result.TotalCapex(), sum)
	}
	return nil
}

func (pc *projectRunContext) theInstallationTakesMoreThanHours(hours int) error {
	if pc.result.InstallationHours <= float64(hours) {
		return fmt.Errorf("installation took %f hours, expected more than %d", pc.result.InstallationHours, hours)
	}
	return nil
}

func (pc *projectRunContext) validationFailsWithADependencyError() error {
	if pc.validationErr == nil {
		return fmt.Errorf("expected validation to fail")
	}
	var depErr *shared.DependencyError
	if !errors.As(pc.validationErr, &depErr) {
		return fmt.Errorf("expected a dependency error, got %v", pc.validationErr)
	}
	return nil
}

// InitializeProjectRunScenario registers the project run step definitions
func InitializeProjectRunScenario(sc *godog.ScenarioContext) {
	pc := &projectRunContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		pc.reset()
		return ctx, nil
	})

	sc.Step(`^a plant of (\d+) turbines rated (\d+) MW$`, pc.aPlantOfTurbines)
	sc.Step(`^an installation vessel "([^"]*)" with a day rate of (\d+)$`, pc.anInstallationVessel)
	sc.Step(`^the site has no mean windspeed$`, pc.theSiteHasNoMeanWindspeed)
	sc.Step(`^the design phase "([^"]*)"$`, pc.theDesignPhase)
	sc.Step(`^the installation phase "([^"]*)" using vessel "([^"]*)"$`, pc.theInstallationPhaseUsingVessel)
	sc.Step(`^I run the project$`, pc.iRunTheProject)
	sc.Step(`^I validate the project$`, pc.iValidateTheProject)
	sc.Step(`^the run completes without phase errors$`, pc.theRunCompletesWithoutPhaseErrors)
	sc.Step(`^the run records (\d+) phase errors$`, pc.theRunRecordsPhaseErrors)
	sc.Step(`^the capex category "([^"]*)" is computed$`, pc.theCapexCategoryIsComputed)
	sc.Step(`^the capex category "([^"]*)" is absent$`, pc.theCapexCategoryIsAbsent)
	sc.Step(`^the capex category "([^"]*)" equals the ledger total$`, pc.theCapexCategoryEqualsTheLedgerTotal)
	sc.Step(`^the total capex equals the sum of the computed categories$`, pc.theTotalCapexEqualsTheSumOfComputedCategories)
	sc.Step(`^the installation takes more than (\d+) hours$`, pc.theInstallationTakesMoreThanHours)
	sc.Step(`^validation fails with a dependency error$`, pc.validationFailsWithADependencyError)
}
