package design

import (
	"math"

	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

// Component identifiers produced by MonopileDesign
const (
	ComponentMonopile        = "monopile"
	ComponentTransitionPiece = "transition_piece"
)

// MonopileConfig carries the optional sizing overrides for a fixed monopile
// substructure. Zero values select the documented defaults.
type MonopileConfig struct {
	YieldStress           float64 // Pa
	LoadFactor            float64
	MaterialFactor        float64
	PileDensity           float64 // kg/m3
	PileModulus           float64 // Pa
	SoilCoefficient       float64 // N/m3
	AirDensity            float64 // kg/m3
	WeibullScaleFactor    float64 // defaults to site mean windspeed
	WeibullShapeFactor    float64
	TurbLengthScale       float64 // m
	Airgap                float64 // m
	TPConnectionThickness float64 // m
	TPDensity             float64 // kg/m3
	TPThickness           float64 // m, defaults to pile thickness
	TPLength              float64 // m
	MonopileSteelCost     float64 // USD/t fabricated
	TPSteelCost           float64 // USD/t fabricated
	DesignCost            float64 // USD
}

func (c MonopileConfig) withDefaults() MonopileConfig {
	def := func(v *float64, d float64) {
		if *v == 0 {
			*v = d
		}
	}
	def(&c.YieldStress, 355e6)
	def(&c.LoadFactor, 1.35)
	def(&c.MaterialFactor, 1.1)
	def(&c.PileDensity, 7860)
	def(&c.PileModulus, 200e9)
	def(&c.SoilCoefficient, 4e6)
	def(&c.AirDensity, 1.225)
	def(&c.WeibullShapeFactor, 2)
	def(&c.TurbLengthScale, 340.2)
	def(&c.Airgap, 10)
	def(&c.TPDensity, 7860)
	def(&c.TPLength, 25)
	def(&c.MonopileSteelCost, 3000)
	def(&c.TPSteelCost, 4500)
	return c
}

// MonopileDesign sizes a monopile and transition piece for the 50-year
// extreme operating gust moment, following the ten-step method of Arany &
// Bhattacharya (2017). The pile diameter comes from a root solve of the
// combined yield equations; wall thickness, moment of inertia and embedment
// length follow from the diameter.
type MonopileDesign struct {
	cfg MonopileConfig
}

// NewMonopileDesign creates the phase with the given overrides
func NewMonopileDesign(cfg MonopileConfig) *MonopileDesign {
	return &MonopileDesign{cfg: cfg.withDefaults()}
}

// Name is the phase's configuration identifier
func (d *MonopileDesign) Name() string {
	return "MonopileDesign"
}

// Components lists the produced component identifiers
func (d *MonopileDesign) Components() []string {
	return []string{ComponentMonopile, ComponentTransitionPiece}
}

// Compute sizes the monopile and transition piece and prices the system
func (d *MonopileDesign) Compute(p project.Params) ([]project.DesignResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Site.MeanWindspeed <= 0 {
		return nil, shared.NewMissingInputError("site.mean_windspeed")
	}

	moment := d.fiftyYearWindMoment(p)
	diameter, err := d.solvePileDiameter(moment)
	if err != nil {
		return nil, err
	}

	thickness := pileThickness(diameter)
	inertia := pileMoment(diameter, thickness)
	embedment := d.pileEmbedmentLength(inertia)
	length := embedment + p.Site.Depth + d.cfg.Airgap
	pileMass := d.pileMass(diameter, thickness, length)

	tpThickness := d.cfg.TPThickness
	if tpThickness == 0 {
		tpThickness = thickness
	}
	tpDiameter := diameter + 2*(d.cfg.TPConnectionThickness+tpThickness)
	tpMass := d.cfg.TPDensity * (diameter + 2*d.cfg.TPConnectionThickness + tpThickness) *
		math.Pi * tpThickness * d.cfg.TPLength / tonnesPerKg

	n := p.Plant.NumTurbines
	monopile := project.DesignResult{
		Component:  ComponentMonopile,
		Mass:       pileMass,
		UnitCost:   pileMass * d.cfg.MonopileSteelCost,
		Units:      n,
		SystemCost: pileMass*d.cfg.MonopileSteelCost*float64(n) + d.cfg.DesignCost,
		Attributes: map[string]float64{
			"diameter":         diameter,
			"thickness":        thickness,
			"moment":           inertia,
			"embedment_length": embedment,
			"length":           length,
			"deck_space":       diameter * diameter,
		},
	}
	transition := project.DesignResult{
		Component:  ComponentTransitionPiece,
		Mass:       tpMass,
		UnitCost:   tpMass * d.cfg.TPSteelCost,
		Units:      n,
		SystemCost: tpMass * d.cfg.TPSteelCost * float64(n),
		Attributes: map[string]float64{
			"diameter":   tpDiameter,
			"thickness":  tpThickness,
			"length":     d.cfg.TPLength,
			"deck_space": tpDiameter * tpDiameter,
		},
	}
	return []project.DesignResult{monopile, transition}, nil
}

const tonnesPerKg = 907.185

// fiftyYearWindMoment applies the DNV-GL extreme gust methodology,
// Arany & Bhattacharya (2016) eq. 27-30.
func (d *MonopileDesign) fiftyYearWindMoment(p project.Params) float64 {
	load := d.fiftyYearWindLoad(p)
	return load * (p.Site.Depth + p.Turbine.HubHeight) * d.cfg.LoadFactor
}

func (d *MonopileDesign) fiftyYearWindLoad(p project.Params) float64 {
	sweptArea := math.Pi * math.Pow(p.Turbine.RotorDiameter/2, 2)
	ct := thrustCoefficient(p.Turbine.RatedWindspeed)
	gust := d.fiftyYearExtremeGust(p)
	v := p.Turbine.RatedWindspeed + gust
	return 0.5 * d.cfg.AirDensity * sweptArea * ct * v * v
}

func (d *MonopileDesign) fiftyYearExtremeWindspeed(meanWindspeed float64) float64 {
	scale := d.cfg.WeibullScaleFactor
	if scale == 0 {
		scale = meanWindspeed
	}
	return scale * math.Pow(-math.Log(1-math.Pow(0.98, 1.0/52596)), 1/d.cfg.WeibullShapeFactor)
}

func (d *MonopileDesign) fiftyYearExtremeGust(p project.Params) float64 {
	u50 := d.fiftyYearExtremeWindspeed(p.Site.MeanWindspeed)
	u1 := 0.8 * u50
	return math.Min(
		1.35*(u1-p.Turbine.RatedWindspeed),
		(3.3*0.11*u1)/(1+(0.1*p.Turbine.RotorDiameter)/(d.cfg.TurbLengthScale/8)),
	)
}

func thrustCoefficient(ratedWindspeed float64) float64 {
	return math.Min(3.5*(2*ratedWindspeed+3.5)/(ratedWindspeed*ratedWindspeed), 1)
}

// solvePileDiameter finds the diameter satisfying the combined yield
// equations (Arany & Bhattacharya eq. 99 & 101) by bisection. The residual is
// negative for undersized piles and grows as D^4, so a sign change is
// bracketed within [0.1, 100] m for any physical moment.
func (d *MonopileDesign) solvePileDiameter(moment float64) (float64, error) {
	if moment <= 0 {
		return 0, shared.NewDomainValidationError("wind_moment", moment, "must be positive")
	}
	a := (d.cfg.YieldStress * math.Pi) / (4 * d.cfg.MaterialFactor * moment)
	residual := func(dp float64) float64 {
		return a*math.Pow(0.99*dp-0.00635, 3)*(0.00635+0.01*dp) - dp
	}

	lo, hi := 0.1, 100.0
	if residual(lo) > 0 || residual(hi) < 0 {
		return 0, shared.NewDomainValidationError("pile_diameter", moment, "sizing equation has no root in range")
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if residual(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}

// pileThickness, Arany & Bhattacharya eq. 1
func pileThickness(diameter float64) float64 {
	return 0.00635 + diameter/100
}

// pileMoment is the pile bending moment of inertia
func pileMoment(diameter, thickness float64) float64 {
	return 0.125 * math.Pow(diameter-thickness, 3) * thickness * math.Pi
}

// pileEmbedmentLength, Arany & Bhattacharya eq. 102
func (d *MonopileDesign) pileEmbedmentLength(inertia float64) float64 {
	return 4 * math.Pow(d.cfg.PileModulus*inertia/d.cfg.SoilCoefficient, 0.2)
}

// pileMass returns the total pile mass in tonnes
func (d *MonopileDesign) pileMass(diameter, thickness, length float64) float64 {
	volume := (math.Pi / 4) * (diameter*diameter - math.Pow(diameter-thickness, 2)) * length
	return d.cfg.PileDensity * volume / tonnesPerKg
}
