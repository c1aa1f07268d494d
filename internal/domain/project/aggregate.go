package project

import "sort"

// Category groups capital expenditure for reporting
type Category string

const (
	CategoryTurbine            Category = "Turbine"
	CategorySubstructure       Category = "Substructure"
	CategoryArrayCableSystem   Category = "Array Cable System"
	CategoryExportSystem       Category = "Export System"
	CategoryMooringSystem      Category = "Mooring System"
	CategorySubstation         Category = "Substation"
	CategoryInstallation       Category = "Installation"
	CategorySoftCosts          Category = "Soft Costs"
	CategoryProjectDevelopment Category = "Project Development"
)

// String returns the string representation of the Category
func (c Category) String() string {
	return string(c)
}

// Breakdown is the capex-by-category rollup derived from design results and
// ledger costs. A category a failed phase would have contributed is marked
// absent rather than silently zero-filled: Value distinguishes "zero because
// computed" from "zero because missing".
type Breakdown struct {
	values map[Category]float64
	absent map[Category]string
}

// NewBreakdown creates an empty breakdown
func NewBreakdown() *Breakdown {
	return &Breakdown{
		values: make(map[Category]float64),
		absent: make(map[Category]string),
	}
}

// Add accumulates an amount into a category. Adding clears any prior
// absent marking for the category.
func (b *Breakdown) Add(c Category, amount float64) {
	delete(b.absent, c)
	b.values[c] += amount
}

// MarkAbsent flags a category whose contributing phase failed
func (b *Breakdown) MarkAbsent(c Category, reason string) {
	if _, ok := b.values[c]; ok {
		return
	}
	b.absent[c] = reason
}

// Value returns the category amount and whether it was actually computed
func (b *Breakdown) Value(c Category) (float64, bool) {
	v, ok := b.values[c]
	return v, ok
}

// AbsentReason returns why a category is missing, if it is
func (b *Breakdown) AbsentReason(c Category) (string, bool) {
	r, ok := b.absent[c]
	return r, ok
}

// Categories returns the computed categories, sorted
func (b *Breakdown) Categories() []Category {
	out := make([]Category, 0, len(b.values))
	for c := range b.values {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AbsentCategories returns the flagged-missing categories, sorted
func (b *Breakdown) AbsentCategories() []Category {
	out := make([]Category, 0, len(b.absent))
	for c := range b.absent {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Total sums every computed category
func (b *Breakdown) Total() float64 {
	var total float64
	for _, v := range b.values {
		total += v
	}
	return total
}

// PerKW derives the capex-per-kW view for the given plant capacity
func (b *Breakdown) PerKW(capacityKW float64) map[Category]float64 {
	if capacityKW <= 0 {
		return nil
	}
	out := make(map[Category]float64, len(b.values))
	for c, v := range b.values {
		out[c] = v / capacityKW
	}
	return out
}
