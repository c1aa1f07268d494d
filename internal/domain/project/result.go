package project

import (
	"sort"

	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

// DesignResult is the sized, costed artifact a design phase produces for one
// component. Mass in tonnes, costs in USD. Component-specific figures (anchor
// mass, line length, pile diameter) live in Attributes; non-numeric traits
// (anchor type, cable family) live in Labels.
type DesignResult struct {
	Component  string
	Mass       float64
	UnitCost   float64
	Units      int
	SystemCost float64
	Attributes map[string]float64
	Labels     map[string]string
}

// Clone returns a deep copy, keeping stored results immutable
func (r DesignResult) Clone() DesignResult {
	out := r
	if r.Attributes != nil {
		out.Attributes = make(map[string]float64, len(r.Attributes))
		for k, v := range r.Attributes {
			out.Attributes[k] = v
		}
	}
	if r.Labels != nil {
		out.Labels = make(map[string]string, len(r.Labels))
		for k, v := range r.Labels {
			out.Labels[k] = v
		}
	}
	return out
}

// ResultStore is the project-wide store of design results, keyed by component
// identifier. Results are written once by their producing design phase and
// immutable afterward; installation phases only read.
type ResultStore struct {
	results map[string]DesignResult
}

// NewResultStore creates an empty store
func NewResultStore() *ResultStore {
	return &ResultStore{results: make(map[string]DesignResult)}
}

// Put stores a result. Storing the same component twice is a configuration
// error: design results are produced once per run.
func (s *ResultStore) Put(r DesignResult) error {
	if r.Component == "" {
		return shared.NewConfigurationError("design_result.component", "must not be empty")
	}
	if _, exists := s.results[r.Component]; exists {
		return shared.NewConfigurationError(r.Component, "design result already recorded")
	}
	s.results[r.Component] = r.Clone()
	return nil
}

// Get retrieves a result by component identifier
func (s *ResultStore) Get(component string) (DesignResult, bool) {
	r, ok := s.results[component]
	if !ok {
		return DesignResult{}, false
	}
	return r.Clone(), true
}

// Has reports whether a component has a recorded result
func (s *ResultStore) Has(component string) bool {
	_, ok := s.results[component]
	return ok
}

// Components returns the recorded component identifiers, sorted
func (s *ResultStore) Components() []string {
	out := make([]string, 0, len(s.results))
	for c := range s.results {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
