package project

import (
	"fmt"
	"sort"
	"strings"

	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

// PhaseGraph orders the declared phases of a run so every installation phase
// executes only after the design phases whose outputs it consumes. Dependency
// resolution failures (unknown dependency, cycle) are run-fatal and raised
// before any simulation starts.
type PhaseGraph struct {
	nodes []string
	index map[string]int
	edges map[int][]int // dependency -> dependents
	indeg []int
}

// NewPhaseGraph creates an empty graph
func NewPhaseGraph() *PhaseGraph {
	return &PhaseGraph{
		index: make(map[string]int),
		edges: make(map[int][]int),
	}
}

// AddPhase declares a phase node
func (g *PhaseGraph) AddPhase(name string) error {
	if _, exists := g.index[name]; exists {
		return shared.NewDependencyError(name, "declared twice")
	}
	g.index[name] = len(g.nodes)
	g.nodes = append(g.nodes, name)
	g.indeg = append(g.indeg, 0)
	return nil
}

// AddDependency declares that phase depends on dep. Both must already be
// declared; a missing dep means a required design phase was removed from the
// configured list while a dependent install phase kept referencing it.
func (g *PhaseGraph) AddDependency(phase, dep string) error {
	pi, ok := g.index[phase]
	if !ok {
		return shared.NewDependencyError(phase, "phase not declared")
	}
	di, ok := g.index[dep]
	if !ok {
		return shared.NewDependencyError(phase, fmt.Sprintf("depends on %q which is not in the configured phase list", dep))
	}
	g.edges[di] = append(g.edges[di], pi)
	g.indeg[pi]++
	return nil
}

// Order returns a deterministic topological ordering of the declared phases.
// The ready set is drained in declaration order, so runs are reproducible.
// A cycle is reported as a DependencyError naming one witness path.
func (g *PhaseGraph) Order() ([]string, error) {
	indeg := make([]int, len(g.indeg))
	copy(indeg, g.indeg)

	var ready []int
	for i, d := range indeg {
		if d == 0 {
			ready = append(ready, i)
		}
	}

	out := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		sort.Ints(ready)
		n := ready[0]
		ready = ready[1:]
		out = append(out, g.nodes[n])
		for _, m := range g.edges[n] {
			indeg[m]--
			if indeg[m] == 0 {
				ready = append(ready, m)
			}
		}
	}

	if len(out) != len(g.nodes) {
		var stuck []string
		for i, d := range indeg {
			if d > 0 {
				stuck = append(stuck, g.nodes[i])
			}
		}
		sort.Strings(stuck)
		return nil, shared.NewDependencyError(stuck[0],
			fmt.Sprintf("cyclic dependency among [%s]", strings.Join(stuck, ", ")))
	}
	return out, nil
}
