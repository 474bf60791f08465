package affinity

import (
	"github.com/google/uuid"
)

// Edge is an undirected collaboration-closeness measure between two
// employees, stored once per unordered pair. Score is 0-100.
type Edge struct {
	EmployeeA uuid.UUID
	EmployeeB uuid.UUID
	Score     float64
}

// Valid reports whether the edge satisfies the pair invariants. Edges that
// reference the same employee twice or carry an out-of-range score are
// malformed and must not contribute to scoring.
func (e Edge) Valid() bool {
	if e.EmployeeA == uuid.Nil || e.EmployeeB == uuid.Nil {
		return false
	}
	if e.EmployeeA == e.EmployeeB {
		return false
	}
	return e.Score >= 0 && e.Score <= 100
}

// Graph indexes affinity edges for bidirectional lookup.
type Graph struct {
	byEmployee map[uuid.UUID][]float64
	skipped    int
}

// NewGraph builds a lookup over the given edges. Malformed edges and edges
// referencing employees outside the known set are skipped, not fatal; the
// skip count is kept for response warnings.
func NewGraph(edges []Edge, known map[uuid.UUID]struct{}) *Graph {
	g := &Graph{byEmployee: make(map[uuid.UUID][]float64)}
	for _, e := range edges {
		if !e.Valid() {
			g.skipped++
			continue
		}
		if known != nil {
			if _, ok := known[e.EmployeeA]; !ok {
				g.skipped++
				continue
			}
			if _, ok := known[e.EmployeeB]; !ok {
				g.skipped++
				continue
			}
		}
		g.byEmployee[e.EmployeeA] = append(g.byEmployee[e.EmployeeA], e.Score)
		g.byEmployee[e.EmployeeB] = append(g.byEmployee[e.EmployeeB], e.Score)
	}
	return g
}

// AverageFor returns the mean score over all edges touching the employee,
// or 0 when the employee has no edges.
func (g *Graph) AverageFor(id uuid.UUID) float64 {
	if g == nil {
		return 0
	}
	scores := g.byEmployee[id]
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// Skipped returns how many edges were dropped as malformed or dangling.
func (g *Graph) Skipped() int {
	if g == nil {
		return 0
	}
	return g.skipped
}
