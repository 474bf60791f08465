package affinity

import (
	"testing"

	"github.com/google/uuid"
)

func TestEdge_Valid(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	cases := []struct {
		name string
		edge Edge
		want bool
	}{
		{"ok", Edge{a, b, 75}, true},
		{"zero score", Edge{a, b, 0}, true},
		{"self edge", Edge{a, a, 50}, false},
		{"nil id", Edge{uuid.Nil, b, 50}, false},
		{"negative score", Edge{a, b, -1}, false},
		{"overflow score", Edge{a, b, 101}, false},
	}
	for _, tc := range cases {
		if got := tc.edge.Valid(); got != tc.want {
			t.Fatalf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNewGraph_SkipsMalformedAndDangling(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	outsider := uuid.New()
	known := map[uuid.UUID]struct{}{a: {}, b: {}, c: {}}

	g := NewGraph([]Edge{
		{a, b, 80},
		{a, c, 40},
		{a, a, 90},        // self edge
		{b, outsider, 70}, // unknown employee
		{b, c, 150},       // out of range
	}, known)

	if g.Skipped() != 3 {
		t.Fatalf("expected 3 skipped edges, got %d", g.Skipped())
	}
	if avg := g.AverageFor(a); avg != 60 {
		t.Fatalf("expected average 60 for a, got %v", avg)
	}
	if avg := g.AverageFor(b); avg != 80 {
		t.Fatalf("expected average 80 for b, got %v", avg)
	}
}

func TestGraph_AverageFor_Bidirectional(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	g := NewGraph([]Edge{{a, b, 64}}, nil)

	if g.AverageFor(a) != 64 || g.AverageFor(b) != 64 {
		t.Fatalf("expected an undirected edge to score both endpoints")
	}
}

func TestGraph_AverageFor_NoEdges(t *testing.T) {
	g := NewGraph(nil, nil)
	if avg := g.AverageFor(uuid.New()); avg != 0 {
		t.Fatalf("expected 0 for unknown employee, got %v", avg)
	}
}
