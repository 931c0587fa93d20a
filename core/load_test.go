package core_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/voskreal/digraph/core"
)

func TestNewFromReader_Basic(t *testing.T) {
	src := "3\n0 1 2\n1 2 3.5\n"
	g, err := core.NewFromReader[float64](strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Order() != 3 {
		t.Fatalf("Order() = %d; want 3", g.Order())
	}

	// Round-trip: every parsed triple must be observable via HasEdge/Weight.
	for _, e := range []struct {
		u, v int
		w    float64
	}{{0, 1, 2}, {1, 2, 3.5}} {
		if !g.HasEdge(e.u, e.v) {
			t.Errorf("HasEdge(%d,%d) = false; want true", e.u, e.v)
		}
		w, err := g.Weight(e.u, e.v)
		if err != nil {
			t.Fatalf("Weight(%d,%d): %v", e.u, e.v, err)
		}
		if w != e.w {
			t.Errorf("Weight(%d,%d) = %v; want %v", e.u, e.v, w, e.w)
		}
	}
	if g.HasEdge(2, 0) {
		t.Error("HasEdge(2,0) = true; edge was never in the source")
	}
}

// TestNewFromReader_IntTruncation pins the cast contract: weights are read
// as floats and truncated toward zero for integer W.
func TestNewFromReader_IntTruncation(t *testing.T) {
	g, err := core.NewFromReader[int](strings.NewReader("2\n0 1 3.9\n"))
	if err != nil {
		t.Fatal(err)
	}
	w, err := g.Weight(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if w != 3 {
		t.Errorf("Weight(0,1) = %d; want 3 (truncated)", w)
	}
}

// TestNewFromReader_MalformedTokenStops verifies that parsing ends silently
// at the first token that is not part of a well-formed triple.
func TestNewFromReader_MalformedTokenStops(t *testing.T) {
	src := "3\n0 1 1.0\nbogus 2 2.0\n1 2 5.0\n"
	g, err := core.NewFromReader[float64](strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.HasEdge(0, 1) {
		t.Error("edge before the malformed token was dropped")
	}
	if g.HasEdge(1, 2) {
		t.Error("edge after the malformed token was parsed; parsing should have stopped")
	}
}

func TestNewFromReader_OutOfRangeTriple(t *testing.T) {
	if _, err := core.NewFromReader[int](strings.NewReader("2\n0 5 1\n")); !errors.Is(err, core.ErrVertexRange) {
		t.Errorf("want ErrVertexRange, got %v", err)
	}
}

func TestNewFromReader_NegativeCount(t *testing.T) {
	if _, err := core.NewFromReader[int](strings.NewReader("-4\n")); !errors.Is(err, core.ErrNegativeOrder) {
		t.Errorf("want ErrNegativeOrder, got %v", err)
	}
}

func TestNewFromReader_EmptySource(t *testing.T) {
	g, err := core.NewFromReader[int](strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Order() != 0 {
		t.Errorf("Order() = %d; want 0", g.Order())
	}
}

func TestNewFromFile_Missing(t *testing.T) {
	if _, err := core.NewFromFile[int]("no/such/file.txt"); !errors.Is(err, core.ErrSourceUnavailable) {
		t.Errorf("want ErrSourceUnavailable, got %v", err)
	}
}

func TestNewFromFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	if err := os.WriteFile(path, []byte("4\n0 1 1.5\n1 3 2\n2 0 0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	g, err := core.NewFromFile[float64](path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Order() != 4 || g.EdgeCount() != 3 {
		t.Fatalf("loaded graph: order=%d edges=%d; want 4/3", g.Order(), g.EdgeCount())
	}
	if w, _ := g.Weight(2, 0); w != 0.5 {
		t.Errorf("Weight(2,0) = %v; want 0.5", w)
	}
}
