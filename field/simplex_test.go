package field_test

import (
	"errors"
	"testing"

	"github.com/wumming/graph-pde/field"
)

// TestSimplex_Deterministic verifies that equal seeds reproduce equal
// fields and differing seeds do not.
func TestSimplex_Deterministic(t *testing.T) {
	opts := field.DefaultSimplexOptions()
	a, err := field.Simplex(8, 8, opts)
	if err != nil {
		t.Fatalf("Simplex error: %v", err)
	}
	b, _ := field.Simplex(8, 8, opts)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %v vs %v", i, a[i], b[i])
		}
	}

	opts.Seed = 7
	c, _ := field.Simplex(8, 8, opts)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical fields")
	}
}

// TestSimplex_PositiveWithDefaults: the default shift keeps every value
// strictly positive, so kernel features stay finite.
func TestSimplex_PositiveWithDefaults(t *testing.T) {
	a, err := field.Simplex(16, 16, field.DefaultSimplexOptions())
	if err != nil {
		t.Fatalf("Simplex error: %v", err)
	}
	if len(a) != 256 {
		t.Fatalf("len = %d; want 256", len(a))
	}
	for i, v := range a {
		if v <= 0 {
			t.Fatalf("value %d = %v; want > 0", i, v)
		}
	}
}

func TestSimplex_BadDims(t *testing.T) {
	if _, err := field.Simplex(0, 4, field.DefaultSimplexOptions()); !errors.Is(err, field.ErrBadStride) {
		t.Errorf("Simplex error = %v; want ErrBadStride", err)
	}
}
