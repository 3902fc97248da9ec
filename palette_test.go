package birch

import "testing"

func TestDefaultPaletteDeterministic(t *testing.T) {
	a := DefaultPalette()
	b := DefaultPalette()
	for i := 0; i < 10; i++ {
		if a(i) != b(i) {
			t.Fatalf("palette not deterministic at series %d: %v vs %v", i, a(i), b(i))
		}
	}
}

func TestDefaultPaletteDistinctNeighbors(t *testing.T) {
	p := DefaultPalette()
	for i := 0; i < 8; i++ {
		if p(i) == p(i+1) {
			t.Errorf("series %d and %d share a color: %v", i, i+1, p(i))
		}
	}
}

func TestDefaultPaletteOpaqueInRange(t *testing.T) {
	p := DefaultPalette()
	for i := 0; i < 16; i++ {
		c := p(i)
		if c.A != 1 {
			t.Errorf("series %d alpha = %v, want 1", i, c.A)
		}
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Errorf("series %d component %v out of [0, 1]", i, v)
			}
		}
	}
}
