package birch

import (
	"errors"
	"testing"
)

var errTest = errors.New("test error")

func testStyleFor(r Record, series int) (Style, error) {
	return Style{
		Radius:      3,
		Color:       Color{R: 1, A: 1},
		FillOpacity: 0.3,
		StrokeWidth: 1,
	}, nil
}

func mountTestPoints(t *testing.T, series []Series) (*Node, *Registry) {
	t.Helper()
	parent := NewContainer("points")
	rg, err := mountPoints(parent, series, Field("x"), Field("y"), idScale, idScale, testStyleFor)
	if err != nil {
		t.Fatalf("mountPoints: %v", err)
	}
	return parent, rg
}

// --- Mount ---

func TestMountShapeMirrorsData(t *testing.T) {
	series := []Series{
		xySeries([2]float64{0, 0}, [2]float64{10, 10}),
		xySeries([2]float64{0, 10}),
	}
	parent, rg := mountTestPoints(t, series)

	if rg.SeriesCount() != 2 {
		t.Errorf("SeriesCount = %d, want 2", rg.SeriesCount())
	}
	if rg.SeriesLen(0) != 2 || rg.SeriesLen(1) != 1 {
		t.Errorf("SeriesLen = %d/%d, want 2/1", rg.SeriesLen(0), rg.SeriesLen(1))
	}
	if rg.SeriesLen(5) != 0 {
		t.Error("out-of-range SeriesLen should be 0")
	}
	if parent.NumChildren() != 3 {
		t.Errorf("mounted nodes = %d, want 3", parent.NumChildren())
	}
}

func TestMountNodePlacementAndStyle(t *testing.T) {
	series := []Series{xySeries([2]float64{7, 9})}
	_, rg := mountTestPoints(t, series)

	h := rg.Handle(PointRef{0, 0})
	n := h.Node()
	if n.X != 7 || n.Y != 9 {
		t.Errorf("node at (%v, %v), want (7, 9)", n.X, n.Y)
	}
	if n.Kind != NodeDot {
		t.Error("points should mount as dot nodes")
	}
	st := h.Style()
	if st.Radius != 3 || st.FillOpacity != 0.3 || st.StrokeWidth != 1 {
		t.Errorf("mounted style = %+v", st)
	}
	if ref, ok := n.UserData.(PointRef); !ok || ref != (PointRef{0, 0}) {
		t.Error("node UserData should carry the point ref")
	}
}

func TestMountUsesScales(t *testing.T) {
	series := []Series{xySeries([2]float64{5, 5})}
	parent := NewContainer("points")
	xs := Linear(0, 10, 0, 100)
	ys := Linear(0, 10, 100, 0)
	rg, err := mountPoints(parent, series, Field("x"), Field("y"), xs, ys, testStyleFor)
	if err != nil {
		t.Fatal(err)
	}
	n := rg.Handle(PointRef{0, 0}).Node()
	if n.X != 50 || n.Y != 50 {
		t.Errorf("node at (%v, %v), want (50, 50)", n.X, n.Y)
	}
}

func TestRemountDisposesPriorHandles(t *testing.T) {
	series := []Series{xySeries([2]float64{0, 0}, [2]float64{1, 1})}
	parent, rg := mountTestPoints(t, series)
	old0 := rg.Handle(PointRef{0, 0}).Node()
	old1 := rg.Handle(PointRef{0, 1}).Node()

	// Remount with fewer points.
	rg2, err := mountPoints(parent, []Series{xySeries([2]float64{2, 2})}, Field("x"), Field("y"), idScale, idScale, testStyleFor)
	if err != nil {
		t.Fatal(err)
	}
	if !old0.IsDisposed() || !old1.IsDisposed() {
		t.Error("prior mount's nodes should be disposed")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("children after remount = %d, want 1", parent.NumChildren())
	}
	if rg2.SeriesLen(0) != 1 {
		t.Errorf("new registry SeriesLen = %d, want 1", rg2.SeriesLen(0))
	}
}

func TestMountErrorLeavesParentEmpty(t *testing.T) {
	series := []Series{{Record{"x": 1.0, "y": 1.0}, Record{"x": 2.0}}}
	parent := NewContainer("points")
	_, err := mountPoints(parent, series, Field("x"), Field("y"), idScale, idScale, testStyleFor)
	if err == nil {
		t.Fatal("missing y field should fail the mount")
	}
	if parent.NumChildren() != 0 {
		t.Errorf("children after failed mount = %d, want 0", parent.NumChildren())
	}
}

func TestMountStyleError(t *testing.T) {
	bad := func(r Record, series int) (Style, error) {
		return Style{}, errTest
	}
	parent := NewContainer("points")
	_, err := mountPoints(parent, []Series{xySeries([2]float64{1, 1})}, Field("x"), Field("y"), idScale, idScale, bad)
	if err == nil {
		t.Fatal("style error should fail the mount")
	}
}

func TestMountEmptyData(t *testing.T) {
	parent, rg := mountTestPoints(t, nil)
	if rg.SeriesCount() != 0 || parent.NumChildren() != 0 {
		t.Error("empty mount should produce no series and no nodes")
	}
}

// --- Patches ---

func TestApplyPatchSubsets(t *testing.T) {
	_, rg := mountTestPoints(t, []Series{xySeries([2]float64{0, 0})})
	ref := PointRef{0, 0}

	rg.Apply(ref, PatchOpacity(1))
	st := rg.Handle(ref).Style()
	if st.FillOpacity != 1 {
		t.Errorf("FillOpacity = %v, want 1", st.FillOpacity)
	}
	if st.Radius != 3 || st.StrokeWidth != 1 {
		t.Error("opacity patch must not touch other fields")
	}

	rg.Apply(ref, PatchRadius(6))
	if got := rg.Handle(ref).Style().Radius; got != 6 {
		t.Errorf("Radius = %v, want 6", got)
	}

	c := Color{R: 0.2, G: 0.4, B: 0.6, A: 1}
	w := 2.5
	rg.Apply(ref, StylePatch{Color: &c, StrokeWidth: &w})
	st = rg.Handle(ref).Style()
	if st.Color != c || st.StrokeWidth != 2.5 {
		t.Errorf("combined patch result = %+v", st)
	}
}

// --- Desync panics ---

func TestHandleOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		ref  PointRef
	}{
		{"series too high", PointRef{1, 0}},
		{"index too high", PointRef{0, 2}},
		{"negative series", PointRef{-1, 0}},
		{"negative index", PointRef{0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rg := mountTestPoints(t, []Series{xySeries([2]float64{0, 0}, [2]float64{1, 1})})
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic for out-of-range ref, got none")
				}
			}()
			rg.Handle(tt.ref)
		})
	}
}
