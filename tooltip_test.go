package birch

import "testing"

func TestFormatTooltip(t *testing.T) {
	got := formatTooltip(TooltipUpdate{
		Marker: MarkerCircle,
		Series: 1,
		Index:  0,
		Record: Record{"x": 3.0, "y": 7.5},
	})
	want := "series 1 [circle] x=3 y=7.5"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatTooltipSortsKeys(t *testing.T) {
	// Map iteration order is random; the output must not be.
	u := TooltipUpdate{
		Series: 0,
		Record: Record{"z": 1.0, "a": 2.0, "m": 3.0},
	}
	want := "series 0 [circle] a=2 m=3 z=1"
	for i := 0; i < 20; i++ {
		if got := formatTooltip(u); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestFormatTooltipEmptyRecord(t *testing.T) {
	got := formatTooltip(TooltipUpdate{Series: 2, Marker: MarkerTick})
	if got != "series 2 [tick]" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestFormatTooltipNonNumericValues(t *testing.T) {
	got := formatTooltip(TooltipUpdate{
		Series: 0,
		Record: Record{"label": "alpha", "x": 5.0},
	})
	want := "series 0 [circle] label=alpha x=5"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMarkerKindString(t *testing.T) {
	cases := []struct {
		kind MarkerKind
		want string
	}{
		{MarkerCircle, "circle"},
		{MarkerSquare, "square"},
		{MarkerTick, "tick"},
		{MarkerKind(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("MarkerKind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
