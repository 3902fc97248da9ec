package birch

import (
	"math"
	"testing"
)

// setupBenchChart creates a mounted chart with n points spread across four
// series for benchmark use. Positions are deterministic spirals so every
// run indexes identical data.
func setupBenchChart(b *testing.B, n int) *Scatter {
	b.Helper()
	s, err := New(ScatterConfig{
		PlotBounds: Rect{Width: 1280, Height: 720},
		XScale:     Linear(0, 1, 0, 1280),
		YScale:     Linear(0, 1, 720, 0),
	})
	if err != nil {
		b.Fatal(err)
	}
	data := make([]Series, 4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		data[i%4] = append(data[i%4], Record{
			"x": 0.5 + 0.49*t*math.Cos(t*97),
			"y": 0.5 + 0.49*t*math.Sin(t*89),
		})
	}
	if err := s.SetData(data); err != nil {
		b.Fatal(err)
	}
	if err := s.Redraw(); err != nil {
		b.Fatal(err)
	}
	return s
}

// --- Redraw benchmarks ---

func BenchmarkRedraw_1000Points(b *testing.B) {
	s := setupBenchChart(b, 1000)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := s.Redraw(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRedraw_10000Points(b *testing.B) {
	s := setupBenchChart(b, 10000)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := s.Redraw(); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Pointer benchmarks ---

// BenchmarkPointerSweep_10000Points exercises the full interactive path per
// move: nearest-point query, highlight transition, and style application.
func BenchmarkPointerSweep_10000Points(b *testing.B) {
	s := setupBenchChart(b, 10000)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x := float64(i%1280) + 0.5
		y := float64((i*7)%720) + 0.25
		s.routePointer(x, y)
	}
}
