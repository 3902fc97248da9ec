// Package birch renders interactive scatter plots for [Ebitengine], with
// pointer-driven nearest-point picking as the core feature.
//
// Birch provides the chart node tree, the Delaunay-backed point index, the
// single-active-point highlight state machine, tooltips, legends, and
// marginal rug strips that an interactive scatter chart needs. Axes, panning,
// and zooming stay with the host; birch only asks for two scales.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	chart, err := birch.New(birch.ScatterConfig{
//		PlotBounds: birch.Rect{X: 40, Y: 20, Width: 560, Height: 400},
//		XScale:     birch.Linear(0, 100, 40, 600),
//		YScale:     birch.Linear(0, 1, 420, 20),
//	})
//	chart.SetData(records)
//	chart.Redraw()
//	birch.Run(chart, birch.RunConfig{
//		Title: "My Chart", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scatter.Update] and [Scatter.Draw] directly:
//
//	type Game struct{ chart *birch.Scatter }
//
//	func (g *Game) Update() error         { g.chart.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.chart.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Data model
//
// Data points are [Record] maps read through [Accessor] functions. SetData
// accepts either a flat record list (one series) or a list of series, and
// normalizes exactly once; see [Normalize]. Redraw fully supersedes the
// previous mount: new dot nodes, new index, fresh highlight state.
//
// # Point picking
//
// While the pointer is inside PlotBounds, every move resolves the nearest
// point over all series through a [PointIndex] (Delaunay triangulation walk,
// exhaustive scan for small datasets) and feeds the highlight state machine,
// which dims the previous point, emphasizes the new one, and updates the
// configured [Tooltip]. Ties resolve deterministically to the lowest series,
// then the lowest point index. Leaving the plot clears the highlight exactly
// once.
//
// All of birch assumes single-threaded use from the game loop; nothing in
// the package locks.
//
// [Ebitengine]: https://ebitengine.org
package birch
