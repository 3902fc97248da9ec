package birch

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title   string
	Width   int  // window width in pixels (default 640)
	Height  int  // window height in pixels (default 480)
	ShowFPS bool // overlay FPS and TPS in the top-left corner

	// ClearColor fills the screen each frame before the chart draws.
	// Zero value selects a dark slate background.
	ClearColor Color

	// OnUpdate runs each frame before the chart updates. Return an error to
	// stop the loop (ebiten.Termination for a clean exit).
	OnUpdate func() error
}

// Run opens a window and drives the chart until the window closes. It is a
// convenience for examples and quick prototypes; hosts embedding a chart in
// an existing game implement [ebiten.Game] themselves and call
// [Scatter.Update] and [Scatter.Draw] directly.
func Run(chart *Scatter, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.ClearColor == (Color{}) {
		cfg.ClearColor = Color{R: 0.118, G: 0.118, B: 0.157, A: 1}
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&chartGame{chart: chart, cfg: cfg})
}

// chartGame adapts a Scatter to ebiten.Game for Run.
type chartGame struct {
	chart *Scatter
	cfg   RunConfig

	fpsText    string
	fpsElapsed int
}

func (g *chartGame) Update() error {
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(); err != nil {
			return err
		}
	}
	g.chart.Update()

	if g.cfg.ShowFPS {
		// Refresh the readout about twice a second.
		g.fpsElapsed++
		if g.fpsText == "" || g.fpsElapsed >= 30 {
			g.fpsElapsed = 0
			g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	return nil
}

func (g *chartGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.nrgba(1))
	g.chart.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen, g.fpsText, 4, 4)
	}
}

func (g *chartGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
