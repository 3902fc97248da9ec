package birch

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

const markerRadius = 6

// ScatterConfig configures a Scatter. PlotBounds, XScale, and YScale are
// required; everything else has a usable zero value.
type ScatterConfig struct {
	// PlotBounds is the screen rectangle the plot occupies. Pointer positions
	// outside it never produce point events.
	PlotBounds Rect

	// XScale and YScale map accessor values to pixel coordinates.
	XScale Scale
	YScale Scale

	// X and Y extract the coordinate values from each record.
	// Default Field("x") and Field("y").
	X Accessor
	Y Accessor

	// Size controls per-point radius: nil for the default constant, a field
	// name, a number, or an Accessor.
	Size any

	// ColorFor assigns each series its color. Default DefaultPalette().
	ColorFor func(series int) Color

	// Tooltip receives highlight updates. nil means no tooltip.
	Tooltip Tooltip

	// Legend and Brush are optional peers remounted on every redraw.
	Legend Peer
	Brush  Peer

	// XRug and YRug enable marginal distribution strips along the bottom and
	// left plot edges. RugSize is the tick length (default DefaultRugSize).
	XRug    bool
	YRug    bool
	RugSize float64

	// DimOpacity and FullOpacity are the resting and highlighted point fill
	// opacities. Zero selects DefaultDimOpacity / DefaultFullOpacity.
	DimOpacity  float64
	FullOpacity float64

	// StrokeWidth is the outline width mounted on every point. Zero means no
	// outline.
	StrokeWidth float64

	// EmphasisDuration animates highlight opacity changes over the given
	// seconds instead of applying them instantly. EmphasisEase selects the
	// easing curve (default ease.OutQuad).
	EmphasisDuration float32
	EmphasisEase     ease.TweenFunc

	// ShowMarker displays a ring over the currently resolved point. Useful
	// when verifying picking behavior.
	ShowMarker bool

	// ExhaustiveThreshold is the point count below which nearest-point
	// queries scan linearly instead of walking a triangulation.
	// Default DefaultExhaustiveThreshold.
	ExhaustiveThreshold int

	// Debug turns on the package debug checks and redraw timing logs.
	Debug bool
}

// Scatter is the chart orchestrator: it owns the node tree, the mounted
// point registry, the nearest-point index, and the highlight state machine,
// and keeps them consistent across data changes. All methods assume
// single-threaded use from the host's update loop.
type Scatter struct {
	cfg       ScatterConfig
	x, y      Accessor
	size      Accessor
	colorFor  func(int) Color
	dim       float64
	full      float64
	threshold int
	easeFn    ease.TweenFunc

	data []Series

	root        *Node
	rugLayer    *Node
	pointsLayer *Node
	markerLayer *Node
	peerLayer   *Node
	marker      *Node

	registry    *Registry
	index       *PointIndex
	highlighter *Highlighter
	picker      *Picker

	tweens      []*TweenGroup
	injectQueue []syntheticPointerEvent
	script      *PointerScript
}

// New validates the config and builds the chart's layer tree. The chart is
// empty until SetData and Redraw are called.
func New(cfg ScatterConfig) (*Scatter, error) {
	if cfg.PlotBounds.Width <= 0 || cfg.PlotBounds.Height <= 0 {
		return nil, fmt.Errorf("birch: PlotBounds must have positive width and height")
	}
	if cfg.XScale == nil || cfg.YScale == nil {
		return nil, fmt.Errorf("birch: XScale and YScale are required")
	}
	size, err := sizeAccessor(cfg.Size)
	if err != nil {
		return nil, err
	}
	s := &Scatter{
		cfg:       cfg,
		x:         cfg.X,
		y:         cfg.Y,
		size:      size,
		colorFor:  cfg.ColorFor,
		dim:       cfg.DimOpacity,
		full:      cfg.FullOpacity,
		threshold: cfg.ExhaustiveThreshold,
		easeFn:    cfg.EmphasisEase,
	}
	if s.x == nil {
		s.x = Field("x")
	}
	if s.y == nil {
		s.y = Field("y")
	}
	if s.colorFor == nil {
		s.colorFor = DefaultPalette()
	}
	if s.dim == 0 {
		s.dim = DefaultDimOpacity
	}
	if s.full == 0 {
		s.full = DefaultFullOpacity
	}
	if s.threshold <= 0 {
		s.threshold = DefaultExhaustiveThreshold
	}
	if s.easeFn == nil {
		s.easeFn = ease.OutQuad
	}
	if cfg.Debug {
		SetDebug(true)
	}

	s.root = NewContainer("chart")
	s.rugLayer = NewContainer("rugs")
	s.pointsLayer = NewContainer("points")
	s.pointsLayer.ZIndex = 1
	s.markerLayer = NewContainer("marker")
	s.markerLayer.ZIndex = 2
	s.peerLayer = NewContainer("peers")
	s.peerLayer.ZIndex = 3
	s.root.AddChild(s.rugLayer)
	s.root.AddChild(s.pointsLayer)
	s.root.AddChild(s.markerLayer)
	s.root.AddChild(s.peerLayer)

	s.marker = NewDot("marker", markerRadius)
	s.marker.FillOpacity = 0
	s.marker.StrokeWidth = 1.5
	s.marker.Visible = false
	s.markerLayer.AddChild(s.marker)

	return s, nil
}

// Root returns the chart's root node. Hosts draw it via Scatter.Draw or by
// adding it to their own tree and may attach siblings (a tooltip node, axis
// decorations) alongside the chart's layers.
func (s *Scatter) Root() *Node {
	return s.root
}

// Data returns the normalized series from the last SetData call.
func (s *Scatter) Data() []Series {
	return s.data
}

// Active returns the currently highlighted point, or NoPoint.
func (s *Scatter) Active() PointRef {
	if s.highlighter == nil {
		return NoPoint
	}
	return s.highlighter.Active()
}

// SetData normalizes and stores new chart data. Shape errors are returned
// here, before anything is mounted; the visible chart does not change until
// the next Redraw.
func (s *Scatter) SetData(data any) error {
	series, err := Normalize(data)
	if err != nil {
		return err
	}
	s.data = series
	return nil
}

// Redraw rebuilds everything derived from the current data: rug strips, the
// point registry, the nearest-point index, the highlight state machine, and
// any peers. Each redraw fully supersedes the previous one; prior handles
// are disposed and prior highlight state is dropped. Safe to call any number
// of times.
//
// On error the chart is left unmounted rather than half-updated: no points,
// no rugs, and no interaction until a later Redraw succeeds.
func (s *Scatter) Redraw() error {
	start := time.Now()
	if err := mountRugs(s.rugLayer, s.data, s.x, s.y, s.cfg.XScale, s.cfg.YScale, s.colorFor, rugConfig{
		bounds:  s.cfg.PlotBounds,
		size:    s.cfg.RugSize,
		xRug:    s.cfg.XRug,
		yRug:    s.cfg.YRug,
		opacity: s.dim,
	}); err != nil {
		s.unmount()
		return err
	}

	mountStart := time.Now()
	reg, err := mountPoints(s.pointsLayer, s.data, s.x, s.y, s.cfg.XScale, s.cfg.YScale, s.styleFor)
	if err != nil {
		s.unmount()
		return err
	}

	indexStart := time.Now()
	ix, err := buildIndex(s.data, s.x, s.y, s.cfg.XScale, s.cfg.YScale, s.threshold)
	if err != nil {
		s.unmount()
		return err
	}
	if globalDebug {
		debugCheckShapes(reg.Shape(), ix.Shape())
	}

	// Supersede the previous interactive state. Old tween targets were
	// disposed by the remount, old handles are unreachable after this.
	if s.highlighter != nil {
		s.highlighter.Reset()
	}
	s.dropTweens()
	s.marker.Visible = false

	applyFn := reg.Apply
	if s.cfg.EmphasisDuration > 0 {
		applyFn = s.animatedApplier(reg)
	}
	hl := NewHighlighter(reg, HighlightConfig{
		Tooltip:     s.cfg.Tooltip,
		Lookup:      s.recordAt,
		DimOpacity:  s.dim,
		FullOpacity: s.full,
		Apply:       applyFn,
	})
	var marker *Node
	if s.cfg.ShowMarker {
		marker = s.marker
	}
	s.registry = reg
	s.index = ix
	s.highlighter = hl
	s.picker = NewPicker(ix, s.cfg.PlotBounds, hl, marker)

	s.peerLayer.DisposeChildren()
	if s.cfg.Legend != nil {
		s.cfg.Legend.Mount(s.peerLayer)
	}
	if s.cfg.Brush != nil {
		s.cfg.Brush.Mount(s.peerLayer)
	}

	if globalDebug {
		end := time.Now()
		mode := "scan"
		if ix.tri != nil {
			mode = "delaunay"
		}
		debugLogRedraw(ix.Len(), mode, mountStart.Sub(start), indexStart.Sub(mountStart), end.Sub(indexStart))
	}
	return nil
}

// unmount clears every interactive and visual artifact of the last redraw.
// Called when a redraw fails partway so the chart never runs with an index
// and registry built from different data.
func (s *Scatter) unmount() {
	s.picker = nil
	if s.highlighter != nil {
		s.highlighter.Reset()
		s.highlighter = nil
	}
	s.registry = nil
	s.index = nil
	s.pointsLayer.DisposeChildren()
	s.rugLayer.DisposeChildren()
	s.marker.Visible = false
	s.dropTweens()
}

// styleFor computes the mount style for one record.
func (s *Scatter) styleFor(r Record, series int) (Style, error) {
	radius, err := s.size(r)
	if err != nil {
		return Style{}, err
	}
	return Style{
		Radius:      radius,
		Color:       s.colorFor(series),
		FillOpacity: s.dim,
		StrokeWidth: s.cfg.StrokeWidth,
	}, nil
}

// recordAt resolves a ref against the current data for tooltip updates.
func (s *Scatter) recordAt(ref PointRef) Record {
	return s.data[ref.Series][ref.Index]
}

// animatedApplier returns an apply function that routes opacity changes
// through a tween bound to the given registry. Non-opacity fields still
// apply immediately.
func (s *Scatter) animatedApplier(reg *Registry) func(PointRef, StylePatch) {
	return func(ref PointRef, patch StylePatch) {
		h := reg.Handle(ref)
		if patch.FillOpacity == nil {
			h.Apply(patch)
			return
		}
		target := *patch.FillOpacity
		rest := patch
		rest.FillOpacity = nil
		h.Apply(rest)
		s.cancelTweensFor(h.Node())
		s.tweens = append(s.tweens, TweenOpacity(h.Node(), target, s.cfg.EmphasisDuration, s.easeFn))
	}
}

// cancelTweensFor marks every live group targeting node as done, so quick
// hover changes do not leave two tweens fighting over the same field.
func (s *Scatter) cancelTweensFor(node *Node) {
	for _, g := range s.tweens {
		if g.target == node {
			g.Done = true
		}
	}
}

// advanceTweens steps all live groups and compacts out the finished ones.
func (s *Scatter) advanceTweens(dt float32) {
	if len(s.tweens) == 0 {
		return
	}
	alive := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			alive = append(alive, g)
		}
	}
	for i := len(alive); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = alive
}

func (s *Scatter) dropTweens() {
	for i := range s.tweens {
		s.tweens[i] = nil
	}
	s.tweens = s.tweens[:0]
}

// routePointer feeds one pointer position through the picker, if the chart
// is mounted.
func (s *Scatter) routePointer(x, y float64) {
	if s.picker == nil {
		return
	}
	s.picker.PointerMoved(x, y)
}

// Update processes one frame: it advances the pointer script if one is
// playing, consumes at most one injected pointer event (falling back to the
// real cursor position), and steps emphasis animations. Call once per frame
// from the host's ebiten Update.
func (s *Scatter) Update() {
	if s.script != nil && !s.script.Done() {
		s.script.step(s)
	}
	if !s.consumeInjected() {
		mx, my := ebiten.CursorPosition()
		s.routePointer(float64(mx), float64(my))
	}
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	s.advanceTweens(1 / float32(tps))
}

// Draw renders the chart tree onto screen.
func (s *Scatter) Draw(screen *ebiten.Image) {
	drawTree(screen, s.root, 0, 0)
}
