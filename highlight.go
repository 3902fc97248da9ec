package birch

import "fmt"

// Default emphasis opacities. Mounted points sit at DimOpacity; the active
// point is raised to FullOpacity.
const (
	DefaultDimOpacity  = 0.3
	DefaultFullOpacity = 1.0
)

// HandleSet is the registry surface the highlighter restyles through. Apply
// must panic when ref is outside the mounted shape.
type HandleSet interface {
	SeriesCount() int
	SeriesLen(i int) int
	Apply(ref PointRef, patch StylePatch)
}

// highlightPlan is the output of the pure transition function: which point to
// restore to the dim style, which to emphasize, and whether anything changes
// at all. Either ref may be NoPoint.
type highlightPlan struct {
	Restore   PointRef
	Emphasize PointRef
	Changed   bool
}

// transition computes the restyle plan for moving the active point from cur
// to next. It is a pure function of the two refs; all rendering side effects
// happen in the caller. next == cur yields an unchanged plan, which is what
// makes repeated events for the same point free.
func transition(cur, next PointRef) highlightPlan {
	if next == cur {
		return highlightPlan{Restore: NoPoint, Emphasize: NoPoint}
	}
	return highlightPlan{Restore: cur, Emphasize: next, Changed: true}
}

// HighlightConfig configures a Highlighter. Zero values select the defaults
// noted on each field.
type HighlightConfig struct {
	// Tooltip receives updates for every newly active point and a Hide when
	// the highlight clears. nil disables tooltip notifications.
	Tooltip Tooltip

	// Lookup resolves the record for a ref, for tooltip updates. Required
	// when Tooltip is set.
	Lookup func(PointRef) Record

	// Marker is the glyph kind carried on tooltip updates. Default MarkerCircle.
	Marker MarkerKind

	// DimOpacity and FullOpacity are the restore and emphasis fill
	// opacities. Zero selects DefaultDimOpacity / DefaultFullOpacity.
	DimOpacity  float64
	FullOpacity float64

	// Apply overrides how patches reach the handles, letting the owner route
	// emphasis through an animation. Default is handles.Apply.
	Apply func(PointRef, StylePatch)
}

// Highlighter is the single-active-point state machine. It consumes picker
// events and drives point styles and the tooltip. At any moment either no
// point is active or exactly one is; the active ref is never partially set.
// All methods assume single-threaded use.
type Highlighter struct {
	handles HandleSet
	tooltip Tooltip
	lookup  func(PointRef) Record
	marker  MarkerKind
	dim     float64
	full    float64
	apply   func(PointRef, StylePatch)

	active PointRef
}

// NewHighlighter creates a highlighter over the given handle set. The
// highlighter starts idle.
func NewHighlighter(handles HandleSet, cfg HighlightConfig) *Highlighter {
	h := &Highlighter{
		handles: handles,
		tooltip: cfg.Tooltip,
		lookup:  cfg.Lookup,
		marker:  cfg.Marker,
		dim:     cfg.DimOpacity,
		full:    cfg.FullOpacity,
		apply:   cfg.Apply,
		active:  NoPoint,
	}
	if h.dim == 0 {
		h.dim = DefaultDimOpacity
	}
	if h.full == 0 {
		h.full = DefaultFullOpacity
	}
	if h.apply == nil {
		h.apply = handles.Apply
	}
	return h
}

// Active returns the currently highlighted ref, or NoPoint when idle.
func (h *Highlighter) Active() PointRef {
	return h.active
}

// HandlePoint processes a resolved point event. Re-activating the already
// active point is a no-op: no restyle, no tooltip update. Otherwise the
// previous point (if any) is restored to the dim style, the new point is
// emphasized, and the tooltip is updated, in that order.
func (h *Highlighter) HandlePoint(ev PointEvent) {
	if ev.Ref.None() {
		return
	}
	plan := transition(h.active, ev.Ref)
	if !plan.Changed {
		return
	}
	h.checkRef(plan.Emphasize)
	if !plan.Restore.None() {
		h.apply(plan.Restore, PatchOpacity(h.dim))
	}
	h.active = plan.Emphasize
	h.apply(plan.Emphasize, PatchOpacity(h.full))
	if h.tooltip != nil {
		h.tooltip.Update(TooltipUpdate{
			Marker: h.marker,
			Series: ev.Ref.Series,
			Index:  ev.Ref.Index,
			Record: h.record(ev.Ref),
			X:      ev.PointX,
			Y:      ev.PointY,
		})
	}
}

// HandleLeave clears the highlight. When a point is active it is restored to
// the dim style and the tooltip is hidden exactly once; when already idle
// this is a no-op.
func (h *Highlighter) HandleLeave() {
	plan := transition(h.active, NoPoint)
	if !plan.Changed {
		return
	}
	h.apply(plan.Restore, PatchOpacity(h.dim))
	h.active = NoPoint
	if h.tooltip != nil {
		h.tooltip.Hide()
	}
}

// Reset drops the active state and hides the tooltip without restyling
// anything. Used when a redraw replaces the registry: the old handles are
// disposed, so touching them would be an error.
func (h *Highlighter) Reset() {
	if h.active.None() {
		return
	}
	h.active = NoPoint
	if h.tooltip != nil {
		h.tooltip.Hide()
	}
}

// checkRef asserts that ref is inside the handle set's shape. The picker
// resolves refs against the index, so a miss here means the index and the
// registry were built from different data.
func (h *Highlighter) checkRef(ref PointRef) {
	if ref.Series < 0 || ref.Series >= h.handles.SeriesCount() ||
		ref.Index < 0 || ref.Index >= h.handles.SeriesLen(ref.Series) {
		panic(fmt.Sprintf("birch: highlight ref (%d, %d) outside mounted shape; index and registry are out of sync", ref.Series, ref.Index))
	}
}

func (h *Highlighter) record(ref PointRef) Record {
	if h.lookup == nil {
		return nil
	}
	return h.lookup(ref)
}
