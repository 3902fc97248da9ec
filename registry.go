package birch

import "fmt"

// Style is the full visual state of a mounted point.
type Style struct {
	Radius      float64
	Color       Color
	FillOpacity float64
	StrokeWidth float64
}

// StylePatch updates a subset of style fields. nil fields are left untouched,
// so a patch can change opacity without knowing the point's radius or color.
type StylePatch struct {
	Radius      *float64
	Color       *Color
	FillOpacity *float64
	StrokeWidth *float64
}

// PatchOpacity returns a patch that sets only the fill opacity.
func PatchOpacity(v float64) StylePatch {
	return StylePatch{FillOpacity: &v}
}

// PatchRadius returns a patch that sets only the radius.
func PatchRadius(v float64) StylePatch {
	return StylePatch{Radius: &v}
}

// Handle is one mounted point: a stable reference the highlighter can
// restyle without walking the tree.
type Handle struct {
	Ref  PointRef
	node *Node
}

// Node returns the dot node backing this handle.
func (h *Handle) Node() *Node {
	return h.node
}

// Style reads the handle's current visual state back from its node.
func (h *Handle) Style() Style {
	return Style{
		Radius:      h.node.Radius,
		Color:       h.node.Color,
		FillOpacity: h.node.FillOpacity,
		StrokeWidth: h.node.StrokeWidth,
	}
}

// Apply writes the patch's non-nil fields to the node.
func (h *Handle) Apply(p StylePatch) {
	if p.Radius != nil {
		h.node.Radius = *p.Radius
	}
	if p.Color != nil {
		h.node.Color = *p.Color
	}
	if p.FillOpacity != nil {
		h.node.FillOpacity = *p.FillOpacity
	}
	if p.StrokeWidth != nil {
		h.node.StrokeWidth = *p.StrokeWidth
	}
}

// StyleFunc computes the mount style for one record of one series.
type StyleFunc func(r Record, series int) (Style, error)

// Registry owns the mounted point handles, nested per series in the same
// shape as the data they were mounted from. It is rebuilt wholesale on every
// redraw; handles from a previous mount are disposed and must not be reused.
type Registry struct {
	handles [][]*Handle
}

// mountPoints mounts one dot node per record under parent and returns the
// registry of handles. Any prior children of parent are disposed first, so
// remounting fully replaces the previous registry's nodes. Positions come
// from the accessors mapped through the scales; styleFor supplies the
// per-point mount style. An accessor or style error aborts the mount,
// leaving parent empty.
func mountPoints(parent *Node, series []Series, x, y Accessor, xs, ys Scale, styleFor StyleFunc) (*Registry, error) {
	parent.DisposeChildren()
	rg := &Registry{handles: make([][]*Handle, len(series))}
	for si, s := range series {
		rg.handles[si] = make([]*Handle, len(s))
		for pi, r := range s {
			xv, err := x(r)
			if err != nil {
				parent.DisposeChildren()
				return nil, fmt.Errorf("birch: x accessor on series %d point %d: %w", si, pi, err)
			}
			yv, err := y(r)
			if err != nil {
				parent.DisposeChildren()
				return nil, fmt.Errorf("birch: y accessor on series %d point %d: %w", si, pi, err)
			}
			st, err := styleFor(r, si)
			if err != nil {
				parent.DisposeChildren()
				return nil, fmt.Errorf("birch: style for series %d point %d: %w", si, pi, err)
			}
			ref := PointRef{Series: si, Index: pi}
			node := NewDot(fmt.Sprintf("point-%d-%d", si, pi), st.Radius)
			node.X = xs(xv)
			node.Y = ys(yv)
			node.Color = st.Color
			node.FillOpacity = st.FillOpacity
			node.StrokeWidth = st.StrokeWidth
			node.UserData = ref
			parent.AddChild(node)
			rg.handles[si][pi] = &Handle{Ref: ref, node: node}
		}
	}
	return rg, nil
}

// SeriesCount returns the number of mounted series.
func (rg *Registry) SeriesCount() int {
	return len(rg.handles)
}

// SeriesLen returns the number of points mounted for series i, or 0 if i is
// out of range.
func (rg *Registry) SeriesLen(i int) int {
	if i < 0 || i >= len(rg.handles) {
		return 0
	}
	return len(rg.handles[i])
}

// Shape returns the per-series point counts of the current mount.
func (rg *Registry) Shape() []int {
	shape := make([]int, len(rg.handles))
	for i, s := range rg.handles {
		shape[i] = len(s)
	}
	return shape
}

// Handle returns the handle for ref. A ref outside the mounted shape means
// the caller's index and this registry disagree about the data, which is a
// bug, so it panics rather than returning a zero handle.
func (rg *Registry) Handle(ref PointRef) *Handle {
	if ref.Series < 0 || ref.Series >= len(rg.handles) || ref.Index < 0 || ref.Index >= len(rg.handles[ref.Series]) {
		panic(fmt.Sprintf("birch: point ref (%d, %d) outside registry shape %v; index and registry are out of sync", ref.Series, ref.Index, rg.Shape()))
	}
	return rg.handles[ref.Series][ref.Index]
}

// Apply restyles the point identified by ref. Panics on an out-of-range ref.
func (rg *Registry) Apply(ref PointRef, p StylePatch) {
	rg.Handle(ref).Apply(p)
}
