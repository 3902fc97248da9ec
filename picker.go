package birch

// PointSink receives resolved pointer events from a Picker. HandlePoint is
// called for every pointer move that lands inside the plot rectangle, with
// the nearest point, even when it is the same point as last time. HandleLeave
// is called exactly once when the pointer goes from inside to outside.
type PointSink interface {
	HandlePoint(PointEvent)
	HandleLeave()
}

// Picker turns raw pointer positions into point events. It owns the
// inside/outside transition: queries happen only inside the plot rectangle,
// and a single leave event fires on exit. Deduplicating repeated hits on the
// same point is the sink's job, not the picker's.
type Picker struct {
	index  *PointIndex
	bounds Rect
	sink   PointSink
	marker *Node // optional crosshair dot mirroring the resolved point

	inside  bool
	hasLast bool
	lastX   float64
	lastY   float64
}

// NewPicker wires an index to a sink. marker may be nil; when present, it is
// moved to the resolved point's position and shown while the pointer is
// inside the plot rectangle.
func NewPicker(index *PointIndex, bounds Rect, sink PointSink, marker *Node) *Picker {
	return &Picker{index: index, bounds: bounds, sink: sink, marker: marker}
}

// PointerMoved feeds one pointer position in screen pixels. Positions equal
// to the previous call are ignored, so hosts can forward the cursor every
// frame without flooding the sink.
func (p *Picker) PointerMoved(x, y float64) {
	if p.hasLast && x == p.lastX && y == p.lastY {
		return
	}
	p.lastX, p.lastY, p.hasLast = x, y, true
	if !p.bounds.Contains(x, y) {
		p.leave()
		return
	}
	if p.index.Len() == 0 {
		return // empty chart: no events, ever
	}
	ref, ok := p.index.Nearest(x, y)
	if !ok {
		return
	}
	p.inside = true
	pos, _ := p.index.PositionOf(ref)
	if p.marker != nil {
		p.marker.X = pos.X
		p.marker.Y = pos.Y
		p.marker.Visible = true
	}
	p.sink.HandlePoint(PointEvent{
		Ref:     ref,
		GlobalX: x,
		GlobalY: y,
		PointX:  pos.X,
		PointY:  pos.Y,
	})
}

// PointerExited signals that the pointer left the chart surface entirely
// (window exit, focus loss). Fires a leave if the pointer was inside.
func (p *Picker) PointerExited() {
	p.hasLast = false
	p.leave()
}

func (p *Picker) leave() {
	if !p.inside {
		return
	}
	p.inside = false
	if p.marker != nil {
		p.marker.Visible = false
	}
	p.sink.HandleLeave()
}
