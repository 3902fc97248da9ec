package birch

import "fmt"

// DefaultRugSize is the tick length used when RugSize is unset.
const DefaultRugSize = 8

// rugConfig carries the options mountRugs needs from the scatter config.
type rugConfig struct {
	bounds  Rect
	size    float64
	xRug    bool
	yRug    bool
	opacity float64
}

// mountRugs mounts marginal distribution strips under parent: vertical ticks
// along the bottom edge of the plot for the x rug, horizontal ticks along
// the left edge for the y rug. Ticks take their series' color at the dim
// opacity so they read as context, not data. Only the accessors a configured
// rug needs are evaluated.
func mountRugs(parent *Node, series []Series, x, y Accessor, xs, ys Scale, colorFor func(int) Color, cfg rugConfig) error {
	parent.DisposeChildren()
	if !cfg.xRug && !cfg.yRug {
		return nil
	}
	size := cfg.size
	if size <= 0 {
		size = DefaultRugSize
	}
	for si, s := range series {
		col := colorFor(si)
		for pi, r := range s {
			if cfg.xRug {
				xv, err := x(r)
				if err != nil {
					parent.DisposeChildren()
					return fmt.Errorf("birch: x accessor on series %d point %d: %w", si, pi, err)
				}
				tick := NewTick("xrug", size, TickVertical)
				tick.X = xs(xv)
				tick.Y = cfg.bounds.Y + cfg.bounds.Height - size
				tick.Color = col
				tick.FillOpacity = cfg.opacity
				parent.AddChild(tick)
			}
			if cfg.yRug {
				yv, err := y(r)
				if err != nil {
					parent.DisposeChildren()
					return fmt.Errorf("birch: y accessor on series %d point %d: %w", si, pi, err)
				}
				tick := NewTick("yrug", size, TickHorizontal)
				tick.X = cfg.bounds.X
				tick.Y = ys(yv)
				tick.Color = col
				tick.FillOpacity = cfg.opacity
				parent.AddChild(tick)
			}
		}
	}
	return nil
}
