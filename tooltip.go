package birch

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TooltipUpdate carries the newly active point to a tooltip. X and Y are the
// pixel position of the point itself, not the pointer.
type TooltipUpdate struct {
	Marker MarkerKind
	Series int
	Index  int
	Record Record
	X, Y   float64
}

// Tooltip is the presentation collaborator fed by the highlighter. Update is
// called once per newly active point (not per pointer move) and Hide exactly
// once when the highlight clears. A chart without a tooltip simply has no
// subscriber; the core never requires one.
type Tooltip interface {
	Update(TooltipUpdate)
	Hide()
}

// BasicTooltip is a minimal built-in tooltip that renders the active record
// with the debug font onto a small image node. Hosts wanting styled tooltips
// should implement Tooltip themselves; this one exists so the examples and
// quick prototypes have something visible out of the box.
type BasicTooltip struct {
	node *Node
	img  *ebiten.Image

	// Format overrides the default one-line record formatting.
	Format func(TooltipUpdate) string

	// Offset shifts the tooltip away from the point. Default (10, -20).
	Offset Vec2
}

// NewBasicTooltip allocates the tooltip's backing image. Add Node() to the
// chart's root (or any visible tree) to display it.
func NewBasicTooltip() *BasicTooltip {
	img := ebiten.NewImage(220, 32)
	n := NewImageNode("tooltip", img)
	n.Visible = false
	n.ZIndex = 1000
	return &BasicTooltip{node: n, img: img, Offset: Vec2{X: 10, Y: -20}}
}

// Node returns the image node the tooltip draws into.
func (t *BasicTooltip) Node() *Node {
	return t.node
}

// Update redraws the tooltip text and moves it next to the active point.
func (t *BasicTooltip) Update(u TooltipUpdate) {
	format := t.Format
	if format == nil {
		format = formatTooltip
	}
	t.img.Clear()
	t.img.Fill(color.NRGBA{A: 0xb4})
	ebitenutil.DebugPrint(t.img, format(u))
	t.node.X = u.X + t.Offset.X
	t.node.Y = u.Y + t.Offset.Y
	t.node.Visible = true
}

// Hide makes the tooltip invisible until the next Update.
func (t *BasicTooltip) Hide() {
	t.node.Visible = false
}

// formatTooltip renders a record as "series 1 [circle] x=3 y=7.5". Keys are
// sorted so the output is stable across map iteration order.
func formatTooltip(u TooltipUpdate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "series %d [%s]", u.Series, u.Marker)
	keys := make([]string, 0, len(u.Record))
	for k := range u.Record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, u.Record[k])
	}
	return b.String()
}
