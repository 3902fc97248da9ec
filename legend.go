package birch

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Peer is a collaborator mounted by the orchestrator on every redraw, such
// as a legend or a brush overlay. Mount is called with a fresh parent
// container; whatever the peer added on the previous redraw is already gone.
type Peer interface {
	Mount(parent *Node)
}

// PeerFunc adapts a plain function to the Peer interface.
type PeerFunc func(parent *Node)

// Mount calls f(parent).
func (f PeerFunc) Mount(parent *Node) {
	f(parent)
}

// Legend is a basic horizontal series legend: one color swatch and one label
// per series, rendered with the debug font. Position it by setting X and Y.
type Legend struct {
	Names    []string
	ColorFor func(series int) Color
	X, Y     float64
}

// NewLegend creates a legend for the named series. colorFor should be the
// same palette the chart uses; nil selects DefaultPalette.
func NewLegend(names []string, colorFor func(series int) Color) *Legend {
	if colorFor == nil {
		colorFor = DefaultPalette()
	}
	return &Legend{Names: names, ColorFor: colorFor}
}

// Mount lays the legend out left to right under parent.
func (l *Legend) Mount(parent *Node) {
	root := NewContainer("legend")
	root.X = l.X
	root.Y = l.Y
	parent.AddChild(root)

	// The debug font glyphs are 6x16 pixels.
	const glyphW, glyphH = 6, 16
	x := 0.0
	for i, name := range l.Names {
		swatch := NewDot("legend-swatch", 4)
		swatch.X = x + 4
		swatch.Y = glyphH / 2
		swatch.Color = l.ColorFor(i)
		root.AddChild(swatch)
		x += 12

		w := len(name)*glyphW + 2
		img := ebiten.NewImage(max(w, 1), glyphH)
		ebitenutil.DebugPrint(img, name)
		label := NewImageNode("legend-label", img)
		label.X = x
		root.AddChild(label)
		x += float64(w) + 10
	}
}
