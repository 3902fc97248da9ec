package birch

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// nrgba converts the color to ebiten's 8-bit non-premultiplied form with the
// alpha scaled by opacity.
func (c Color) nrgba(opacity float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A*opacity) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// drawTree renders the subtree rooted at n onto dst. ox and oy are the
// accumulated offsets of n's ancestors.
func drawTree(dst *ebiten.Image, n *Node, ox, oy float64) {
	if !n.Visible || n.disposed {
		return
	}
	x := ox + n.X
	y := oy + n.Y

	switch n.Kind {
	case NodeDot:
		if n.FillOpacity > 0 {
			vector.DrawFilledCircle(dst, float32(x), float32(y), float32(n.Radius), n.Color.nrgba(n.FillOpacity), true)
		}
		if n.StrokeWidth > 0 {
			vector.StrokeCircle(dst, float32(x), float32(y), float32(n.Radius), float32(n.StrokeWidth), n.Color.nrgba(1), true)
		}
	case NodeTick:
		w := n.StrokeWidth
		if w <= 0 {
			w = 1
		}
		x2, y2 := x, y
		if n.Orientation == TickVertical {
			y2 += n.Length
		} else {
			x2 += n.Length
		}
		vector.StrokeLine(dst, float32(x), float32(y), float32(x2), float32(y2), float32(w), n.Color.nrgba(n.FillOpacity), true)
	case NodeImage:
		if n.img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			dst.DrawImage(n.img, op)
		}
	}

	// Traverse children (ZIndex sorted if needed)
	if len(n.children) == 0 {
		return
	}
	children := n.children
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil {
		children = n.sortedChildren
	}
	for _, child := range children {
		drawTree(dst, child, x, y)
	}
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order for a node.
// Uses insertion sort: zero allocations, stable, and optimal for the typical
// case of few children that are nearly sorted (O(n) when already sorted).
func rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	// Stable insertion sort by ZIndex.
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// drawOrder returns the children of n in the order they would be drawn.
// Exposed for tests and for hosts that need to mirror traversal order.
func drawOrder(n *Node) []*Node {
	if len(n.children) == 0 {
		return nil
	}
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil {
		return n.sortedChildren
	}
	return n.children
}
