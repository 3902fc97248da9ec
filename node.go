package birch

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// NodeKind distinguishes rendering behavior for a Node.
type NodeKind uint8

const (
	NodeContainer NodeKind = iota // group node with no visual output
	NodeDot                       // filled circle with an optional stroke ring
	NodeTick                      // short axis-aligned line segment
	NodeImage                     // user-provided image drawn at the node origin
)

// TickOrientation selects the axis a tick node extends along.
type TickOrientation uint8

const (
	TickVertical   TickOrientation = iota // extends downward from (X, Y)
	TickHorizontal                        // extends rightward from (X, Y)
)

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic — birch is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the element type of the chart tree. A single flat struct is used
// for all node kinds to avoid interface dispatch on the draw path. Chart
// nodes translate but never rotate or scale, so a node's screen position is
// the plain sum of its ancestors' offsets.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Kind NodeKind

	// Hierarchy
	Parent   *Node
	children []*Node

	// Position (local, pixels)
	X, Y float64

	// Visual attributes. Radius applies to dot nodes, Length and Orientation
	// to tick nodes. FillOpacity scales the fill alpha only; strokes render
	// at the full color alpha.
	Radius      float64
	Length      float64
	Orientation TickOrientation
	Color       Color
	FillOpacity float64
	StrokeWidth float64
	Visible     bool

	// Ordering among siblings
	ZIndex int

	// Metadata
	UserData any

	// Image field (NodeImage)
	img *ebiten.Image

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Color = ColorWhite
	n.FillOpacity = 1
	n.Visible = true
	n.childrenSorted = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Kind: NodeContainer}
	nodeDefaults(n)
	return n
}

// NewDot creates a dot node that renders a filled circle of the given radius.
func NewDot(name string, radius float64) *Node {
	n := &Node{Name: name, Kind: NodeDot, Radius: radius}
	nodeDefaults(n)
	return n
}

// NewTick creates a tick node that renders a line segment of the given
// length. Vertical ticks extend downward from the node position, horizontal
// ticks extend rightward.
func NewTick(name string, length float64, orientation TickOrientation) *Node {
	n := &Node{Name: name, Kind: NodeTick, Length: length, Orientation: orientation, StrokeWidth: 1}
	nodeDefaults(n)
	return n
}

// NewImageNode creates a node that draws a user-provided image with its
// top-left corner at the node position. The caller retains ownership of img.
func NewImageNode(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Kind: NodeImage, img: img}
	nodeDefaults(n)
	return n
}

// SetImage replaces the image drawn by an image node.
func (n *Node) SetImage(img *ebiten.Image) {
	n.img = img
}

// Image returns the user-provided image, or nil if not set.
func (n *Node) Image() *ebiten.Image {
	return n.img
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("birch: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("birch: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("birch: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("birch: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	n.childrenSorted = false
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
	n.childrenSorted = true
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// WorldPosition returns the node's screen position, the sum of its own
// offset and every ancestor's.
func (n *Node) WorldPosition() Vec2 {
	pos := Vec2{X: n.X, Y: n.Y}
	for p := n.Parent; p != nil; p = p.Parent {
		pos.X += p.X
		pos.Y += p.Y
	}
	return pos
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.img = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// DisposeChildren disposes every child of this node. Used when remounting a
// layer whose prior contents must not be reachable afterwards.
func (n *Node) DisposeChildren() {
	for len(n.children) > 0 {
		n.children[len(n.children)-1].Dispose()
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
