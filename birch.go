package birch

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Conversion to ebiten's color space occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node color.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// PointRef identifies a single data point as a (series, point) index pair.
// Both indices refer to the normalized data passed to the last mount.
type PointRef struct {
	Series int
	Index  int
}

// NoPoint is the sentinel ref meaning "no point". Both indices are -1; a ref
// with only one index set to -1 never occurs.
var NoPoint = PointRef{Series: -1, Index: -1}

// None reports whether the ref is the NoPoint sentinel.
func (r PointRef) None() bool {
	return r == NoPoint
}

// PointEvent is delivered to a PointSink whenever the pointer resolves to a
// nearest data point. GlobalX/GlobalY is the pointer position; PointX/PointY
// is the pixel position of the resolved point.
type PointEvent struct {
	Ref     PointRef
	GlobalX float64
	GlobalY float64
	PointX  float64
	PointY  float64
}

// MarkerKind identifies the glyph a series uses for its points. Scatter
// series always use circles; the kind is carried on tooltip updates so a
// custom Tooltip can mirror the plot's glyph.
type MarkerKind uint8

const (
	MarkerCircle MarkerKind = iota // filled circle (scatter points)
	MarkerSquare                   // filled square
	MarkerTick                     // short line segment (rug strips)
)

// String returns the lowercase name of the marker kind.
func (m MarkerKind) String() string {
	switch m {
	case MarkerCircle:
		return "circle"
	case MarkerSquare:
		return "square"
	case MarkerTick:
		return "tick"
	default:
		return "unknown"
	}
}
