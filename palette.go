package birch

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette returns a categorical color function for series indices.
// Hues advance by the golden angle so neighboring series stay
// distinguishable no matter how many there are.
func DefaultPalette() func(series int) Color {
	return func(i int) Color {
		h := math.Mod(float64(i)*137.5+210, 360)
		c := colorful.Hsl(h, 0.62, 0.56).Clamped()
		return Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
}
