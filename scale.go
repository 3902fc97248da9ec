package birch

// Scale maps a data-space value to a pixel coordinate. Scales are provided
// by the host; birch only requires that they are pure functions producing
// finite pixels for every value the accessors yield.
type Scale func(v float64) float64

// Linear returns a scale mapping the domain [d0, d1] onto the range
// [r0, r1]. The range may be inverted, which is the usual arrangement for a
// Y axis in screen coordinates. A degenerate domain maps everything to the
// middle of the range.
func Linear(d0, d1, r0, r1 float64) Scale {
	span := d1 - d0
	if span == 0 {
		mid := (r0 + r1) / 2
		return func(float64) float64 { return mid }
	}
	k := (r1 - r0) / span
	return func(v float64) float64 {
		return r0 + (v-d0)*k
	}
}
