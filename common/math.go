package common

// Logical screen size in pixels. The camera viewport and UI layout both
// derive from these.
const (
	BaseWidth  = 960
	BaseHeight = 512
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
