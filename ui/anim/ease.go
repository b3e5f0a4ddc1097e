package anim

// Clamp01 limits t to the unit interval.
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseOutCubic starts fast and decelerates into the target: 1-(1-t)^3.
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

// Lerp interpolates between a and b at position t ∈ [0,1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
