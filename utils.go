package bluenoise

// maxint returns the highest of two ints
func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minint returns the lowest of two ints
func minint(a, b int) int {
	if a < b {
		return a
	}
	return b
}
