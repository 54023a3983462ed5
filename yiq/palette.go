package yiq

// Closest returns the index of the palette entry nearest to c, or -1 if the palette is empty.
// Ties go to the earliest entry.
func Closest(c YIQ, palette []YIQ) int {
	match := -1
	var best float32
	for i, p := range palette {
		d := c.SquaredDistance(p)
		if match == -1 || d < best {
			match = i
			best = d
		}
	}
	return match
}
