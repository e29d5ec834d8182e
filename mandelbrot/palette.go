package mandelbrot

// Intensity converts an escape result into a gray level. Points that escape
// quickly are bright, points that never escape are black. Counts of 256 and
// above wrap around like the byte arithmetic they come from.
func Intensity(count uint, escaped bool) byte {
	if !escaped {
		return 0
	}
	return 255 - byte(count)
}
