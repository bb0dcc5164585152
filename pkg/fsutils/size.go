package fsutils

import "strconv"

// GetSizeShortText returns a human readable size string.
func GetSizeShortText(size uint64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatUint(size, 10) + "B"
	}
	div, exp := uint64(unit), 0
	for n := size / unit; n >= unit && exp < 3; n /= unit {
		div *= unit
		exp++
	}
	// Rounding to nearest
	val := (size + div/2) / div
	// If rounding up pushes it to the next unit
	if val >= unit && exp < 3 { // TB is our last unit
		val /= unit
		exp++
	}
	units := []string{"KB", "MB", "GB", "TB"}
	return strconv.FormatUint(val, 10) + units[exp]
}
