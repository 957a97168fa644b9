package fsutils

import "strconv"

var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// SizeText formats a byte count as a short human readable string with
// 1024-based units, rounded to the nearest whole unit. TB is the last
// unit, larger values stay in TB.
func SizeText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}

	div := int64(unit)
	exp := 0
	for size/div >= unit && exp < len(sizeUnits)-1 {
		div *= unit
		exp++
	}

	val := (size + div/2) / div
	if val >= unit && exp < len(sizeUnits)-1 {
		// Rounding carried into the next unit.
		val /= unit
		exp++
	}
	return strconv.FormatInt(val, 10) + sizeUnits[exp]
}
