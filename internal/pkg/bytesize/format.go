package bytesize

import (
	"math"
	"strconv"
)

var units = []string{"Bytes", "KB", "MB", "GB"}

// Format renders n using base-1024 units with at most two decimals and no
// trailing zeros, e.g. 1536 -> "1.5 KB".
func Format(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}

	value := float64(n)
	i := 0
	for value >= 1024 && i < len(units)-1 {
		value /= 1024
		i++
	}
	value = math.Round(value*100) / 100

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + units[i]
}
