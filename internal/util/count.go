package util

import (
	"fmt"
)

var suffixes = []string{"", "K", "M", "G", "T", "P", "E"}

func humanReadableCount(n int64) string {
	v := float64(n)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	pow := 0
	for v >= 1000 && pow < len(suffixes)-1 {
		pow++
		v /= 1000
	}

	if pow == 0 {
		return fmt.Sprintf("%s%d", sign, int64(v))
	} else if v < 10 {
		return fmt.Sprintf("%s%0.2f%s", sign, v, suffixes[pow])
	} else if v < 100 {
		return fmt.Sprintf("%s%0.1f%s", sign, v, suffixes[pow])
	}
	return fmt.Sprintf("%s%0.0f%s", sign, v, suffixes[pow])
}

// Count is a number of points, printed with an SI suffix.
type Count int64

func (c Count) String() string {
	return humanReadableCount(int64(c))
}
