package seedmap

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidSizeString = errors.New("invalid size string")

	sizePattern = regexp.MustCompile("^([1-9][0-9]*)([KMGTP])?$")
)

// ParseSizeString parses a byte count with an optional binary suffix, e.g.
// "512M" or "8G". Surrounding whitespace is ignored. Sizes must fit in an
// int64.
func ParseSizeString(str string) (uint64, error) {
	str = strings.TrimSpace(str)
	// Special case "0" to simplify the regexp.
	if str == "0" {
		return 0, nil
	}

	parts := sizePattern.FindStringSubmatch(str)
	if len(parts) < 2 {
		return 0, errors.Wrapf(ErrInvalidSizeString, "%q", str)
	}

	size, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "%q", str), ErrInvalidSizeString)
	}
	var shift uint
	switch parts[2] {
	case "K":
		shift = 10
	case "M":
		shift = 20
	case "G":
		shift = 30
	case "T":
		shift = 40
	case "P":
		shift = 50
	}
	if size > uint64(math.MaxInt64)>>shift {
		return 0, errors.Wrapf(ErrInvalidSizeString, "%q overflows", str)
	}
	return size << shift, nil
}
