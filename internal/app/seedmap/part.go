package seedmap

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/akmistry/almanac/internal/almanac"
)

var (
	ErrInvalidPart = errors.New("invalid part")
)

type Part int

const (
	PartAll Part = iota
	// Each seed value is a single seed.
	PartOne
	// Seed values are (start, length) pairs.
	PartTwo
)

func ParsePart(str string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "", "all":
		return PartAll, nil
	case "1":
		return PartOne, nil
	case "2":
		return PartTwo, nil
	}
	return 0, errors.Wrapf(ErrInvalidPart, "%q, expected 1, 2 or all", str)
}

type Result struct {
	Part  Part
	Value int64
}

func (r Result) String() string {
	return fmt.Sprintf("part %d: %d", r.Part, r.Value)
}

// Solve computes the lowest location for |part|, or for both parts if
// |part| is PartAll.
func Solve(a *almanac.Almanac, part Part) ([]Result, error) {
	var results []Result
	if part == PartAll || part == PartOne {
		v, err := a.LowestLocation()
		if err != nil {
			return nil, errors.Wrap(err, "part 1")
		}
		results = append(results, Result{Part: PartOne, Value: v})
	}
	if part == PartAll || part == PartTwo {
		v, err := a.LowestRangeLocation()
		if err != nil {
			return nil, errors.Wrap(err, "part 2")
		}
		results = append(results, Result{Part: PartTwo, Value: v})
	}
	return results, nil
}
