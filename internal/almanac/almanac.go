package almanac

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/akmistry/almanac/internal/rangemap"
	"github.com/akmistry/almanac/internal/remap"
)

var (
	ErrOddSeedCount = errors.New("seed ranges need an even number of values")
)

// Stage is one mapping block, e.g. "seed-to-soil map". Source and
// Destination are empty if the label isn't of the "<a>-to-<b> map" form.
type Stage struct {
	Name        string
	Source      string
	Destination string
	Rules       *rangemap.OffsetMap
}

type Almanac struct {
	SeedLabel string
	Seeds     []int64
	Stages    []Stage
}

func (a *Almanac) maps() []*rangemap.OffsetMap {
	maps := make([]*rangemap.OffsetMap, len(a.Stages))
	for i, s := range a.Stages {
		maps[i] = s.Rules
	}
	return maps
}

// SeedPoints treats every seed value as a single seed.
func (a *Almanac) SeedPoints() (remap.RangeSet, error) {
	rs := make(remap.RangeSet, len(a.Seeds))
	for i, s := range a.Seeds {
		r, ok := rangemap.NewIntervalChecked(s, 1)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidAlmanac, "seed %d is too large", s)
		}
		rs[i] = r
	}
	return rs, nil
}

// SeedRanges treats the seed values as (start, length) pairs.
func (a *Almanac) SeedRanges() (remap.RangeSet, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, errors.Wrapf(ErrOddSeedCount, "got %d values", len(a.Seeds))
	}
	rs := make(remap.RangeSet, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		start, length := a.Seeds[i], a.Seeds[i+1]
		if length < 0 {
			return nil, errors.Wrapf(ErrInvalidAlmanac, "seed range %d has negative length %d", i/2, length)
		}
		r, ok := rangemap.NewIntervalChecked(start, length)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidAlmanac, "seed range %d+%d overflows", start, length)
		}
		rs = append(rs, r)
	}
	return rs, nil
}

// Trace returns |seed| followed by its value after each stage.
func (a *Almanac) Trace(seed int64) []int64 {
	trace := make([]int64, 0, len(a.Stages)+1)
	v := seed
	trace = append(trace, v)
	for _, s := range a.Stages {
		v = s.Rules.Translate(v)
		trace = append(trace, v)
	}
	return trace
}

// Lookup returns the final value of |seed| after all stages.
func (a *Almanac) Lookup(seed int64) int64 {
	trace := a.Trace(seed)
	return trace[len(trace)-1]
}

// LowestLocation returns the lowest final value over all individual seeds.
func (a *Almanac) LowestLocation() (int64, error) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		for _, s := range a.Seeds {
			slog.Debug("almanac: seed trace", "seed", s, "trace", a.Trace(s))
		}
	}
	seeds, err := a.SeedPoints()
	if err != nil {
		return 0, err
	}
	return remap.Run(seeds, a.maps()...)
}

// LowestRangeLocation returns the lowest final value over all seed ranges.
func (a *Almanac) LowestRangeLocation() (int64, error) {
	seeds, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	slog.Debug("almanac: seed ranges", "ranges", len(seeds), "stages", len(a.Stages))
	return remap.Run(seeds, a.maps()...)
}
