package remap

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/akmistry/almanac/internal/rangemap"
	"github.com/akmistry/almanac/internal/util"
)

var (
	ErrEmptyRangeSet = errors.New("empty range set")
)

// ApplyStage maps every point of |in| through |m|. Points in a stored
// interval are shifted by its offset, others pass through unchanged. Each
// point is mapped exactly once, so the output covers as many points as the
// input. |in| is not modified.
//
// Shifted ranges must stay within int64; Parse rejects rules whose source
// or destination range would overflow.
func ApplyStage(in RangeSet, m *rangemap.OffsetMap) RangeSet {
	work := make([]rangemap.Interval, 0, len(in))
	for _, r := range in {
		if !r.Empty() {
			work = append(work, r)
		}
	}

	out := make(RangeSet, 0, len(work))
	for len(work) > 0 {
		r := util.SliceLast(work)
		work = util.SlicePopLast(work)

		if !m.Overlaps(r) {
			out = append(out, r)
			continue
		}

		// Everything in [r.Start, next) has been dealt with.
		next := r.Start
		for _, e := range m.Overlapping(r) {
			overlap, ok := r.Intersect(e.Interval)
			if !ok {
				continue
			}
			out = append(out, overlap.Shift(e.Offset))
			if next < overlap.Start {
				work = append(work, rangemap.Interval{Start: next, End: overlap.Start})
			}
			next = overlap.End
		}
		if next < r.End {
			work = append(work, rangemap.Interval{Start: next, End: r.End})
		}
	}
	return out
}

// Apply runs |in| through each stage in order.
func Apply(in RangeSet, stages ...*rangemap.OffsetMap) RangeSet {
	rs := in
	for i, m := range stages {
		rs = ApplyStage(rs, m)
		begin, _ := m.Begin()
		slog.Debug("remap: applied stage", "stage", i, "rules", m.Len(),
			"begin", begin, "end", m.End(), "ranges", len(rs),
			"points", util.Count(rs.Points()))
	}
	return rs
}

// Lowest returns the smallest start in |rs|.
func Lowest(rs RangeSet) (int64, error) {
	var lowest int64
	found := false
	for _, r := range rs {
		if r.Empty() {
			continue
		}
		if !found || r.Start < lowest {
			lowest = r.Start
			found = true
		}
	}
	if !found {
		return 0, ErrEmptyRangeSet
	}
	return lowest, nil
}

// Run maps |seeds| through every stage and returns the lowest resulting
// value.
func Run(seeds RangeSet, stages ...*rangemap.OffsetMap) (int64, error) {
	return Lowest(Apply(seeds, stages...))
}

// RangeSet is an unordered collection of intervals, possibly overlapping.
type RangeSet []rangemap.Interval

// Points returns the total length of all ranges. Overlapping points are
// counted once per range.
func (rs RangeSet) Points() int64 {
	var n int64
	for _, r := range rs {
		n += r.Len()
	}
	return n
}

// Normalize returns a sorted copy of |rs| with empty ranges dropped and
// overlapping or adjacent ranges merged.
func (rs RangeSet) Normalize() RangeSet {
	sorted := make(RangeSet, 0, len(rs))
	for _, r := range rs {
		if !r.Empty() {
			sorted = append(sorted, r)
		}
	}
	slices.SortFunc(sorted, func(a, b rangemap.Interval) int {
		if a.Start != b.Start {
			return cmp.Compare(a.Start, b.Start)
		}
		return cmp.Compare(a.End, b.End)
	})

	var out RangeSet
	for _, r := range sorted {
		if len(out) > 0 && util.SliceLast(out).End >= r.Start {
			last := &out[len(out)-1]
			last.End = max(last.End, r.End)
			continue
		}
		out = append(out, r)
	}
	return out
}
