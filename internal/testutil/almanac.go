package testutil

import (
	"testing"

	"github.com/akmistry/almanac/internal/rangemap"
)

// SampleAlmanac is the worked example almanac. The lowest location is 35
// for single seeds and 46 for seed ranges.
const SampleAlmanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// PointCounts expands |ranges| into a multiset of points. Only use with
// small ranges.
func PointCounts(ranges []rangemap.Interval) map[int64]int {
	counts := make(map[int64]int)
	for _, r := range ranges {
		for p := r.Start; p < r.End; p++ {
			counts[p]++
		}
	}
	return counts
}

// MapPoints maps every point of |ranges| through |m| one at a time.
func MapPoints(ranges []rangemap.Interval, m *rangemap.OffsetMap) map[int64]int {
	counts := make(map[int64]int)
	for _, r := range ranges {
		for p := r.Start; p < r.End; p++ {
			counts[m.Translate(p)]++
		}
	}
	return counts
}

// CheckPointCounts verifies that |got| covers exactly the points in
// |expected|, with the same multiplicity.
func CheckPointCounts(t *testing.T, got []rangemap.Interval, expected map[int64]int) {
	t.Helper()

	gotCounts := PointCounts(got)
	for p, n := range expected {
		if gotCounts[p] != n {
			t.Errorf("point %d seen %d times, expected %d", p, gotCounts[p], n)
		}
	}
	for p, n := range gotCounts {
		if _, ok := expected[p]; !ok {
			t.Errorf("unexpected point %d seen %d times", p, n)
		}
	}
}

// CheckNoEmpty fails if any of |ranges| is empty.
func CheckNoEmpty(t *testing.T, ranges []rangemap.Interval) {
	t.Helper()

	for _, r := range ranges {
		if r.Empty() {
			t.Errorf("empty range %v", r)
		}
	}
}
