package remap

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akmistry/almanac/internal/rangemap"
	"github.com/akmistry/almanac/internal/testutil"
)

type rule struct {
	r      rangemap.Interval
	offset int64
}

func newMap(rules ...rule) *rangemap.OffsetMap {
	var m rangemap.OffsetMap
	for _, r := range rules {
		m.Add(r.r, r.offset)
	}
	return &m
}

func iv(start, end int64) rangemap.Interval {
	return rangemap.Interval{Start: start, End: end}
}

func TestApplyStage(t *testing.T) {
	cases := map[string]struct {
		in    RangeSet
		rules []rule
		exp   RangeSet
	}{
		"Empty": {
			in:  nil,
			exp: nil,
		},
		"IdentityEmptyMap": {
			in:  RangeSet{iv(0, 10), iv(5, 7), iv(-3, 2)},
			exp: RangeSet{iv(-3, 10)},
		},
		"NoOverlap": {
			in:    RangeSet{iv(0, 10)},
			rules: []rule{{iv(10, 20), 5}, {iv(-10, 0), 5}},
			exp:   RangeSet{iv(0, 10)},
		},
		"Contained": {
			in:    RangeSet{iv(79, 93)},
			rules: []rule{{iv(98, 100), -48}, {iv(50, 98), 2}},
			exp:   RangeSet{iv(81, 95)},
		},
		"Split": {
			in:    RangeSet{iv(0, 10)},
			rules: []rule{{iv(3, 6), 100}},
			exp:   RangeSet{iv(0, 3), iv(6, 10), iv(103, 106)},
		},
		"SeveralRules": {
			in:    RangeSet{iv(0, 20)},
			rules: []rule{{iv(2, 3), 100}, {iv(5, 8), -5}, {iv(15, 30), 1000}},
			// [0,2) [3,5) [8,15) pass through, [2,3)->102, [5,8)->[0,3), [15,20)->1015
			exp: RangeSet{iv(0, 3), iv(3, 5), iv(8, 15), iv(102, 103), iv(1015, 1020)},
		},
		"AdjacentRules": {
			in:    RangeSet{iv(0, 10)},
			rules: []rule{{iv(0, 5), 10}, {iv(5, 10), 20}},
			exp:   RangeSet{iv(10, 15), iv(25, 30)},
		},
		"EmptyInputRangesDropped": {
			in:    RangeSet{iv(5, 5), iv(9, 3), iv(1, 2)},
			rules: []rule{{iv(0, 100), 1}},
			exp:   RangeSet{iv(2, 3)},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m := newMap(tc.rules...)
			in := append(RangeSet(nil), tc.in...)

			out := ApplyStage(in, m)
			testutil.CheckNoEmpty(t, out)
			if diff := cmp.Diff(tc.exp.Normalize(), out.Normalize()); diff != "" {
				t.Errorf("ApplyStage() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.in, in, "input modified")
		})
	}
}

func TestApplyStage_SplitPoints(t *testing.T) {
	m := newMap(rule{iv(3, 6), 100})
	out := ApplyStage(RangeSet{iv(0, 10)}, m)

	assert.Len(t, out, 3)
	assert.ElementsMatch(t, RangeSet{iv(0, 3), iv(103, 106), iv(6, 10)}, out)
	testutil.CheckPointCounts(t, out, map[int64]int{
		0: 1, 1: 1, 2: 1,
		103: 1, 104: 1, 105: 1,
		6: 1, 7: 1, 8: 1, 9: 1,
	})
}

func TestApplyStage_Offset(t *testing.T) {
	m := newMap(rule{iv(-100, 100), -7})
	out := ApplyStage(RangeSet{iv(-20, 40)}, m)
	assert.Equal(t, RangeSet{iv(-27, 33)}, out)
}

func TestApplyStage_Random(t *testing.T) {
	for i := 0; i < 50; i++ {
		var rules []rule
		for p := int64(-500); p < 500; {
			length := rand.Int63n(50) + 1
			if rand.Intn(2) == 0 {
				rules = append(rules, rule{rangemap.NewInterval(p, length), rand.Int63n(2000) - 1000})
			}
			p += length
		}
		m := newMap(rules...)

		var in RangeSet
		for j := 0; j < 20; j++ {
			in = append(in, rangemap.NewInterval(rand.Int63n(1000)-500, rand.Int63n(100)+1))
		}

		out := ApplyStage(in, m)
		testutil.CheckNoEmpty(t, out)
		require.Equal(t, in.Points(), out.Points(), "point count not conserved")
		testutil.CheckPointCounts(t, out, testutil.MapPoints(in, m))

		// Each input range is split at most once per rule boundary.
		maxOut := len(in) * (2*m.Len() + 1)
		assert.LessOrEqual(t, len(out), maxOut)
	}
}

func TestApplyStage_Overlapping(t *testing.T) {
	// Input ranges may overlap, and each copy is mapped.
	m := newMap(rule{iv(0, 10), 50})
	in := RangeSet{iv(0, 5), iv(3, 8)}
	out := ApplyStage(in, m)
	testutil.CheckPointCounts(t, out, testutil.MapPoints(in, m))
	assert.Equal(t, int64(10), out.Points())
}

func TestApply(t *testing.T) {
	s1 := newMap(rule{iv(98, 100), -48}, rule{iv(50, 98), 2})
	s2 := newMap(rule{iv(0, 60), 1000})

	out := Apply(RangeSet{iv(79, 93), iv(55, 68)}, s1)
	assert.ElementsMatch(t, RangeSet{iv(81, 95), iv(57, 70)}, out)

	out = Apply(RangeSet{iv(79, 93), iv(55, 68)}, s1, s2)
	assert.ElementsMatch(t, RangeSet{iv(81, 95), iv(1057, 1060), iv(60, 70)}, out)

	out = Apply(RangeSet{iv(1, 2)})
	assert.Equal(t, RangeSet{iv(1, 2)}, out)
}

func TestApply_DebugLog(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(old)

	s1 := newMap(rule{iv(98, 100), -48}, rule{iv(50, 98), 2})
	out := Apply(RangeSet{iv(79, 93)}, s1, new(rangemap.OffsetMap))
	assert.Equal(t, RangeSet{iv(81, 95)}, out)

	log := buf.String()
	assert.Contains(t, log, "stage=0 rules=2 begin=50 end=100 ranges=1 points=14")
	assert.Contains(t, log, "stage=1 rules=0 begin=0 end=0 ranges=1 points=14")
}

func TestLowest(t *testing.T) {
	lowest, err := Lowest(RangeSet{iv(10, 20), iv(-4, 0), iv(3, 4)})
	require.NoError(t, err)
	assert.Equal(t, int64(-4), lowest)

	_, err = Lowest(nil)
	assert.True(t, errors.Is(err, ErrEmptyRangeSet))

	_, err = Lowest(RangeSet{iv(3, 3)})
	assert.True(t, errors.Is(err, ErrEmptyRangeSet))
}

func TestRun(t *testing.T) {
	s1 := newMap(rule{iv(98, 100), -48}, rule{iv(50, 98), 2})
	lowest, err := Run(RangeSet{iv(79, 93), iv(55, 68)}, s1)
	require.NoError(t, err)
	assert.Equal(t, int64(57), lowest)

	_, err = Run(nil, s1)
	assert.True(t, errors.Is(err, ErrEmptyRangeSet))
}

func TestNormalize(t *testing.T) {
	rs := RangeSet{iv(10, 20), iv(0, 5), iv(5, 7), iv(15, 25), iv(30, 30), iv(40, 41)}
	exp := RangeSet{iv(0, 7), iv(10, 25), iv(40, 41)}
	if diff := cmp.Diff(exp, rs.Normalize()); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, RangeSet{}.Normalize())
}
