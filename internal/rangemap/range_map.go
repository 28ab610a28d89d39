package rangemap

import (
	"fmt"
	"math"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start, End int64
}

func NewInterval(start, length int64) Interval {
	return Interval{Start: start, End: start + length}
}

// NewIntervalChecked is NewInterval for a non-negative |length|. ok is
// false if the end of the interval doesn't fit in an int64.
func NewIntervalChecked(start, length int64) (r Interval, ok bool) {
	if length < 0 || (start > 0 && length > math.MaxInt64-start) {
		return Interval{}, false
	}
	return NewInterval(start, length), true
}

func (r Interval) Len() int64 {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start
}

func (r Interval) Empty() bool {
	return r.Start >= r.End
}

func (r Interval) Contains(p int64) bool {
	return p >= r.Start && p < r.End
}

func (r Interval) Overlaps(other Interval) bool {
	return r.Start < other.End && other.Start < r.End
}

// Intersect returns the common part of |r| and |other|. ok is false if
// they don't overlap.
func (r Interval) Intersect(other Interval) (i Interval, ok bool) {
	i.Start = max(r.Start, other.Start)
	i.End = min(r.End, other.End)
	if i.Empty() {
		return Interval{}, false
	}
	return i, true
}

func (r Interval) Shift(offset int64) Interval {
	return Interval{Start: r.Start + offset, End: r.End + offset}
}

func (r Interval) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Entry is a stored interval together with the offset applied to every
// point inside it.
type Entry struct {
	Interval
	Offset int64
}

func (e *Entry) Key() uint64 {
	return sortKey(e.Start)
}

func (e Entry) String() string {
	return fmt.Sprintf("%v%+d", e.Interval, e.Offset)
}

// sortKey maps int64 onto uint64 preserving order, so negative starts sort
// before positive ones in the radix tree.
func sortKey(v int64) uint64 {
	return uint64(v) ^ (1 << 63)
}
