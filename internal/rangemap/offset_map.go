package rangemap

import (
	"log"
	"math"

	"github.com/akmistry/go-util/radix-tree"
)

// OffsetMap maps disjoint intervals to an offset. Points outside every
// stored interval map to themselves. The zero value is an empty map.
type OffsetMap struct {
	tree  radix.Tree
	count int
}

// Len returns the number of stored intervals.
func (m *OffsetMap) Len() int {
	return m.count
}

// Begin returns the start of the lowest stored interval.
func (m *OffsetMap) Begin() (begin int64, ok bool) {
	m.tree.Ascend(func(i radix.Item) bool {
		ie := i.(*Entry)
		begin = ie.Start
		ok = true
		return false
	})
	return
}

// End returns the end of the highest stored interval, or 0 if the map is
// empty.
func (m *OffsetMap) End() (end int64) {
	m.tree.Descend(func(i radix.Item) bool {
		ie := i.(*Entry)
		end = ie.End
		return false
	})
	return
}

// getOverlapping returns the stored entries overlapping |r|, highest first.
// The entries are owned by the tree.
func (m *OffsetMap) getOverlapping(r Interval) []*Entry {
	if r.Empty() {
		return nil
	}

	var items []*Entry
	m.tree.DescendLessOrEqualI(sortKey(r.End), func(i radix.Item) bool {
		ie := i.(*Entry)
		if ie.Start == r.End {
			return true
		} else if !r.Overlaps(ie.Interval) {
			return false
		}
		items = append(items, ie)
		return true
	})
	return items
}

// Overlaps reports whether any stored interval intersects |r|.
func (m *OffsetMap) Overlaps(r Interval) bool {
	if r.Empty() {
		return false
	}

	found := false
	m.tree.DescendLessOrEqualI(sortKey(r.End), func(i radix.Item) bool {
		ie := i.(*Entry)
		if ie.Start == r.End {
			return true
		}
		found = r.Overlaps(ie.Interval)
		return false
	})
	return found
}

// Overlapping returns every stored entry intersecting |r|, in ascending
// order of start. Returned entries are copies and are not clipped to |r|.
func (m *OffsetMap) Overlapping(r Interval) []Entry {
	items := m.getOverlapping(r)
	if len(items) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		entries = append(entries, *items[i])
	}
	return entries
}

// Get returns the offset of the interval containing |p|.
func (m *OffsetMap) Get(p int64) (offset int64, ok bool) {
	m.tree.DescendLessOrEqualI(sortKey(p), func(i radix.Item) bool {
		ie := i.(*Entry)
		if ie.Contains(p) {
			offset = ie.Offset
			ok = true
		}
		return false
	})
	return
}

// Translate maps a single point.
func (m *OffsetMap) Translate(p int64) int64 {
	offset, _ := m.Get(p)
	return p + offset
}

func (m *OffsetMap) insert(e *Entry) {
	old := m.tree.ReplaceOrInsert(e)
	if old != nil {
		log.Panicf("unexpected old entry: %v, adding new entry: %v", old, e)
	}
	m.count++
}

func (m *OffsetMap) remove(r Interval) {
	for _, ie := range m.getOverlapping(r) {
		if ie.Start < r.Start {
			if ie.End > r.End {
				// Old entry completely covers the hole.
				// Split into start and end entries.
				m.insert(&Entry{
					Interval: Interval{Start: r.End, End: ie.End},
					Offset:   ie.Offset,
				})
			}
			// Truncating keeps the key, so no need to reinsert.
			ie.End = r.Start
			continue
		} else if ie.End > r.End {
			m.insert(&Entry{
				Interval: Interval{Start: r.End, End: ie.End},
				Offset:   ie.Offset,
			})
		}

		if m.tree.Delete(ie) != ie {
			log.Panicf("entry not deleted: %v", ie)
		}
		m.count--
	}
}

// Add maps every point in |r| by |offset|.
//
// |r| is expected not to overlap anything already in the map. If it does,
// the overlapped part of the older intervals is dropped and |r| wins.
// Empty intervals are ignored.
func (m *OffsetMap) Add(r Interval, offset int64) {
	if r.Empty() {
		return
	}

	// Punch a hole, and put the new entry at that hole.
	m.remove(r)
	m.insert(&Entry{Interval: r, Offset: offset})
}

// Iterate calls |iter| on each stored entry in ascending order, starting at
// the entry containing or following |start|. An entry containing |start|
// is clipped to begin at |start|. Iteration stops when |iter| returns false.
func (m *OffsetMap) Iterate(start int64, iter func(Entry) bool) {
	first := start
	m.tree.DescendLessOrEqualI(sortKey(start), func(i radix.Item) bool {
		ie := i.(*Entry)
		if ie.Contains(start) {
			first = ie.Start
		}
		return false
	})

	m.tree.AscendGreaterOrEqualI(sortKey(first), func(item radix.Item) bool {
		e := *item.(*Entry)
		if e.Start < start {
			e.Start = start
		}
		return iter(e)
	})
}

// Entries returns a copy of all stored entries in ascending order.
func (m *OffsetMap) Entries() []Entry {
	entries := make([]Entry, 0, m.count)
	m.Iterate(math.MinInt64, func(e Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}
