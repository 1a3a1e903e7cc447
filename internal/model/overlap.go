package model

import "strings"

// OverlapIndex records which timeslots conflict in time. The relation is
// symmetric and irreflexive: a slot never overlaps itself.
type OverlapIndex map[string]map[string]bool

// BuildOverlapIndex compares every pair of timeslots. Two slots conflict iff
// they fall on the same day (case-insensitive) and their half-open
// [start,end) minute ranges intersect. Missing an overlap would enable
// double-booking, so insertion is done on both sides unconditionally.
func BuildOverlapIndex(slots []TimeSlot) OverlapIndex {
	index := make(OverlapIndex, len(slots))
	for _, slot := range slots {
		index[slot.ID] = make(map[string]bool)
	}
	for i, a := range slots {
		for _, b := range slots[i+1:] {
			if a.Day == "" || b.Day == "" || !strings.EqualFold(a.Day, b.Day) {
				continue
			}
			if a.StartMin < b.EndMin && b.StartMin < a.EndMin {
				index[a.ID][b.ID] = true
				index[b.ID][a.ID] = true
			}
		}
	}
	return index
}

// Overlaps reports whether two slots conflict in time.
func (idx OverlapIndex) Overlaps(a, b string) bool {
	return idx[a][b]
}

// Conflicting returns the set of slots conflicting with the given one.
func (idx OverlapIndex) Conflicting(id string) map[string]bool {
	return idx[id]
}
