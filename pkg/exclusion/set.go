package exclusion

import "sort"

// Set is an unordered set of page ids, duplicates collapse by construction
type Set map[int64]struct{}

// NewSet makes a set with given ids
func NewSet(ids ...int64) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add adds id to the set, adding an existing id is a no-op
func (s Set) Add(id int64) {
	s[id] = struct{}{}
}

// Remove removes id from the set if present
func (s Set) Remove(id int64) {
	delete(s, id)
}

// Has returns true if id is in the set
func (s Set) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids
func (s Set) Len() int {
	return len(s)
}

// IDs returns ids sorted ascending, never nil
func (s Set) IDs() []int64 {
	res := make([]int64, 0, len(s))
	for id := range s {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}
