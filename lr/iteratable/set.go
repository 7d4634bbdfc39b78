package iteratable

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Set is a set of comparable items. Besides the usual set operations it
// offers an iteration cursor, which will visit items added during iteration
// as well. This makes closure operations easy to express:
//
//     C.IterateOnce()
//     for C.Next() {
//         x := C.Item()
//         C.Add(...)  // will be visited by a subsequent C.Next()
//     }
//
type Set struct {
	order      *arraylist.List // items in insertion order
	members    *treeset.Set    // membership, ordered by comparator
	comparator utils.Comparator
	cursor     int
}

// NewSet creates an empty set. Items are ordered by comparator.
func NewSet(comparator utils.Comparator) *Set {
	return &Set{
		order:      arraylist.New(),
		members:    treeset.NewWith(comparator),
		comparator: comparator,
		cursor:     -1,
	}
}

// Add adds an item, if not already present. Returns true if the item is new.
func (s *Set) Add(x interface{}) bool {
	if s.members.Contains(x) {
		return false
	}
	s.members.Add(x)
	s.order.Add(x)
	return true
}

// Contains checks if x is a member of s.
func (s *Set) Contains(x interface{}) bool {
	return s.members.Contains(x)
}

// Size returns the number of items in s.
func (s *Set) Size() int {
	return s.members.Size()
}

// Empty is true if s contains no items.
func (s *Set) Empty() bool {
	return s.members.Empty()
}

// Values returns the items of s, ordered by the comparator of s.
func (s *Set) Values() []interface{} {
	return s.members.Values()
}

// Copy returns a shallow copy of s.
func (s *Set) Copy() *Set {
	c := NewSet(s.comparator)
	it := s.order.Iterator()
	for it.Next() {
		c.Add(it.Value())
	}
	return c
}

// Union adds all items of other to s. Destructive for s.
func (s *Set) Union(other *Set) *Set {
	it := other.order.Iterator()
	for it.Next() {
		s.Add(it.Value())
	}
	return s
}

// Difference removes all items from s which are members of other.
// Destructive for s.
func (s *Set) Difference(other *Set) *Set {
	remaining := arraylist.New()
	it := s.order.Iterator()
	for it.Next() {
		if other.members.Contains(it.Value()) {
			s.members.Remove(it.Value())
		} else {
			remaining.Add(it.Value())
		}
	}
	s.order = remaining
	return s
}

// Equals checks if s and other contain the same items.
func (s *Set) Equals(other *Set) bool {
	if s.Size() != other.Size() {
		return false
	}
	it := other.members.Iterator()
	for it.Next() {
		if !s.members.Contains(it.Value()) {
			return false
		}
	}
	return true
}

// IterateOnce resets the iteration cursor of s to the start.
func (s *Set) IterateOnce() {
	s.cursor = -1
}

// Next advances the iteration cursor. Returns false if all items, including
// the ones added during iteration, have been visited.
func (s *Set) Next() bool {
	if s.cursor+1 >= s.order.Size() {
		return false
	}
	s.cursor++
	return true
}

// Item returns the item at the iteration cursor.
func (s *Set) Item() interface{} {
	x, _ := s.order.Get(s.cursor)
	return x
}
