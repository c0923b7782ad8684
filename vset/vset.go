package vset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrAllocation is returned when a Set cannot be created with the requested capacity.
var ErrAllocation = errors.New("vset: cannot allocate set")

// MaxCapacity bounds the capacity New accepts. It comfortably exceeds
// core.MaxOrder, so any graph's vertex set fits.
const MaxCapacity = 1 << 24

// Set is an ordered sequence of vertex indices with a fixed capacity.
// Invariant: 0 ≤ Len() ≤ Cap().
type Set struct {
	items []int
}

// New creates an empty Set able to hold capacity vertices.
//
// Errors: ErrAllocation if capacity < 0 or capacity > MaxCapacity.
func New(capacity int) (*Set, error) {
	if capacity < 0 || capacity > MaxCapacity {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrAllocation)
	}

	return &Set{items: make([]int, 0, capacity)}, nil
}

// FromSlice creates a Set of the given capacity filled with vs in order.
// Elements beyond capacity are dropped, as with Add.
func FromSlice(capacity int, vs []int) (*Set, error) {
	s, err := New(capacity)
	if err != nil {
		return nil, err
	}
	for _, v := range vs {
		s.Add(v)
	}

	return s, nil
}

// Add appends v if the set is not full; otherwise it does nothing.
func (s *Set) Add(v int) {
	if len(s.items) < cap(s.items) {
		s.items = append(s.items, v)
	}
}

// RemoveLast drops the most recently added vertex. No-op on an empty set.
func (s *Set) RemoveLast() {
	if n := len(s.items); n > 0 {
		s.items = s.items[:n-1]
	}
}

// Destroy releases the backing storage. The set stays usable with capacity 0.
func (s *Set) Destroy() {
	s.items = nil
}

// Len returns the number of stored vertices.
func (s *Set) Len() int { return len(s.items) }

// Cap returns the fixed capacity.
func (s *Set) Cap() int { return cap(s.items) }

// Full reports whether Add would be a no-op.
func (s *Set) Full() bool { return len(s.items) == cap(s.items) }

// At returns the i-th vertex in insertion order. Panics if i is out of range,
// like a slice index.
func (s *Set) At(i int) int { return s.items[i] }

// Last returns the most recently added vertex and false when the set is empty.
func (s *Set) Last() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}

	return s.items[len(s.items)-1], true
}

// Vertices returns a copy of the stored vertices in insertion order.
func (s *Set) Vertices() []int {
	out := make([]int, len(s.items))
	copy(out, s.items)

	return out
}

// Sorted returns a copy of the stored vertices in ascending order.
func (s *Set) Sorted() []int {
	out := s.Vertices()
	sort.Ints(out)

	return out
}

// Contains reports whether v occurs at least once.
func (s *Set) Contains(v int) bool {
	for _, x := range s.items {
		if x == v {
			return true
		}
	}

	return false
}

// Delete removes the first occurrence of v, keeping the order of the rest.
// It reports whether anything was removed.
func (s *Set) Delete(v int) bool {
	for i, x := range s.items {
		if x != v {
			continue
		}
		copy(s.items[i:], s.items[i+1:])
		s.items = s.items[:len(s.items)-1]

		return true
	}

	return false
}

// SwapDelete removes the first occurrence of v by moving the last element
// into its slot. Order is not preserved. It reports whether anything was removed.
func (s *Set) SwapDelete(v int) bool {
	last := len(s.items) - 1
	for i, x := range s.items {
		if x != v {
			continue
		}
		s.items[i] = s.items[last]
		s.items = s.items[:last]

		return true
	}

	return false
}

// Mask returns a membership vector of length n. Vertices outside 0..n-1 are ignored.
func (s *Set) Mask(n int) []bool {
	mask := make([]bool, n)
	for _, v := range s.items {
		if v >= 0 && v < n {
			mask[v] = true
		}
	}

	return mask
}

// String formats the set as {a, b, c} in insertion order.
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range s.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte('}')

	return sb.String()
}
