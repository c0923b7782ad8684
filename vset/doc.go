// Package vset provides Set, the ordered fixed-capacity collection of vertex
// indices that every search in lvcover works with.
//
// What
//
//   - Ordered: iteration follows insertion order.
//   - Duplicate-tolerant: Add never checks membership. Algorithms that need
//     uniqueness guarantee it by construction.
//   - Fixed capacity: chosen at New and never grown. Add on a full set is a
//     silent no-op; capacities are always sized for the worst case (usually n).
//
// Lifecycle
//
//	s, err := vset.New(n) // ErrAllocation if n < 0 or n > MaxCapacity
//	s.Add(3)
//	s.RemoveLast()
//	s.Destroy()           // empty, capacity 0
//
// Complexity
//
//   - Add, RemoveLast, Len, At, Last: O(1).
//   - Contains, Delete, Sorted, Mask: O(size) (Sorted adds a log factor).
//
// A Set is not safe for concurrent mutation. Searches allocate their own
// working sets per call and never share them.
package vset
