/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package rangeset stores values keyed by closed, non-overlapping uint32
// intervals and finds the interval containing a point by binary search.
package rangeset

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidRange is returned when inserting an interval whose lower
	// bound exceeds its upper bound.
	ErrInvalidRange = errors.New("rangeset: invalid range")

	// ErrOverlap is returned when inserting an interval that intersects an
	// existing one.
	ErrOverlap = errors.New("rangeset: overlapping range")
)

// Range is a closed interval [Lo, Hi].
type Range struct {
	Lo, Hi uint32
}

// Contains reports whether v lies in r.
func (r Range) Contains(v uint32) bool { return v >= r.Lo && v <= r.Hi }

// String renders the range as "lo..hi".
func (r Range) String() string { return fmt.Sprintf("%d..%d", r.Lo, r.Hi) }

type entry[T any] struct {
	r   Range
	val T
}

// Set maps disjoint ranges to values. Inserts keep the entries sorted, so
// lookups are O(log n). A Set must not be modified once shared between
// goroutines.
type Set[T any] struct {
	entries []entry[T]
}

// New creates an empty set ready for inserts.
func New[T any]() *Set[T] {
	return &Set[T]{}
}

// Len returns the number of ranges in the set.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Insert associates [lo, hi] with val. It fails with ErrInvalidRange when
// lo > hi and with ErrOverlap when the interval intersects one already
// present.
func (s *Set[T]) Insert(lo, hi uint32, val T) error {
	if s == nil || lo > hi {
		return ErrInvalidRange
	}
	// first entry whose upper bound reaches lo
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].r.Hi >= lo })
	if i < len(s.entries) && s.entries[i].r.Lo <= hi {
		return fmt.Errorf("%w: %d..%d intersects %s", ErrOverlap, lo, hi, s.entries[i].r)
	}
	s.entries = append(s.entries, entry[T]{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = entry[T]{r: Range{Lo: lo, Hi: hi}, val: val}
	return nil
}

// Match returns the value of the range containing v.
// If no range contains v, it returns the zero value and false.
func (s *Set[T]) Match(v uint32) (T, bool) {
	val, ok, _ := s.MatchWithRange(v)
	return val, ok
}

// MatchWithRange is Match that also returns the matching range, for
// diagnostics.
func (s *Set[T]) MatchWithRange(v uint32) (T, bool, Range) {
	var zero T
	if s == nil {
		return zero, false, Range{}
	}
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].r.Hi >= v })
	if i < len(s.entries) && s.entries[i].r.Contains(v) {
		return s.entries[i].val, true, s.entries[i].r
	}
	return zero, false, Range{}
}

// Ranges returns a copy of the stored ranges in ascending order.
func (s *Set[T]) Ranges() []Range {
	if s == nil {
		return nil
	}
	out := make([]Range, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.r
	}
	return out
}
