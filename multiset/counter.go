package multiset

import (
	"iter"
)

// Counter holds the number of occurrences of each distinct value.
type Counter[T comparable] struct {
	counts map[T]int
}

// Delta describes a value whose count differs between two counters.
type Delta[T comparable] struct {
	Value T
	Left  int
	Right int
}

func New[T comparable]() *Counter[T] {
	return &Counter[T]{
		counts: make(map[T]int),
	}
}

// From builds a Counter from every value yielded by seq.
func From[T comparable](seq iter.Seq[T]) *Counter[T] {
	c := New[T]()
	c.InsertAll(seq)
	return c
}

func FromSlice[T comparable](s []T) *Counter[T] {
	c := New[T]()
	for _, v := range s {
		c.Insert(v)
	}
	return c
}

func (c *Counter[T]) Insert(v T) {
	c.counts[v]++
}

func (c *Counter[T]) InsertAll(seq iter.Seq[T]) {
	for v := range seq {
		c.Insert(v)
	}
}

// Get returns the count of v, zero if it was never inserted.
func (c *Counter[T]) Get(v T) int {
	if c == nil {
		return 0
	}
	return c.counts[v]
}

// Len returns the number of distinct values.
func (c *Counter[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.counts)
}

// Total returns the number of inserted values.
func (c *Counter[T]) Total() int {
	if c == nil {
		return 0
	}

	n := 0
	for _, cnt := range c.counts {
		n += cnt
	}
	return n
}

// All yields every distinct value with its count, in no particular order.
func (c *Counter[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		if c == nil {
			return
		}
		for v, cnt := range c.counts {
			if !yield(v, cnt) {
				return
			}
		}
	}
}

func included[T comparable](a, b *Counter[T]) bool {
	for v, cnt := range a.All() {
		if b.Get(v) != cnt {
			return false
		}
	}
	return true
}

// Equal reports whether c and o hold the same values with the same counts.
// Absent values count as zero, and a nil Counter is the empty multiset.
func (c *Counter[T]) Equal(o *Counter[T]) bool {
	return included(c, o) && included(o, c)
}

// Diff returns the values whose counts differ between c and o. Left is the
// count in c, Right the count in o.
func (c *Counter[T]) Diff(o *Counter[T]) []Delta[T] {
	var deltas []Delta[T]
	for v, cnt := range c.All() {
		if other := o.Get(v); other != cnt {
			deltas = append(deltas, Delta[T]{Value: v, Left: cnt, Right: other})
		}
	}
	for v, cnt := range o.All() {
		if c.Get(v) == 0 {
			deltas = append(deltas, Delta[T]{Value: v, Left: 0, Right: cnt})
		}
	}
	return deltas
}
