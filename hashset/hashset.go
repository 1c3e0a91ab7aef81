// Package hashset provides a hash set/map of elements of any type,
// inspected only through their capability functions.
//
// The set is an array of chain heads ("buckets"). An element has a key
// part, hashed and compared by the caller-supplied functions, and an
// optional value part that the set never looks at. That makes one type
// cover both a set (key-only elements) and a map (key+value elements).
//
// The bucket count is fixed for the lifetime of the set and the set never
// rehashes; pick it relative to the expected element count. The set is not
// safe for concurrent use.
package hashset

// Hasher returns a hash of the key part of elem. It must be a pure
// function of the key part, and should distribute uniformly for short
// chains.
type Hasher[E any] func(elem E) uint64

// Comparator returns negative if the key part of a sorts before that of b,
// positive if it sorts after, and 0 if they compare equal. It must only
// inspect the key part.
type Comparator[E any] func(a, b E) int

type node[E any] struct {
	elem E
	next *node[E]
}

type Set[E any] struct {
	buckets []*node[E]
	hasher  Hasher[E]
	compare Comparator[E]
	length  int
}

// New returns a set with a fixed number of buckets. The capability
// functions must stay valid for the lifetime of the set.
func New[E any](buckets int, hasher Hasher[E], compare Comparator[E]) (s *Set[E], err error) {
	if buckets < 1 {
		return nil, ErrZeroBuckets
	}

	if hasher == nil || compare == nil {
		return nil, ErrNilFunc
	}

	return &Set[E]{
		buckets: make([]*node[E], buckets),
		hasher:  hasher,
		compare: compare,
	}, nil
}

// Add inserts elem, or replaces the stored element whose key part matches.
// A replaced element keeps its position in the chain; a new element is
// appended to the end.
func (s *Set[E]) Add(elem E) {
	idx := s.bucket(elem)
	n := s.buckets[idx]

	if n == nil {
		s.buckets[idx] = &node[E]{elem: elem}
		s.length++
		return
	}

	for {
		if s.compare(n.elem, elem) == 0 {
			n.elem = elem
			return
		}

		if n.next == nil {
			n.next = &node[E]{elem: elem}
			s.length++
			return
		}

		n = n.next
	}
}

// Get returns the stored element whose key part matches that of probe.
// Only the key part of probe is inspected, so a probe may leave its value
// part empty.
func (s *Set[E]) Get(probe E) (elem E, ok bool) {
	for n := s.buckets[s.bucket(probe)]; n != nil; n = n.next {
		if s.compare(n.elem, probe) == 0 {
			return n.elem, true
		}
	}

	return
}

func (s *Set[E]) Contains(probe E) bool {
	_, ok := s.Get(probe)
	return ok
}

// Remove unlinks the element whose key part matches that of probe and
// returns it, handing ownership back to the caller. Removing an absent key
// is a no-op.
func (s *Set[E]) Remove(probe E) (elem E, ok bool) {
	idx := s.bucket(probe)
	n := s.buckets[idx]

	if n == nil {
		return
	}

	if s.compare(n.elem, probe) == 0 {
		s.buckets[idx] = n.next
		s.length--
		return n.elem, true
	}

	for prev := n; prev.next != nil; prev = prev.next {
		if s.compare(prev.next.elem, probe) == 0 {
			n = prev.next
			prev.next = n.next
			s.length--
			return n.elem, true
		}
	}

	return
}

// Len returns the number of distinct keys in the set.
func (s *Set[E]) Len() int {
	return s.length
}

// Buckets returns the fixed bucket count.
func (s *Set[E]) Buckets() int {
	return len(s.buckets)
}

// Clear drops every chain. The elements themselves are untouched; they
// belong to the caller.
func (s *Set[E]) Clear() {
	for i := range s.buckets {
		s.buckets[i] = nil
	}

	s.length = 0
}

// Elems returns a snapshot of all elements, safe to range over while
// mutating the set.
func (s *Set[E]) Elems() []E {
	elems := make([]E, 0, s.length)

	for _, n := range s.buckets {
		for ; n != nil; n = n.next {
			elems = append(elems, n.elem)
		}
	}

	return elems
}

func (s *Set[E]) bucket(elem E) uint64 {
	return s.hasher(elem) % uint64(len(s.buckets))
}
