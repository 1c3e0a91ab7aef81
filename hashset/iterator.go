package hashset

// Iterator walks the set bucket by bucket, chain order within a bucket.
// The order depends on the hasher and the bucket count; don't rely on it
// for anything but exhaustiveness. Adding or removing elements while an
// iterator is live invalidates it; mutating the elements themselves is
// fine.
type Iterator[E any] struct {
	set    *Set[E]
	node   *node[E]
	cur    *node[E]
	bucket int
}

// Iter returns an iterator positioned at the first bucket.
func (s *Set[E]) Iter() Iterator[E] {
	return Iterator[E]{
		set:  s,
		node: s.buckets[0],
	}
}

// Next advances to the next element, reporting whether one exists. Once it
// has returned false it keeps returning false.
func (iter *Iterator[E]) Next() bool {
	for iter.node == nil {
		if iter.bucket >= len(iter.set.buckets)-1 {
			return false
		}

		iter.bucket++
		iter.node = iter.set.buckets[iter.bucket]
	}

	iter.cur = iter.node
	iter.node = iter.node.next

	return true
}

// Elem returns the element Next stopped at.
func (iter *Iterator[E]) Elem() E {
	return iter.cur.elem
}
