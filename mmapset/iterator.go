package mmapset

import (
	"github.com/webbmaffian/go-hashset/internal/utils"
)

// Iterator walks the set bucket by bucket, chain order within a bucket.
// Calling Set or Remove while an iterator is live invalidates it.
type Iterator[K utils.Unsigned, V any] struct {
	set     *Set[K, V]
	link    *link[K, V]
	bucket  K
	nextIdx K
}

// Iter returns an iterator positioned at the first bucket.
func (m *Set[K, V]) Iter() Iterator[K, V] {
	return Iterator[K, V]{
		set:     m,
		nextIdx: *m.cellAt(0),
	}
}

// Next advances to the next element, reporting whether one exists.
func (iter *Iterator[K, V]) Next() bool {
	for iter.nextIdx == 0 {
		if iter.bucket >= iter.set.head.buckets-1 {
			return false
		}

		iter.bucket++
		iter.nextIdx = *iter.set.cellAt(iter.bucket)
	}

	iter.link = iter.set.linkAt(iter.nextIdx)
	iter.nextIdx = iter.link.NextIdx

	return true
}

func (iter *Iterator[K, V]) Key() K {
	return iter.link.Key
}

func (iter *Iterator[K, V]) Val() *V {
	return &iter.link.Val
}
