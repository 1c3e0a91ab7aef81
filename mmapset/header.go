package mmapset

import (
	"unsafe"

	"github.com/webbmaffian/go-hashset/internal/utils"
)

func newHeader[K utils.Unsigned, V any](buckets, capacity K) *header[K] {
	var key K
	var l link[K, V]

	h := &header[K]{
		buckets:  buckets,
		capacity: capacity,
	}
	h.headSize = K(unsafe.Sizeof(*h))
	h.keySize = K(unsafe.Sizeof(key))
	h.valSize = K(unsafe.Sizeof(l.Val))
	h.linkSize = K(unsafe.Sizeof(l))

	return h
}

type header[K utils.Unsigned] struct {
	headSize K
	keySize  K
	valSize  K
	linkSize K
	buckets  K
	capacity K
	length   K

	// High-water mark of link slots handed out; freed slots go to the
	// free list instead of lowering it.
	allocated K

	// Byte offset of the first link in the free list, or 0.
	freeIdx K
}

func (h header[K]) fileSize() K {
	return h.headSize + h.buckets*h.keySize + h.capacity*h.linkSize
}

// linkBase is the byte offset where link slots begin, right after the
// bucket cell array.
func (h header[K]) linkBase() K {
	return h.headSize + h.buckets*h.keySize
}
