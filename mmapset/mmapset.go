// Package mmapset provides a memory-mapped hash map with separate
// chaining, for unsigned keys and fixed-size values. The on-disk layout is
// header, bucket cell array, link slots. Bucket count and capacity are
// fixed when the file is created; the map never rehashes. Not safe for
// concurrent use.
package mmapset

import (
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/webbmaffian/go-hashset/internal/utils"
)

type Set[K utils.Unsigned, V any] struct {
	data     mmap.MMap
	file     *os.File
	head     *header[K]
	readonly bool
}

// New creates or reopens a memory-mapped set. Bucket count and capacity
// are written to the file on creation; on reopen they must match what the
// file was created with. The value type must not contain pointers or
// slices.
func New[K utils.Unsigned, V any](filepath string, buckets, capacity K) (m *Set[K, V], err error) {
	m = &Set[K, V]{
		head: newHeader[K, V](buckets, capacity),
	}

	if buckets < 1 {
		return nil, ErrZeroBuckets
	}

	if m.head.valSize == 0 {
		return nil, errors.New("value must be at least 1 byte")
	}

	var created bool
	info, err := os.Stat(filepath)

	if err == nil {
		if m.file, err = os.OpenFile(filepath, os.O_RDWR, 0); err != nil {
			return
		}

		if err = m.validateHead(info.Size()); err != nil {
			return
		}
	} else if os.IsNotExist(err) {
		if capacity == 0 {
			return nil, errors.New("capacity is mandatory")
		}

		if m.file, err = os.Create(filepath); err != nil {
			return
		}

		if err = m.file.Truncate(int64(m.head.fileSize())); err != nil {
			return
		}

		created = true
	} else {
		return
	}

	if m.data, err = mmap.Map(m.file, mmap.RDWR, 0); err != nil {
		return
	}

	if created {
		if s := int(m.head.headSize); copy(m.data[:m.head.headSize], utils.PointerToBytes(m.head, s)) != s {
			return nil, errors.New("failed to write header")
		}

		if err = m.Flush(); err != nil {
			return
		}
	}

	m.head = utils.BytesToPointer[header[K]](m.data[:m.head.headSize])

	return
}

// OpenRO reopens an existing set read-only. Set and Remove will fail with
// ErrReadOnly.
func OpenRO[K utils.Unsigned, V any](filepath string) (m *Set[K, V], err error) {
	m = &Set[K, V]{
		head:     newHeader[K, V](0, 0),
		readonly: true,
	}

	if m.head.valSize == 0 {
		return nil, errors.New("value must be at least 1 byte")
	}

	info, err := os.Stat(filepath)

	if err != nil {
		return
	}

	if m.file, err = os.OpenFile(filepath, os.O_RDONLY, 0); err != nil {
		return
	}

	if err = m.validateHead(info.Size()); err != nil {
		return
	}

	if m.data, err = mmap.Map(m.file, mmap.RDONLY, 0); err != nil {
		return
	}

	m.head = utils.BytesToPointer[header[K]](m.data[:m.head.headSize])

	return
}

func (m *Set[K, V]) validateHead(fileSize int64) (err error) {
	if fileSize < int64(m.head.headSize) {
		return errors.New("file too small")
	}

	if m.file == nil {
		return errors.New("file is not open")
	}

	if _, err = m.file.Seek(0, io.SeekStart); err != nil {
		return
	}

	b := make([]byte, m.head.headSize)

	if _, err = io.ReadFull(m.file, b); err != nil {
		return
	}

	head := utils.BytesToPointer[header[K]](b)

	if head.keySize != m.head.keySize {
		return errors.New("invalid key size")
	}

	if head.valSize != m.head.valSize {
		return errors.New("invalid value size")
	}

	if head.linkSize != m.head.linkSize {
		return errors.New("invalid link size")
	}

	if m.head.buckets != 0 && head.buckets != m.head.buckets {
		return errors.New("invalid bucket count")
	}

	if m.head.capacity != 0 && head.capacity != m.head.capacity {
		return errors.New("invalid capacity")
	}

	if head.buckets < 1 {
		return errors.New("invalid bucket count")
	}

	// A capacity can never be less than the length
	if head.capacity < head.length {
		return errors.New("invalid capacity")
	}

	// Freed slots never lower the high-water mark
	if head.allocated < head.length || head.allocated > head.capacity {
		return errors.New("invalid allocation count")
	}

	if fileSize != int64(head.fileSize()) {
		return errors.New("invalid file size")
	}

	return
}

func (m *Set[K, V]) Flush() error {
	return m.data.Flush()
}

func (m *Set[K, V]) Close() (err error) {
	if err = m.data.Unmap(); err != nil {
		return
	}

	return m.file.Close()
}

// Len returns the number of distinct keys.
func (m *Set[K, V]) Len() int {
	return int(m.head.length)
}

func (m *Set[K, V]) Cap() int {
	return int(m.head.capacity)
}

// Buckets returns the fixed bucket count.
func (m *Set[K, V]) Buckets() int {
	return int(m.head.buckets)
}

// Set stores val under key, replacing the value in place if the key is
// already present. A new key takes a link slot; when all capacity slots
// are live, Set fails with ErrFull.
func (m *Set[K, V]) Set(key K, val V) error {
	if m.readonly {
		return ErrReadOnly
	}

	cell := m.cellAt(m.bucket(key))

	for *cell != 0 {
		l := m.linkAt(*cell)

		if l.Key == key {
			l.Val = val
			return nil
		}

		cell = &l.NextIdx
	}

	idx, err := m.alloc()

	if err != nil {
		return err
	}

	l := m.linkAt(idx)
	l.Key, l.Val, l.NextIdx = key, val, 0
	*cell = idx
	m.head.length++

	return nil
}

// Get returns the value stored under key.
func (m *Set[K, V]) Get(key K) (val V, ok bool) {
	for idx := *m.cellAt(m.bucket(key)); idx != 0; {
		l := m.linkAt(idx)

		if l.Key == key {
			return l.Val, true
		}

		idx = l.NextIdx
	}

	return
}

func (m *Set[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Remove unlinks key and returns its value. The freed link slot is pushed
// onto the free list for reuse. Removing an absent key is a no-op, as is
// removing from a read-only set.
func (m *Set[K, V]) Remove(key K) (val V, ok bool) {
	if m.readonly {
		return
	}

	cell := m.cellAt(m.bucket(key))

	for *cell != 0 {
		idx := *cell
		l := m.linkAt(idx)

		if l.Key == key {
			val, ok = l.Val, true
			*cell = l.NextIdx
			l.NextIdx = m.head.freeIdx
			m.head.freeIdx = idx
			m.head.length--
			return
		}

		cell = &l.NextIdx
	}

	return
}

func (m *Set[K, V]) bucket(key K) K {
	return key % m.head.buckets
}

// cellAt returns the chain head cell of a bucket.
func (m *Set[K, V]) cellAt(bucket K) *K {
	idx := m.head.headSize + bucket*m.head.keySize
	return utils.BytesToPointer[K](m.data[idx : idx+m.head.keySize])
}

func (m *Set[K, V]) linkAt(idx K) *link[K, V] {
	return utils.BytesToPointer[link[K, V]](m.data[idx : idx+m.head.linkSize])
}

// alloc hands out a link slot, reusing the free list before touching the
// high-water mark.
func (m *Set[K, V]) alloc() (idx K, err error) {
	if m.head.freeIdx != 0 {
		idx = m.head.freeIdx
		m.head.freeIdx = m.linkAt(idx).NextIdx
		return
	}

	if m.head.allocated == m.head.capacity {
		return 0, ErrFull
	}

	idx = m.head.linkBase() + m.head.allocated*m.head.linkSize
	m.head.allocated++

	return
}
