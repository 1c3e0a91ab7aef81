package hashset

import (
	"strconv"
	"testing"
)

// A dictionary of words and their definitions. The word is the key part,
// the definition the value part.
type word struct {
	word       string
	definition string
}

func newWordSet(t testing.TB, buckets int) *Set[*word] {
	t.Helper()

	s, err := New(buckets, func(w *word) uint64 {
		return StringHash(w.word)
	}, func(a, b *word) int {
		return CompareOrdered(a.word, b.word)
	})

	if err != nil {
		t.Fatal(err)
	}

	return s
}

// A sparse array of words. The index is the key part. The identity hasher
// makes bucket placement predictable.
type item struct {
	index uint64
	word  string
}

func newItemSet(t testing.TB, buckets int) *Set[*item] {
	t.Helper()

	s, err := New(buckets, func(i *item) uint64 {
		return i.index
	}, func(a, b *item) int {
		return CompareOrdered(a.index, b.index)
	})

	if err != nil {
		t.Fatal(err)
	}

	return s
}

func TestNewValidation(t *testing.T) {
	hasher := func(i *item) uint64 { return i.index }
	compare := func(a, b *item) int { return CompareOrdered(a.index, b.index) }

	if _, err := New(0, hasher, compare); err != ErrZeroBuckets {
		t.Fatalf("expected ErrZeroBuckets, got %v", err)
	}

	if _, err := New(-1, hasher, compare); err != ErrZeroBuckets {
		t.Fatalf("expected ErrZeroBuckets, got %v", err)
	}

	if _, err := New[*item](10, nil, compare); err != ErrNilFunc {
		t.Fatalf("expected ErrNilFunc, got %v", err)
	}

	if _, err := New(10, hasher, nil); err != ErrNilFunc {
		t.Fatalf("expected ErrNilFunc, got %v", err)
	}

	s, err := New(1, hasher, compare)

	if err != nil {
		t.Fatal(err)
	}

	if s.Buckets() != 1 {
		t.Fatalf("expected 1 bucket, got %d", s.Buckets())
	}
}

func TestDictionary(t *testing.T) {
	s := newWordSet(t, 10)

	cat := &word{word: "cat", definition: "A fine animal indeed"}
	dog := &word{word: "dog", definition: "A friend who likes to play frisbee"}

	s.Add(cat)
	s.Add(dog)

	if !s.Contains(&word{word: "cat"}) {
		t.Fatal("cat should be present")
	}

	if !s.Contains(&word{word: "dog"}) {
		t.Fatal("dog should be present")
	}

	got, ok := s.Get(&word{word: "cat"})

	if !ok || got.definition != cat.definition {
		t.Fatalf("unexpected cat: %v", got)
	}

	got, ok = s.Get(&word{word: "dog"})

	if !ok || got.definition != dog.definition {
		t.Fatalf("unexpected dog: %v", got)
	}

	// Mutating the value part through a returned element is fine; the set
	// only ever looks at the key part.
	got, _ = s.Get(&word{word: "cat"})
	got.definition = "A nice friend who loves food"

	got, _ = s.Get(&word{word: "cat"})

	if got.definition != "A nice friend who loves food" {
		t.Fatalf("unexpected definition: %q", got.definition)
	}
}

func TestSparseArray(t *testing.T) {
	s := newItemSet(t, 10)

	s.Add(&item{index: 1, word: "item 1"})
	s.Add(&item{index: 273, word: "item 273"})
	s.Add(&item{index: 6000, word: "item 6000"})

	for _, index := range []uint64{1, 273, 6000} {
		if !s.Contains(&item{index: index}) {
			t.Fatalf("index %d should be present", index)
		}
	}

	if s.Contains(&item{index: 2}) {
		t.Fatal("index 2 should be absent")
	}

	if s.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", s.Len())
	}
}

func TestAddUpdates(t *testing.T) {
	s := newItemSet(t, 10)

	s.Add(&item{index: 1, word: "hello"})
	s.Add(&item{index: 273, word: "world"})
	s.Add(&item{index: 6000, word: "wow"})

	got, ok := s.Get(&item{index: 1})

	if !ok || got.word != "hello" {
		t.Fatalf("unexpected element: %v", got)
	}

	s.Add(&item{index: 1, word: "HELLO"})

	got, ok = s.Get(&item{index: 1})

	if !ok || got.word != "HELLO" {
		t.Fatalf("expected update, got %v", got)
	}

	if s.Len() != 3 {
		t.Fatalf("update must not grow the set, got %d", s.Len())
	}

	count := 0
	iter := s.Iter()

	for iter.Next() {
		count++
	}

	if count != 3 {
		t.Fatalf("expected 3 elements from iteration, got %d", count)
	}
}

func TestUpdateKeepsChainPosition(t *testing.T) {
	s := newItemSet(t, 10)

	// All three collide into bucket 1 with the identity hasher.
	s.Add(&item{index: 1, word: "a"})
	s.Add(&item{index: 11, word: "b"})
	s.Add(&item{index: 21, word: "c"})

	s.Add(&item{index: 11, word: "B"})

	var indexes []uint64
	iter := s.Iter()

	for iter.Next() {
		indexes = append(indexes, iter.Elem().index)
	}

	if len(indexes) != 3 || indexes[0] != 1 || indexes[1] != 11 || indexes[2] != 21 {
		t.Fatalf("unexpected chain order: %v", indexes)
	}
}

func TestManyCollisions(t *testing.T) {
	s := newItemSet(t, 100)

	for i := uint64(0); i < 1000; i++ {
		s.Add(&item{index: i, word: strconv.FormatUint(i, 10)})
	}

	if s.Len() != 1000 {
		t.Fatalf("expected 1000 elements, got %d", s.Len())
	}

	for i := uint64(0); i < 1000; i++ {
		if !s.Contains(&item{index: i}) {
			t.Fatalf("index %d should be present", i)
		}

		if s.Contains(&item{index: i + 1000}) {
			t.Fatalf("index %d should be absent", i+1000)
		}
	}
}

func TestRemove(t *testing.T) {
	s := newItemSet(t, 100)

	for i := uint64(0); i < 1000; i++ {
		s.Add(&item{index: i})
	}

	for i := uint64(0); i < 1000; i++ {
		elem, ok := s.Remove(&item{index: i})

		if !ok || elem.index != i {
			t.Fatalf("expected to remove %d, got %v", i, elem)
		}

		if s.Contains(&item{index: i}) {
			t.Fatalf("index %d should be gone", i)
		}

		// The rest must be unaffected.
		if i < 999 && !s.Contains(&item{index: i + 1}) {
			t.Fatalf("index %d should remain", i+1)
		}

		if s.Len() != int(999-i) {
			t.Fatalf("unexpected length %d after removing %d", s.Len(), i)
		}
	}

	iter := s.Iter()

	if iter.Next() {
		t.Fatal("iteration over an empty set should yield nothing")
	}
}

func TestRemoveAbsent(t *testing.T) {
	s := newItemSet(t, 10)

	s.Add(&item{index: 1})
	s.Add(&item{index: 11})

	if _, ok := s.Remove(&item{index: 2}); ok {
		t.Fatal("removing an absent key should be a no-op")
	}

	// Absent key hashing into a non-empty bucket.
	if _, ok := s.Remove(&item{index: 21}); ok {
		t.Fatal("removing an absent key should be a no-op")
	}

	if s.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", s.Len())
	}
}

func TestRemoveMiddleOfChain(t *testing.T) {
	s := newItemSet(t, 10)

	s.Add(&item{index: 1})
	s.Add(&item{index: 11})
	s.Add(&item{index: 21})

	if _, ok := s.Remove(&item{index: 11}); !ok {
		t.Fatal("expected to remove 11")
	}

	if !s.Contains(&item{index: 1}) || !s.Contains(&item{index: 21}) {
		t.Fatal("chain neighbors must survive removal")
	}

	if _, ok := s.Remove(&item{index: 21}); !ok {
		t.Fatal("expected to remove chain tail")
	}

	if _, ok := s.Remove(&item{index: 1}); !ok {
		t.Fatal("expected to remove chain head")
	}

	if s.Len() != 0 {
		t.Fatalf("expected empty set, got %d", s.Len())
	}
}

func TestClear(t *testing.T) {
	s := newItemSet(t, 10)

	for i := uint64(0); i < 100; i++ {
		s.Add(&item{index: i})
	}

	s.Clear()

	if s.Len() != 0 {
		t.Fatalf("expected empty set, got %d", s.Len())
	}

	if s.Contains(&item{index: 1}) {
		t.Fatal("cleared set should contain nothing")
	}

	iter := s.Iter()

	if iter.Next() {
		t.Fatal("cleared set should iterate nothing")
	}

	// A cleared set stays usable.
	s.Add(&item{index: 5})

	if !s.Contains(&item{index: 5}) {
		t.Fatal("add after clear should work")
	}
}

func TestElems(t *testing.T) {
	s := newItemSet(t, 10)

	for i := uint64(0); i < 50; i++ {
		s.Add(&item{index: i})
	}

	elems := s.Elems()

	if len(elems) != 50 {
		t.Fatalf("expected 50 elements, got %d", len(elems))
	}

	// The snapshot stays intact while the set is mutated.
	for _, e := range elems {
		s.Remove(e)
	}

	if len(elems) != 50 || s.Len() != 0 {
		t.Fatal("snapshot must be independent of the set")
	}
}

func TestStringHash(t *testing.T) {
	if StringHash("") != 0 {
		t.Fatal("empty string should hash to 0")
	}

	if StringHash("cat") == StringHash("dog") {
		t.Fatal("suspiciously colliding hashes")
	}

	if StringHash("cat") != StringHash("cat") {
		t.Fatal("hash must be deterministic")
	}
}

func BenchmarkAdd(b *testing.B) {
	s := newItemSet(b, 1024)
	items := make([]*item, b.N)

	for i := range items {
		items[i] = &item{index: uint64(i)}
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s.Add(items[i])
	}
}

func BenchmarkGet(b *testing.B) {
	s := newItemSet(b, 1024)

	for i := uint64(0); i < 1024; i++ {
		s.Add(&item{index: i})
	}

	probe := &item{}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		probe.index = uint64(i) % 1024
		s.Get(probe)
	}
}
