package hashset

// Ready-made building blocks for capability functions.

type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// StringHash returns a decently uniform polynomial hash of s.
func StringHash(s string) uint64 {
	const prime = 31

	var h uint64

	for i := 0; i < len(s); i++ {
		h = prime*h + uint64(s[i])
	}

	return h
}

// CompareOrdered is a three-way comparison for building comparators over
// ordered key parts.
func CompareOrdered[T Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}

	return 0
}
