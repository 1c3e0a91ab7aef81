package hashset

type setError string

var _ error = setError("")

func (err setError) Error() string {
	return string(err)
}

const (
	ErrZeroBuckets = setError("bucket count must be at least 1")
	ErrNilFunc     = setError("hasher and comparator are mandatory")
)
