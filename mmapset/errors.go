package mmapset

type setError string

var _ error = setError("")

func (err setError) Error() string {
	return string(err)
}

const (
	ErrFull        = setError("set is full")
	ErrReadOnly    = setError("set is read-only")
	ErrZeroBuckets = setError("bucket count must be at least 1")
)
