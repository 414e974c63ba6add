package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRank is matched by every *RankError.
	ErrInvalidRank = errors.New("rank out of range")
	// ErrCorrupt wraps the errors returned by Check.
	ErrCorrupt = errors.New("corrupt tree")
	// ErrOverflow is returned when the input doesn't fit the size type.
	ErrOverflow = errors.New("size type overflow")
)

// RankError is returned by Select when k isn't in [1, Size()].
type RankError struct {
	K, Size uint64
}

func (e *RankError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("rank %d out of range: tree is empty", e.K)
	}
	return fmt.Sprintf("rank %d out of range [1, %d]", e.K, e.Size)
}

func (e *RankError) Unwrap() error {
	return ErrInvalidRank
}

// InvalidSliceError is returned by From when the input isn't sorted in
// ascending order. Prev is at Index-1 and Next at Index.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't sorted at index %d: %v > %v", e.Index, e.Prev, e.Next)
}

func corrupt(i any, format string, args ...any) error {
	return fmt.Errorf("%w: node %v: %s", ErrCorrupt, i, fmt.Sprintf(format, args...))
}
