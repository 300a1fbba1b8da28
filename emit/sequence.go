// emit/sequence.go

package emit

import "sync/atomic"

// Sequence hands out unique, gap-free record numbers to concurrent
// emitters. The read-and-increment is a single atomic operation, so no two
// callers ever observe the same value and no value is skipped.
type Sequence struct {
	val atomic.Int64
}

// NewSequence creates a sequence whose first Next() returns startValue.
func NewSequence(startValue int64) *Sequence {
	s := &Sequence{}
	s.val.Store(startValue - 1)
	return s
}

// Next returns the next value in the sequence. Safe for concurrent use.
func (s *Sequence) Next() int64 {
	return s.val.Add(1)
}
