package domain

import "sync/atomic"

// IDAllocator hands out entity ids. Lists and todos of one collection share
// a single allocator so their ids never collide.
type IDAllocator interface {
	NextID() int64
}

// Sequence is a monotonically increasing IDAllocator. Ids start at 1 and are
// never issued twice, even after the entity that held them is removed.
// It is safe for concurrent use.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a Sequence whose next id is last+1.
func NewSequence(last int64) *Sequence {
	s := &Sequence{}
	if last > 0 {
		s.last.Store(last)
	}
	return s
}

// NextID returns the next unused id.
func (s *Sequence) NextID() int64 {
	return s.last.Add(1)
}

// Observe raises the high-water mark to id so that restored entities are
// never handed a duplicate. Lower values are ignored.
func (s *Sequence) Observe(id int64) {
	for {
		cur := s.last.Load()
		if id <= cur {
			return
		}
		if s.last.CompareAndSwap(cur, id) {
			return
		}
	}
}

// Last returns the most recently issued (or observed) id, 0 if none.
func (s *Sequence) Last() int64 {
	return s.last.Load()
}
