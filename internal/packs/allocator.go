package packs

import "math"

// IDAllocator hands out session-stable display ids for freshly built packs.
// It is passed explicitly into BuildPacks instead of living as process-wide
// state; callers that need fresh numbering per session create a new one.
type IDAllocator struct {
	next int64
}

// NewIDAllocator returns an allocator starting at 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Next returns the next display id, wrapping back to 1 past the largest
// representable value.
func (a *IDAllocator) Next() int64 {
	id := a.next
	if a.next == math.MaxInt64 {
		a.next = 1
	} else {
		a.next++
	}
	return id
}
