package ringbuffer

// A RingBuffer is an ordered queue supporting pushes at the back, pops at the
// front, and random access by position. Pointers obtained from Front and At
// are invalidated by the next mutating call.
type RingBuffer[T any] struct {
	ring             []T
	headPos, tailPos int
	full             bool
}

// Init preallocates a buffer with a size of size.
func (r *RingBuffer[T]) Init(size int) {
	r.ring = make([]T, size)
}

// Len returns the number of elements in the ring buffer.
func (r *RingBuffer[T]) Len() int {
	if r.full {
		return len(r.ring)
	}
	if r.tailPos >= r.headPos {
		return r.tailPos - r.headPos
	}
	return r.tailPos - r.headPos + len(r.ring)
}

// Empty says if the ring buffer is empty.
func (r *RingBuffer[T]) Empty() bool {
	return !r.full && r.headPos == r.tailPos
}

// PushBack adds a new element.
// If the ring buffer is full, its capacity is increased first.
func (r *RingBuffer[T]) PushBack(t T) {
	if r.full || len(r.ring) == 0 {
		r.grow(0)
	}
	r.ring[r.tailPos] = t
	r.tailPos++
	if r.tailPos == len(r.ring) {
		r.tailPos = 0
	}
	if r.tailPos == r.headPos {
		r.full = true
	}
}

// PopFront returns the next element.
// It must not be called when the buffer is empty, that is, callers might need
// to check if there are elements in the buffer first.
func (r *RingBuffer[T]) PopFront() T {
	if r.Empty() {
		panic("github.com/protocolhq/quill/internal/utils/ringbuffer: pop from an empty queue")
	}
	r.full = false
	t := r.ring[r.headPos]
	r.ring[r.headPos] = *new(T)
	r.headPos++
	if r.headPos == len(r.ring) {
		r.headPos = 0
	}
	return t
}

// Front returns a pointer to the element at the front of the buffer.
// It must not be called when the buffer is empty.
func (r *RingBuffer[T]) Front() *T {
	if r.Empty() {
		panic("github.com/protocolhq/quill/internal/utils/ringbuffer: front of an empty queue")
	}
	return &r.ring[r.headPos]
}

// At returns a pointer to the i-th element, counted from the front.
func (r *RingBuffer[T]) At(i int) *T {
	if i < 0 || i >= r.Len() {
		panic("github.com/protocolhq/quill/internal/utils/ringbuffer: index out of range")
	}
	pos := r.headPos + i
	if pos >= len(r.ring) {
		pos -= len(r.ring)
	}
	return &r.ring[pos]
}

// Reserve grows the capacity of the buffer to hold at least n elements.
// The contents are preserved.
func (r *RingBuffer[T]) Reserve(n int) {
	if n <= len(r.ring) {
		return
	}
	r.grow(n)
}

// Grow the maximum size of the queue to at least minSize.
func (r *RingBuffer[T]) grow(minSize int) {
	oldRing := r.ring
	newSize := len(oldRing) * 2
	if newSize == 0 {
		newSize = 1
	}
	if newSize < minSize {
		newSize = minSize
	}
	n := r.Len()
	r.ring = make([]T, newSize)
	headLen := copy(r.ring, oldRing[r.headPos:])
	copy(r.ring[headLen:], oldRing[:r.headPos])
	r.headPos, r.tailPos, r.full = 0, n, false
}

// Clear removes all elements.
func (r *RingBuffer[T]) Clear() {
	var zeroValue T
	for i := range r.ring {
		r.ring[i] = zeroValue
	}
	r.headPos, r.tailPos, r.full = 0, 0, false
}
