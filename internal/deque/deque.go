// Package deque provides a growable ring-buffer double-ended queue
// with push/pop at both ends and an ordered snapshot.
package deque

// Deque is a double-ended queue backed by a ring buffer.
// The zero value is ready to use.
type Deque[T any] struct {
	buf   []T
	head  int // index of the front element
	count int
}

const minCapacity = 8

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	return d.count
}

// PushFront inserts v at the front.
func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = d.wrap(d.head - 1)
	d.buf[d.head] = v
	d.count++
}

// PushBack inserts v at the back.
func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[d.wrap(d.head+d.count)] = v
	d.count++
}

// PopFront removes and returns the front element.
// The second return is false when the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = d.wrap(d.head + 1)
	d.count--
	return v, true
}

// PopBack removes and returns the back element.
// The second return is false when the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	idx := d.wrap(d.head + d.count - 1)
	v := d.buf[idx]
	d.buf[idx] = zero
	d.count--
	return v, true
}

// Front returns the front element without removing it.
func (d *Deque[T]) Front() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the back element without removing it.
func (d *Deque[T]) Back() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	return d.buf[d.wrap(d.head+d.count-1)], true
}

// Snapshot returns the elements in order, front first.
func (d *Deque[T]) Snapshot() []T {
	out := make([]T, d.count)
	for i := 0; i < d.count; i++ {
		out[i] = d.buf[d.wrap(d.head+i)]
	}
	return out
}

func (d *Deque[T]) wrap(i int) int {
	if len(d.buf) == 0 {
		return 0
	}
	return ((i % len(d.buf)) + len(d.buf)) % len(d.buf)
}

// grow ensures room for one more element.
func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}
	newCap := len(d.buf) * 2
	if newCap < minCapacity {
		newCap = minCapacity
	}
	buf := make([]T, newCap)
	for i := 0; i < d.count; i++ {
		buf[i] = d.buf[d.wrap(d.head+i)]
	}
	d.buf = buf
	d.head = 0
}
