package morph

// pixelQueue is a FIFO of pixel offsets that drives the breadth-first
// propagation loops. Offsets are plain indexes into the image's pixel
// buffer; the status byte at the offset carries any per-pixel state, so the
// queue itself stays a flat []int.
type pixelQueue struct {
	items []int
	head  int
}

func newPixelQueue(capacity int) *pixelQueue {
	return &pixelQueue{items: make([]int, 0, capacity)}
}

func (q *pixelQueue) push(off int) {
	q.items = append(q.items, off)
}

// pop removes and returns the oldest offset. Callers must check size first.
func (q *pixelQueue) pop() int {
	off := q.items[q.head]
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 1024 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return off
}

func (q *pixelQueue) size() int {
	return len(q.items) - q.head
}

func (q *pixelQueue) empty() bool {
	return q.size() == 0
}

// pending exposes the not-yet-popped offsets in place. The first iteration
// of the basic operations flips every seeded pixel while keeping the queue
// intact, so it needs to walk the entries without consuming them.
func (q *pixelQueue) pending() []int {
	return q.items[q.head:]
}
