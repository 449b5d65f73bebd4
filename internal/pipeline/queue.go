package pipeline

// LineQueue is the work distribution channel between the line producer and
// the parser workers: a single FIFO queue written by one producer and read
// competitively by every worker.
//
// The receive on the underlying channel is the one and only dequeue
// critical section. Workers take a line, leave the channel, and parse
// outside it, so a worker that finishes fast simply comes back for more.
// Load balancing falls out of "first ready receiver wins" with no explicit
// scheduling policy.
type LineQueue struct {
	ch chan RawLine
}

// NewLineQueue creates a queue with the given buffer capacity.
// A full buffer applies backpressure to the producer.
func NewLineQueue(capacity int) *LineQueue {
	return &LineQueue{ch: make(chan RawLine, capacity)}
}

// Push enqueues one line, blocking while the buffer is full.
// Pushing after Close is a protocol violation and panics.
func (q *LineQueue) Push(line RawLine) {
	q.ch <- line
}

// Close marks the end of input. Workers drain whatever is still buffered
// and then observe end-of-stream. Close must be called exactly once, by
// the producer.
func (q *LineQueue) Close() {
	close(q.ch)
}

// Take blocks until a line is available or the queue is closed and drained.
// The second return is false at end-of-stream.
func (q *LineQueue) Take() (RawLine, bool) {
	line, ok := <-q.ch
	return line, ok
}
