package engine

// FrameID identifies a pending frame request.
type FrameID uint64

// FrameSource schedules callbacks for the next display frame.
type FrameSource interface {
	RequestFrame(cb func()) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a FrameSource driven by the host loop. Callbacks requested
// before a Flush run during it; callbacks requested while flushing wait
// for the next one.
type FrameQueue struct {
	next    FrameID
	order   []FrameID
	pending map[FrameID]func()
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]func())}
}

func (q *FrameQueue) RequestFrame(cb func()) FrameID {
	q.next++
	q.pending[q.next] = cb
	q.order = append(q.order, q.next)
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
}

// Pending returns the number of callbacks waiting for the next flush.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Flush runs every callback requested before the call and returns how many
// ran.
func (q *FrameQueue) Flush() int {
	batch := q.order
	q.order = nil
	ran := 0
	for _, id := range batch {
		cb, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		cb()
		ran++
	}
	return ran
}
