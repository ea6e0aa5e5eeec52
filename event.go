package eightball

import "container/heap"

// collisionEvent describes a scheduled contact between ball A and
// Partner, at absolute time T, along with a witness recording both
// participants' velocities at the moment the event was computed. The
// witness is what a freshness check compares against: if either
// velocity has since changed, the event is stale.
type collisionEvent struct {
	a                        BallIndex
	partner                  CollisionPartner
	t                        float64
	witnessA, witnessPartner Vec2
	seq                      uint64
}

// eventQueue is a min-heap of collisionEvents ordered by scheduled time,
// with ties broken by insertion order (seq) for a stable total order.
// Stale entries are never pruned eagerly; the Simulator discards them
// lazily at pop time by comparing each event's witness velocities
// against the live ball state.
type eventQueue struct {
	items   []collisionEvent
	nextSeq uint64
}

func (q *eventQueue) Len() int { return len(q.items) }

func (q *eventQueue) Less(i, j int) bool {
	if q.items[i].t != q.items[j].t {
		return q.items[i].t < q.items[j].t
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *eventQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *eventQueue) Push(x interface{}) {
	q.items = append(q.items, x.(collisionEvent))
}

func (q *eventQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

// push schedules evt, stamping it with the next sequence number so that
// equal-time events pop in the order they were scheduled.
func (q *eventQueue) push(evt collisionEvent) {
	evt.seq = q.nextSeq
	q.nextSeq++
	heap.Push(q, evt)
}

// pop removes and returns the earliest-scheduled event, or false if the
// queue is empty.
func (q *eventQueue) pop() (collisionEvent, bool) {
	if q.Len() == 0 {
		return collisionEvent{}, false
	}
	return heap.Pop(q).(collisionEvent), true
}
