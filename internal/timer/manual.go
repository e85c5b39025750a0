package timer

import (
	"container/heap"
	"time"
)

// Manual is a Clock that only moves when Advance is called. Callbacks run
// synchronously inside Advance in firing order; callbacks due at the same
// instant run in the order they were scheduled. It is not safe for
// concurrent use.
type Manual struct {
	now     time.Duration
	seq     uint64
	pending timerQueue
}

func NewManual() *Manual {
	return &Manual{}
}

// Now returns the time elapsed since the clock was created.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of callbacks waiting to fire.
func (m *Manual) Pending() int {
	return m.pending.Len()
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Handle {
	if d < 0 {
		d = 0
	}
	t := &manualTimer{clock: m, at: m.now + d, seq: m.seq, f: f}
	m.seq++
	heap.Push(&m.pending, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that comes due,
// including ones scheduled by other callbacks during the advance.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for m.pending.Len() > 0 && m.pending[0].at <= end {
		t := heap.Pop(&m.pending).(*manualTimer)
		m.now = t.at
		t.f()
	}
	m.now = end
}

type manualTimer struct {
	clock *Manual
	at    time.Duration
	seq   uint64
	f     func()
	index int
}

func (t *manualTimer) Stop() bool {
	if t.index < 0 {
		return false
	}
	heap.Remove(&t.clock.pending, t.index)
	return true
}

type timerQueue []*manualTimer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*manualTimer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
