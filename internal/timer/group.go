package timer

import "time"

// Group owns every timer scheduled through it. Close stops them all, and a
// callback that was already queued when Close ran is dropped instead of
// executed. A Group is used from a single goroutine: the loop its clock
// runs callbacks on, or the owner once that loop has stopped.
type Group struct {
	clock  Clock
	live   map[*entry]struct{}
	closed bool
}

type entry struct {
	h Handle
}

func NewGroup(c Clock) *Group {
	return &Group{clock: c, live: make(map[*entry]struct{})}
}

// After runs f once, d from now. It does nothing on a closed group.
func (g *Group) After(d time.Duration, f func()) {
	if g.closed {
		return
	}
	e := &entry{}
	g.live[e] = struct{}{}
	e.h = g.clock.AfterFunc(d, func() {
		if g.closed {
			return
		}
		delete(g.live, e)
		f()
	})
}

// Every runs f every d until the group is closed. The next run is scheduled
// before f executes.
func (g *Group) Every(d time.Duration, f func()) {
	var tick func()
	tick = func() {
		g.After(d, tick)
		f()
	}
	g.After(d, tick)
}

// Len returns the number of timers still waiting to fire.
func (g *Group) Len() int {
	return len(g.live)
}

func (g *Group) Closed() bool {
	return g.closed
}

// Close stops every outstanding timer. Further scheduling is ignored.
func (g *Group) Close() {
	if g.closed {
		return
	}
	g.closed = true
	for e := range g.live {
		e.h.Stop()
	}
	clear(g.live)
}
