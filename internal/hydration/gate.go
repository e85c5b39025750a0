// Package hydration implements the two-phase start used by the hero
// animations: components are built dormant and only begin scheduling work
// once the embedding view reports that it is interactive.
package hydration

import "github.com/CristianHGitHub/portfolio/internal/timer"

// Gate is a one-way flag. It starts false and flips to true exactly once, on
// the first clock callback after Activate. It is used from the goroutine its
// clock runs callbacks on.
type Gate struct {
	timers    *timer.Group
	activated bool
	hydrated  bool
	waiters   []func()
}

func New(clock timer.Clock) *Gate {
	return &Gate{timers: timer.NewGroup(clock)}
}

// Hydrated reports whether the gate has flipped.
func (g *Gate) Hydrated() bool {
	return g.hydrated
}

// OnHydrate registers f to run when the gate flips. If it already has, f
// runs immediately.
func (g *Gate) OnHydrate(f func()) {
	if g.hydrated {
		f()
		return
	}
	g.waiters = append(g.waiters, f)
}

// Activate schedules the flip. Later calls are ignored.
func (g *Gate) Activate() {
	if g.activated {
		return
	}
	g.activated = true
	g.timers.After(0, g.hydrate)
}

// Close cancels a pending flip. A gate closed before flipping never flips.
func (g *Gate) Close() {
	g.timers.Close()
	g.waiters = nil
}

func (g *Gate) hydrate() {
	g.hydrated = true
	waiters := g.waiters
	g.waiters = nil
	for _, f := range waiters {
		f()
	}
}
