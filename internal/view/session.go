// Package view ties the hero animations to one viewer: it owns the event
// loop, the hydration gate and both sequencers for the lifetime of a page
// view, and publishes their state as events.
package view

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/CristianHGitHub/portfolio/internal/hydration"
	"github.com/CristianHGitHub/portfolio/internal/mascot"
	"github.com/CristianHGitHub/portfolio/internal/timer"
	"github.com/CristianHGitHub/portfolio/internal/typewriter"
	"github.com/google/uuid"
)

const (
	EventHero   = "hero"
	EventMascot = "mascot"
)

// Event carries one state change. Hero is set for EventHero, Mascot for
// EventMascot.
type Event struct {
	Name   string
	Hero   typewriter.View
	Mascot mascot.State
}

// Payload returns the part of the event that goes over the wire.
func (e Event) Payload() any {
	if e.Name == EventHero {
		return e.Hero
	}
	return e.Mascot
}

type Timing struct {
	Typewriter typewriter.Config
	Mascot     mascot.Config
}

type Options struct {
	Phrases  []string
	Messages []string
	Timing   Timing
	// Buffer is the capacity of the event channel.
	Buffer int
	// Rand picks the mascot's lines; nil seeds a fresh generator.
	Rand mascot.Source
}

// Session is one page view. It is dormant until Start and releases every
// timer on Close.
type Session struct {
	id     string
	loop   *timer.Loop
	gate   *hydration.Gate
	hero   *typewriter.Sequencer
	mascot *mascot.Scheduler
	events chan Event

	mu      sync.Mutex
	started bool
	closed  bool
}

func New(opts Options) (*Session, error) {
	loop := timer.NewLoop()
	gate := hydration.New(loop)

	hero, err := typewriter.New(opts.Phrases, gate, loop, opts.Timing.Typewriter)
	if err != nil {
		return nil, err
	}
	src := opts.Rand
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	robot, err := mascot.New(opts.Messages, gate, loop, src, opts.Timing.Mascot)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:     uuid.NewString(),
		loop:   loop,
		gate:   gate,
		hero:   hero,
		mascot: robot,
		events: make(chan Event, max(opts.Buffer, 0)),
	}
	hero.OnChange(func(typewriter.State) {
		s.publish(Event{Name: EventHero, Hero: hero.View()})
	})
	robot.OnChange(func(st mascot.State) {
		s.publish(Event{Name: EventMascot, Mascot: st})
	})
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

// Initial returns the events describing the page as first rendered: the
// static headline and no mascot. Call it before Start.
func (s *Session) Initial() []Event {
	return []Event{
		{Name: EventHero, Hero: s.hero.View()},
		{Name: EventMascot, Mascot: s.mascot.State()},
	}
}

// Events delivers state changes in the order each sequencer produced them.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Start runs the loop and activates the gate. The session stops when ctx is
// cancelled or Close is called.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go s.loop.Run(ctx)
	s.loop.Post(s.gate.Activate)
}

// Close stops the loop, waits for it to exit and cancels every timer the
// session owns. No event is published after Close returns.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	started := s.started
	s.mu.Unlock()

	s.loop.Close()
	if started {
		<-s.loop.Done()
	}
	s.hero.Stop()
	s.mascot.Stop()
	s.gate.Close()
}

func (s *Session) publish(e Event) {
	select {
	case s.events <- e:
	case <-s.loop.Closing():
	}
}
