// Package mascot schedules the appearances of the decorative robot: it drops
// in, says something, falls quiet, and comes back every half minute with a
// new line.
package mascot

import (
	"errors"
	"time"

	"github.com/CristianHGitHub/portfolio/internal/hydration"
	"github.com/CristianHGitHub/portfolio/internal/timer"
)

var ErrNoMessages = errors.New("mascot: message pool is empty")

// Config holds the schedule. The first three delays are measured from
// hydration; the re-entry delays chain from the start of each repeat.
// Zero fields take the defaults.
type Config struct {
	AppearAfter time.Duration
	SpeakAfter  time.Duration
	HushAfter   time.Duration
	RepeatEvery time.Duration

	ReappearAfter     time.Duration
	ReentrySpeakAfter time.Duration
	ReentrySpeechFor  time.Duration
}

func DefaultConfig() Config {
	return Config{
		AppearAfter:       2 * time.Second,
		SpeakAfter:        4 * time.Second,
		HushAfter:         7 * time.Second,
		RepeatEvery:       30 * time.Second,
		ReappearAfter:     time.Second,
		ReentrySpeakAfter: 2 * time.Second,
		ReentrySpeechFor:  3 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	fill := func(v *time.Duration, def time.Duration) {
		if *v <= 0 {
			*v = def
		}
	}
	fill(&c.AppearAfter, d.AppearAfter)
	fill(&c.SpeakAfter, d.SpeakAfter)
	fill(&c.HushAfter, d.HushAfter)
	fill(&c.RepeatEvery, d.RepeatEvery)
	fill(&c.ReappearAfter, d.ReappearAfter)
	fill(&c.ReentrySpeakAfter, d.ReentrySpeakAfter)
	fill(&c.ReentrySpeechFor, d.ReentrySpeechFor)
	return c
}

// State is what the page shows for the mascot. SpeechVisible implies
// Visible.
type State struct {
	Visible       bool   `json:"visible"`
	SpeechVisible bool   `json:"speechVisible"`
	Speech        string `json:"speech"`
}

// Scheduler drives the mascot. All methods must be called from the goroutine
// the clock delivers callbacks on.
type Scheduler struct {
	pool     []string
	src      Source
	cfg      Config
	timers   *timer.Group
	onChange func(State)
	state    State
}

// New builds a hidden scheduler that starts when gate hydrates. A nil src
// uses the package-level generator.
func New(pool []string, gate *hydration.Gate, clock timer.Clock, src Source, cfg Config) (*Scheduler, error) {
	if len(pool) == 0 {
		return nil, ErrNoMessages
	}
	if src == nil {
		src = globalSource{}
	}
	s := &Scheduler{
		pool:   pool,
		src:    src,
		cfg:    cfg.withDefaults(),
		timers: timer.NewGroup(clock),
	}
	gate.OnHydrate(s.arm)
	return s, nil
}

// OnChange registers f to receive every new state.
func (s *Scheduler) OnChange(f func(State)) {
	s.onChange = f
}

func (s *Scheduler) State() State {
	return s.state
}

// Stop cancels every pending timer, the repeating one included.
func (s *Scheduler) Stop() {
	s.timers.Close()
}

func (s *Scheduler) arm() {
	s.timers.After(s.cfg.AppearAfter, s.show)
	s.timers.After(s.cfg.SpeakAfter, s.speak)
	s.timers.After(s.cfg.HushAfter, s.hush)
	s.timers.Every(s.cfg.RepeatEvery, s.reenter)
}

func (s *Scheduler) reenter() {
	s.hide()
	s.timers.After(s.cfg.ReappearAfter, func() {
		s.show()
		s.timers.After(s.cfg.ReentrySpeakAfter, func() {
			s.speak()
			s.timers.After(s.cfg.ReentrySpeechFor, s.hush)
		})
	})
}

func (s *Scheduler) show() {
	st := s.state
	st.Visible = true
	s.set(st)
}

// hide takes the speech bubble down with the mascot.
func (s *Scheduler) hide() {
	st := s.state
	st.Visible = false
	st.SpeechVisible = false
	s.set(st)
}

func (s *Scheduler) speak() {
	s.set(State{Visible: true, SpeechVisible: true, Speech: Pick(s.pool, s.src)})
}

func (s *Scheduler) hush() {
	st := s.state
	st.SpeechVisible = false
	s.set(st)
}

func (s *Scheduler) set(st State) {
	s.state = st
	if s.onChange != nil {
		s.onChange(st)
	}
}
