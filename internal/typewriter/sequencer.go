// Package typewriter animates the hero headline: it types a phrase one
// character at a time, holds it, deletes it, and moves on to the next phrase,
// forever.
package typewriter

import (
	"errors"
	"time"

	"github.com/CristianHGitHub/portfolio/internal/hydration"
	"github.com/CristianHGitHub/portfolio/internal/timer"
)

// Caret is appended to the rendered text while the animation is running.
const Caret = "|"

var ErrNoPhrases = errors.New("typewriter: phrase list is empty")

// Config holds the animation timing. Zero fields take the defaults.
type Config struct {
	StartDelay     time.Duration
	TypeInterval   time.Duration
	DeleteInterval time.Duration
	Pause          time.Duration
}

func DefaultConfig() Config {
	return Config{
		StartDelay:     time.Second,
		TypeInterval:   100 * time.Millisecond,
		DeleteInterval: 50 * time.Millisecond,
		Pause:          2 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.StartDelay <= 0 {
		c.StartDelay = d.StartDelay
	}
	if c.TypeInterval <= 0 {
		c.TypeInterval = d.TypeInterval
	}
	if c.DeleteInterval <= 0 {
		c.DeleteInterval = d.DeleteInterval
	}
	if c.Pause <= 0 {
		c.Pause = d.Pause
	}
	return c
}

// State is a snapshot of the sequencer. Text is always a prefix of the
// phrase at Index.
type State struct {
	Text     string
	Index    int
	Deleting bool
	Started  bool
}

// View is what the page shows for the headline.
type View struct {
	Text  string `json:"text"`
	Caret bool   `json:"caret"`
}

func (v View) String() string {
	if v.Caret {
		return v.Text + Caret
	}
	return v.Text
}

// StaticView is the headline rendered before the view is interactive: the
// first phrase in full, without a caret.
func StaticView(phrases []string) View {
	if len(phrases) == 0 {
		return View{}
	}
	return View{Text: phrases[0]}
}

// Sequencer runs the typing animation. All methods must be called from the
// goroutine the clock delivers callbacks on.
type Sequencer struct {
	phrases  [][]rune
	cfg      Config
	gate     *hydration.Gate
	timers   *timer.Group
	onChange func(State)

	index    int
	n        int
	deleting bool
	started  bool
}

// New builds a dormant sequencer. It starts cfg.StartDelay after gate
// hydrates.
func New(phrases []string, gate *hydration.Gate, clock timer.Clock, cfg Config) (*Sequencer, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	s := &Sequencer{
		phrases: make([][]rune, len(phrases)),
		cfg:     cfg.withDefaults(),
		gate:    gate,
		timers:  timer.NewGroup(clock),
	}
	for i, p := range phrases {
		s.phrases[i] = []rune(p)
	}
	gate.OnHydrate(s.arm)
	return s, nil
}

// OnChange registers f to receive every new state.
func (s *Sequencer) OnChange(f func(State)) {
	s.onChange = f
}

func (s *Sequencer) State() State {
	return State{
		Text:     string(s.phrases[s.index][:s.n]),
		Index:    s.index,
		Deleting: s.deleting,
		Started:  s.started,
	}
}

func (s *Sequencer) View() View {
	if !s.gate.Hydrated() || !s.started {
		return View{Text: string(s.phrases[0])}
	}
	return View{Text: string(s.phrases[s.index][:s.n]), Caret: true}
}

// Stop cancels every pending timer. The state is frozen afterwards.
func (s *Sequencer) Stop() {
	s.timers.Close()
}

func (s *Sequencer) arm() {
	s.timers.After(s.cfg.StartDelay, func() {
		s.started = true
		s.emit()
		s.schedule()
	})
}

func (s *Sequencer) schedule() {
	phrase := s.phrases[s.index]
	switch {
	case s.deleting:
		s.timers.After(s.cfg.DeleteInterval, s.deleteOne)
	case s.n == len(phrase):
		s.timers.After(s.cfg.Pause, func() {
			s.deleting = true
			s.emit()
			s.schedule()
		})
	default:
		s.timers.After(s.cfg.TypeInterval, s.typeOne)
	}
}

func (s *Sequencer) typeOne() {
	s.n++
	s.emit()
	s.schedule()
}

func (s *Sequencer) deleteOne() {
	if s.n > 0 {
		s.n--
	}
	if s.n == 0 {
		s.deleting = false
		s.index = (s.index + 1) % len(s.phrases)
	}
	s.emit()
	s.schedule()
}

func (s *Sequencer) emit() {
	if s.onChange != nil {
		s.onChange(s.State())
	}
}
