package mascot

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/CristianHGitHub/portfolio/internal/hydration"
	"github.com/CristianHGitHub/portfolio/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var messages = []string{
	"Hello! 👋",
	"I'm your coding buddy!",
	"Let's build something amazing!",
}

// cycle returns successive values, wrapping around.
type cycle struct {
	values []int
	next   int
}

func (c *cycle) IntN(n int) int {
	v := c.values[c.next%len(c.values)] % n
	c.next++
	return v
}

func newScheduler(t *testing.T, src Source) (*timer.Manual, *hydration.Gate, *Scheduler) {
	t.Helper()
	clock := timer.NewManual()
	gate := hydration.New(clock)
	s, err := New(messages, gate, clock, src, Config{})
	require.NoError(t, err)
	return clock, gate, s
}

func hydrate(clock *timer.Manual, gate *hydration.Gate) {
	gate.Activate()
	clock.Advance(0)
}

func TestNewRejectsEmptyPool(t *testing.T) {
	t.Parallel()
	clock := timer.NewManual()
	_, err := New(nil, hydration.New(clock), clock, nil, Config{})
	assert.ErrorIs(t, err, ErrNoMessages)
}

func TestHiddenUntilHydrated(t *testing.T) {
	t.Parallel()
	clock, _, s := newScheduler(t, nil)
	clock.Advance(5 * time.Minute)
	assert.Equal(t, State{}, s.State())
	assert.Zero(t, clock.Pending())
}

func TestInitialSequence(t *testing.T) {
	t.Parallel()
	clock, gate, s := newScheduler(t, &cycle{values: []int{1}})
	hydrate(clock, gate)

	clock.Advance(1999 * time.Millisecond)
	assert.Equal(t, State{}, s.State())

	clock.Advance(time.Millisecond)
	assert.Equal(t, State{Visible: true}, s.State())

	clock.Advance(2 * time.Second)
	assert.Equal(t, State{Visible: true, SpeechVisible: true, Speech: messages[1]}, s.State())

	clock.Advance(3 * time.Second)
	assert.Equal(t, State{Visible: true, Speech: messages[1]}, s.State())
}

func TestReentrySequence(t *testing.T) {
	t.Parallel()
	clock, gate, s := newScheduler(t, &cycle{values: []int{0, 2, 1}})
	hydrate(clock, gate)
	clock.Advance(30 * time.Second)
	assert.False(t, s.State().Visible, "hidden at the start of the repeat")

	clock.Advance(time.Second)
	assert.Equal(t, State{Visible: true, Speech: messages[0]}, s.State())

	clock.Advance(2 * time.Second)
	assert.Equal(t, State{Visible: true, SpeechVisible: true, Speech: messages[2]}, s.State())

	clock.Advance(3 * time.Second)
	assert.Equal(t, State{Visible: true, Speech: messages[2]}, s.State())

	clock.Advance(24 * time.Second)
	assert.False(t, s.State().Visible)
	clock.Advance(3 * time.Second)
	assert.Equal(t, State{Visible: true, SpeechVisible: true, Speech: messages[1]}, s.State())
}

func TestSpeechImpliesVisible(t *testing.T) {
	t.Parallel()
	clock, gate, s := newScheduler(t, rand.New(rand.NewPCG(3, 4)))
	changes := 0
	s.OnChange(func(st State) {
		changes++
		if st.SpeechVisible {
			assert.True(t, st.Visible, "speech shown while mascot hidden")
		}
	})
	hydrate(clock, gate)

	for range 10 * 60 * 10 {
		clock.Advance(100 * time.Millisecond)
		st := s.State()
		assert.False(t, st.SpeechVisible && !st.Visible)
	}
	assert.Greater(t, changes, 3)
}

func TestHidingDuringSpeechHidesBubble(t *testing.T) {
	t.Parallel()
	clock := timer.NewManual()
	gate := hydration.New(clock)
	// The repeat lands while the first line is still on screen.
	s, err := New(messages, gate, clock, &cycle{values: []int{0}}, Config{
		SpeakAfter:  4 * time.Second,
		HushAfter:   20 * time.Second,
		RepeatEvery: 5 * time.Second,
	})
	require.NoError(t, err)
	hydrate(clock, gate)

	clock.Advance(4 * time.Second)
	require.True(t, s.State().SpeechVisible)

	clock.Advance(time.Second)
	assert.Equal(t, State{Speech: messages[0]}, s.State())
}

func TestStopCancelsEverything(t *testing.T) {
	t.Parallel()
	clock, gate, s := newScheduler(t, nil)
	hydrate(clock, gate)
	clock.Advance(32 * time.Second)

	before := s.State()
	s.Stop()
	assert.Zero(t, clock.Pending(), "nested re-entry timers are owned too")

	clock.Advance(60 * time.Second)
	assert.Equal(t, before, s.State())
}

func TestPickIsUniform(t *testing.T) {
	t.Parallel()
	pool := []string{"a", "b", "c", "d", "e", "f"}
	src := rand.New(rand.NewPCG(7, 11))
	const draws = 60000

	counts := map[string]int{}
	for range draws {
		counts[Pick(pool, src)]++
	}

	require.Len(t, counts, len(pool))
	for _, m := range pool {
		assert.InDelta(t, 1.0/float64(len(pool)), float64(counts[m])/draws, 0.01, m)
	}
}

func TestPickEmptyPool(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Pick(nil, globalSource{}))
}
