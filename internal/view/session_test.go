package view

import (
	"context"
	"testing"
	"time"

	"github.com/CristianHGitHub/portfolio/internal/mascot"
	"github.com/CristianHGitHub/portfolio/internal/typewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastTiming() Timing {
	return Timing{
		Typewriter: typewriter.Config{
			StartDelay:     5 * time.Millisecond,
			TypeInterval:   time.Millisecond,
			DeleteInterval: time.Millisecond,
			Pause:          5 * time.Millisecond,
		},
		Mascot: mascot.Config{
			AppearAfter:       5 * time.Millisecond,
			SpeakAfter:        10 * time.Millisecond,
			HushAfter:         15 * time.Millisecond,
			RepeatEvery:       40 * time.Millisecond,
			ReappearAfter:     time.Millisecond,
			ReentrySpeakAfter: 2 * time.Millisecond,
			ReentrySpeechFor:  3 * time.Millisecond,
		},
	}
}

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(Options{
		Phrases:  []string{"Go", "Gin"},
		Messages: []string{"Hello!"},
		Timing:   fastTiming(),
		Buffer:   16,
	})
	require.NoError(t, err)
	return s
}

func TestNewValidates(t *testing.T) {
	t.Parallel()
	_, err := New(Options{Messages: []string{"hi"}})
	assert.ErrorIs(t, err, typewriter.ErrNoPhrases)

	_, err = New(Options{Phrases: []string{"hi"}})
	assert.ErrorIs(t, err, mascot.ErrNoMessages)
}

func TestInitialIsStaticFallback(t *testing.T) {
	t.Parallel()
	s := newSession(t)
	defer s.Close()

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, []Event{
		{Name: EventHero, Hero: typewriter.View{Text: "Go"}},
		{Name: EventMascot},
	}, s.Initial())
}

func TestSessionStreamsBothSequencers(t *testing.T) {
	t.Parallel()
	s := newSession(t)
	s.Start(context.Background())

	var sawCaret, sawSpeech bool
	deadline := time.After(5 * time.Second)
	for !sawCaret || !sawSpeech {
		select {
		case e := <-s.Events():
			switch e.Name {
			case EventHero:
				sawCaret = sawCaret || e.Hero.Caret
				assert.Equal(t, e.Hero, e.Payload())
			case EventMascot:
				if e.Mascot.SpeechVisible {
					assert.True(t, e.Mascot.Visible)
					assert.Equal(t, "Hello!", e.Mascot.Speech)
					sawSpeech = true
				}
				assert.Equal(t, e.Mascot, e.Payload())
			}
		case <-deadline:
			t.Fatal("timed out waiting for events")
		}
	}

	s.Close()
	s.Close()
	// Drain what was buffered before Close; nothing may follow.
	for len(s.Events()) > 0 {
		<-s.Events()
	}
	select {
	case e := <-s.Events():
		t.Fatalf("event after close: %+v", e)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCloseWithoutStart(t *testing.T) {
	t.Parallel()
	s := newSession(t)
	s.Close()
	s.Start(context.Background())

	select {
	case e := <-s.Events():
		t.Fatalf("unexpected event %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestContextCancelStopsSession(t *testing.T) {
	t.Parallel()
	s := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	<-s.Events()

	cancel()
	<-s.loop.Done()
	s.Close()
	before := s.hero.State()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, s.hero.State())
}
