package main

import (
	"strings"

	"github.com/CristianHGitHub/portfolio/internal/mascot"
	"github.com/CristianHGitHub/portfolio/internal/typewriter"
	"github.com/CristianHGitHub/portfolio/internal/view"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	heroStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	caretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Blink(true)
	speechStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("51")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// eventMsg carries a session event into the Bubble Tea loop.
type eventMsg view.Event

func waitForEvent(ch <-chan view.Event) tea.Cmd {
	return func() tea.Msg {
		return eventMsg(<-ch)
	}
}

type model struct {
	name   string
	events <-chan view.Event
	hero   typewriter.View
	robot  mascot.State
}

func newModel(name string, events <-chan view.Event) model {
	return model{name: name, events: events}
}

func (m model) apply(e view.Event) model {
	switch e.Name {
	case view.EventHero:
		m.hero = e.Hero
	case view.EventMascot:
		m.robot = e.Mascot
	}
	return m
}

func (m model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case eventMsg:
		return m.apply(view.Event(msg)), waitForEvent(m.events)
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(nameStyle.Render(m.name))
	b.WriteString("\n")
	b.WriteString(heroStyle.Render(m.hero.Text))
	if m.hero.Caret {
		b.WriteString(caretStyle.Render(typewriter.Caret))
	}
	b.WriteString("\n\n")
	if m.robot.Visible {
		if m.robot.SpeechVisible {
			b.WriteString(speechStyle.Render(m.robot.Speech))
			b.WriteString("\n")
		}
		b.WriteString("🤖\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q to quit"))
	return b.String()
}
