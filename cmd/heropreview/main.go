// Command heropreview plays the hero headline and the mascot in the
// terminal, using the same session the site streams to browsers.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/CristianHGitHub/portfolio/internal/logger"
	"github.com/CristianHGitHub/portfolio/internal/site"
	"github.com/CristianHGitHub/portfolio/internal/view"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	contentPath := flag.String("content", "", "site content file (defaults to the built-in copy)")
	flag.Parse()

	log := logger.New(os.Getenv("LOG_LEVEL"), os.Stderr)

	content, err := site.Load(*contentPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load site content")
	}

	sess, err := view.New(view.Options{
		Phrases:  content.Phrases,
		Messages: content.Messages,
		Buffer:   16,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("open view session")
	}
	defer sess.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := newModel(content.Name, sess.Events())
	for _, e := range sess.Initial() {
		m = m.apply(e)
	}
	sess.Start(ctx)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "heropreview:", err)
		os.Exit(1)
	}
}
