package main

import (
	"io"
	"net/http"

	"github.com/CristianHGitHub/portfolio/internal/view"
	"github.com/gin-gonic/gin"
)

// heroStream opens a view session for one browser tab and relays its
// headline and mascot state as server-sent events until the tab goes away.
func (s *server) heroStream(c *gin.Context) {
	sess, err := view.New(view.Options{
		Phrases:  s.site.Phrases,
		Messages: s.site.Messages,
		Timing:   s.timing,
		Buffer:   s.cfg.StreamBuffer,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("open view session")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	log := s.log.With().Str("session", sess.ID()).Logger()
	log.Debug().Int64("active", s.sessions.Add(1)).Msg("view session opened")
	defer func() {
		sess.Close()
		log.Debug().Int64("active", s.sessions.Add(-1)).Msg("view session closed")
	}()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	for _, e := range sess.Initial() {
		c.SSEvent(e.Name, e.Payload())
	}
	c.Writer.Flush()

	ctx := c.Request.Context()
	sess.Start(ctx)
	c.Stream(func(w io.Writer) bool {
		select {
		case e := <-sess.Events():
			c.SSEvent(e.Name, e.Payload())
			return true
		case <-ctx.Done():
			return false
		}
	})
}
