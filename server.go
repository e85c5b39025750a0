package main

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/CristianHGitHub/portfolio/internal/site"
	"github.com/CristianHGitHub/portfolio/internal/typewriter"
	"github.com/CristianHGitHub/portfolio/internal/view"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
)

type server struct {
	cfg      Config
	site     *site.Site
	log      zerolog.Logger
	timing   view.Timing
	salt     string
	sessions atomic.Int64
}

func newServer(cfg Config, content *site.Site, log zerolog.Logger) *server {
	salt := cfg.IPSalt
	if salt == "" {
		salt = newSalt()
	}
	return &server{cfg: cfg, site: content, log: log, salt: salt}
}

func (s *server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.SetFuncMap(template.FuncMap{
		"markdown": markdownToHTML,
		"join":     strings.Join,
	})
	r.LoadHTMLGlob(s.cfg.TemplatesGlob)

	r.Static("/static", s.cfg.StaticDir)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// Home page route
	r.GET("/", s.index)

	r.GET("/resume.pdf", func(c *gin.Context) {
		c.FileAttachment(s.cfg.ResumePath, strings.ReplaceAll(s.site.Name, " ", "-")+"-Resume.pdf")
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", s.contact)

	hero := r.Group("/hero")
	if len(s.cfg.AllowedOrigins) > 0 {
		hero.Use(cors.New(cors.Config{
			AllowOrigins: s.cfg.AllowedOrigins,
			AllowMethods: []string{http.MethodGet},
		}))
	}
	hero.GET("/stream", s.heroStream)

	// Anchor links and reloads on client-side paths land on the page.
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.String(http.StatusNotFound, "not found")
			return
		}
		s.index(c)
	})

	return r
}

func (s *server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"site": s.site,
		"hero": typewriter.StaticView(s.site.Phrases),
	})
}

// markdownToHTML renders site copy. Raw HTML in the input is dropped.
func markdownToHTML(input string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(input), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(input))
	}
	return template.HTML(buf.String())
}
