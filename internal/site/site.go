// Package site holds the portfolio copy: the hero phrases, the mascot's
// lines and every section of the page.
package site

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

var ErrInvalidContent = errors.New("invalid site content")

type Site struct {
	Name        string          `yaml:"name"`
	Greeting    string          `yaml:"greeting"`
	Description string          `yaml:"description"`
	Phrases     []string        `yaml:"phrases"`
	Messages    []string        `yaml:"mascot_messages"`
	Nav         []Link          `yaml:"nav"`
	About       []string        `yaml:"about"`
	Stats       []Stat          `yaml:"stats"`
	Skills      []SkillCategory `yaml:"skills"`
	Projects    []Project       `yaml:"projects"`
	Contact     Contact         `yaml:"contact"`
	Footer      string          `yaml:"footer"`
}

type Link struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href"`
}

type Stat struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
}

type SkillCategory struct {
	Title  string   `yaml:"title"`
	Icon   string   `yaml:"icon"`
	Skills []string `yaml:"skills"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Icon        string   `yaml:"icon"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	LiveURL     string   `yaml:"live_url"`
	SourceURL   string   `yaml:"source_url"`
}

type Contact struct {
	Methods []Link `yaml:"methods"`
	Social  []Link `yaml:"social"`
}

// Default returns the content compiled into the binary.
func Default() (*Site, error) {
	return Parse(defaultContent)
}

// Load reads content from path, or the built-in content when path is empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site content: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidContent)
	}
	if len(s.Phrases) == 0 {
		return fmt.Errorf("%w: at least one phrase is required", ErrInvalidContent)
	}
	if len(s.Messages) == 0 {
		return fmt.Errorf("%w: at least one mascot message is required", ErrInvalidContent)
	}
	return nil
}
