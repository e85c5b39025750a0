package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	t.Parallel()
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Cristian Hernandez", s.Name)
	assert.Equal(t, "Full-Stack Developer", s.Phrases[0])
	assert.Len(t, s.Phrases, 5)
	assert.Len(t, s.Messages, 6)
	assert.Len(t, s.Skills, 6)
	assert.Len(t, s.Projects, 3)
	assert.Equal(t, []string{"Python", "Webots", "OOP"}, s.Projects[2].Tech)
	assert.Empty(t, s.Projects[2].SourceURL)
	assert.Equal(t, "C#", s.Skills[0].Skills[4])
}

func TestParseRejectsIncompleteContent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		yaml string
	}{
		{name: "malformed", yaml: "name: [unterminated"},
		{name: "no name", yaml: "phrases: [a]\nmascot_messages: [b]"},
		{name: "no phrases", yaml: "name: x\nmascot_messages: [b]"},
		{name: "no messages", yaml: "name: x\nphrases: [a]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, ErrInvalidContent)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Test\nphrases: [One]\nmascot_messages: [Hi]\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"One"}, s.Phrases)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	s, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "Cristian Hernandez", s.Name)
}
