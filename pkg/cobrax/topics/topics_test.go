package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/broken-symlinks.md": {Data: []byte("# Broken symlinks\n\nDetails")},
		"help/option-workers.txt": {Data: []byte("Workers limit concurrency")},
		"help/config.txxt":        {Data: []byte("Configuration Guide")},
		"help/ignore.json":        {Data: []byte("{}")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"broken-symlinks", true, "# Broken symlinks\n\nDetails"},
			{"workers", true, "Workers limit concurrency"},
			{"--workers", true, "Workers limit concurrency"},
			{"config", false, ""},
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	return strings.ToUpper(content) + " (" + format + ")"
}

func newRoot(t *testing.T, opts Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "bitdoctor", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "list", Short: "List diagnoses", Run: func(*cobra.Command, []string) {}})
	require.NoError(t, InitializeWithOptions(root, testFS(), opts))

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	return root, &buf
}

func TestHelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		root, buf := newRoot(t, Options{Renderer: upperRenderer{}})
		root.SetArgs([]string{"help", "broken-symlinks"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# BROKEN SYMLINKS\n\nDETAILS (.md)", buf.String())
	})

	t.Run("topic list", func(t *testing.T) {
		root, buf := newRoot(t, Options{})
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "General topics:\n  broken-symlinks")
		assert.Contains(t, buf.String(), "Option topics:\n  --workers")
	})

	t.Run("command help", func(t *testing.T) {
		root, buf := newRoot(t, Options{})
		root.SetArgs([]string{"help", "list"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "List diagnoses")
	})
}
