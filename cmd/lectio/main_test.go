package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/awalczyk/lectio/cmd/lectio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

// runCLI executes one CLI invocation against the database at dbPath.
func runCLI(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()

	m := main.NewMain()
	m.DBPath = dbPath

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := main.NewMain()
			m.DBPath = filepath.Join(t.TempDir(), "test.db")

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(testContext(), tt.args, stdout, stderr)

			require.NoError(t, err)
			// Usage should be printed to stdout (not stderr) when explicitly requested
			assert.Contains(t, stdout.String(), "Usage: lectio")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{}, stdout, stderr)

	// No args should show usage to stdout and return error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "Usage: lectio")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"bogus"}, stdout, stderr)

	require.Error(t, err)
}

func TestRun_HelpWithoutCreatingDB(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "should-not-exist.db")

	m := main.NewMain()
	m.DBPath = dbPath

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"--help"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Usage: lectio")
	assert.Empty(t, stderr.String())

	// Verify database file was NOT created
	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr), "database file should not be created for --help")
}

// TestRun_EndToEnd drives the full command surface against a real
// database file: import, read, annotate, bookmark, search, settings,
// and export, in the order a user would.
func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "lectio.db")
	xmlPath := filepath.Join(tmpDir, "sample.xml")
	require.NoError(t, os.WriteFile(xmlPath, []byte(sampleBibleXML), 0644))

	// Import the sample translation, with verbose logging on stderr.
	stdout, stderr, err := runCLI(t, dbPath, "import", "kjv", xmlPath, "-v")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported kjv: 4 verses across 2 books")
	assert.Contains(t, stderr, "import finished")

	// A second import without --force is skipped.
	stdout, _, err = runCLI(t, dbPath, "import", "kjv", xmlPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, `Translation "kjv" already has 4 verses. Use --force to re-import.`)

	// --force replaces the stored text.
	stdout, _, err = runCLI(t, dbPath, "import", "kjv", xmlPath, "--force")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported kjv: 4 verses across 2 books")

	// Status reports the translation and its last import session.
	stdout, _, err = runCLI(t, dbPath, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "kjv: 4 verses")
	assert.Contains(t, stdout, "last import")
	assert.Contains(t, stdout, "sample.xml")
	assert.Contains(t, stdout, "(4 verses, 2 books)")

	// Read a chapter; nothing is annotated yet.
	stdout, _, err = runCLI(t, dbPath, "chapter", "kjv", "John", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "John 3 (kjv)")
	assert.Contains(t, stdout, " 16  For God so loved the world")
	assert.NotContains(t, stdout, "16*")

	// Search the stored text.
	stdout, _, err = runCLI(t, dbPath, "search", "kjv", "shepherd")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Psalms 23:1  The LORD is my shepherd")
	assert.Contains(t, stdout, "1 match")

	// Annotate a verse.
	stdout, _, err = runCLI(t, dbPath, "annotate", "kjv", "John 3:16",
		"--color", "amber", "--note", "the heart of the gospel")
	require.NoError(t, err)
	assert.Contains(t, stdout, "John 3:16  [amber] (study) the heart of the gospel")

	// The chapter view now carries the marker and the annotation detail.
	stdout, _, err = runCLI(t, dbPath, "chapter", "kjv", "John", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, " 16* For God so loved the world")
	assert.Contains(t, stdout, "[amber] (study) the heart of the gospel")

	// Showing the annotation without change flags reads it back.
	stdout, _, err = runCLI(t, dbPath, "annotate", "kjv", "John 3:16")
	require.NoError(t, err)
	assert.Contains(t, stdout, "John 3:16  [amber] (study) the heart of the gospel")

	// The note shows up in the notes and highlights listings.
	stdout, _, err = runCLI(t, dbPath, "notes", "kjv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "John 3:16")

	stdout, _, err = runCLI(t, dbPath, "highlights", "kjv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[amber]")

	// Toggle a chapter bookmark on, list it, toggle it off.
	stdout, _, err = runCLI(t, dbPath, "bookmark", "kjv", "John", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bookmarked John 3 (kjv).")

	stdout, _, err = runCLI(t, dbPath, "bookmarks", "kjv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "John 3  saved")

	stdout, _, err = runCLI(t, dbPath, "bookmark", "kjv", "John", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed bookmark on John 3 (kjv).")

	// Settings round-trip.
	stdout, _, err = runCLI(t, dbPath, "setting", "set", "reader.translation", "kjv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Set reader.translation = kjv")

	stdout, _, err = runCLI(t, dbPath, "setting", "get", "reader.translation")
	require.NoError(t, err)
	assert.Contains(t, stdout, "kjv")

	stdout, _, err = runCLI(t, dbPath, "setting", "unset", "reader.translation")
	require.NoError(t, err)
	assert.Contains(t, stdout, `Removed setting "reader.translation".`)

	_, stderr, err = runCLI(t, dbPath, "setting", "get", "reader.translation")
	require.Error(t, err)
	assert.Contains(t, stderr, "error:")

	// Export the annotations as markdown.
	exportDir := filepath.Join(tmpDir, "export")
	stdout, _, err = runCLI(t, dbPath, "export", "kjv", "--dir", exportDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "kjv/43-john.md")

	content, err := os.ReadFile(filepath.Join(exportDir, "kjv", "43-john.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "translation: kjv")
	assert.Contains(t, string(content), "## John 3:16")
	assert.Contains(t, string(content), "the heart of the gospel")
	assert.Contains(t, string(content), "highlight: amber")

	// Clear the annotation; the notes listing empties out.
	stdout, _, err = runCLI(t, dbPath, "annotate", "kjv", "John 3:16", "--clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Cleared annotation on John 3:16.")

	stdout, _, err = runCLI(t, dbPath, "notes", "kjv")
	require.NoError(t, err)
	assert.Contains(t, stdout, `No notes for "kjv".`)
}
