package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/97gamjak/devops/internal/cli/testutil"
	"github.com/97gamjak/devops/pkg/changelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const changelogFixture = `# Changelog

## Next Release

` + changelog.InsertionMarker + `

## [v1.0.0](https://example.com/releases/tag/v1.0.0) - 2026-01-01
`

func TestUpdateChangelogInsertsEntry(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"CHANGELOG.md": changelogFixture,
	})
	testutil.InDir(t, dir)

	stdout, _, err := testutil.ExecuteCommand(t,
		"update-changelog", "v1.1.0", "--repo", "https://example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "added v1.1.0 to CHANGELOG.md")

	raw, readErr := os.ReadFile(filepath.Join(dir, "CHANGELOG.md"))
	require.NoError(t, readErr)
	content := string(raw)
	assert.Contains(t, content, "## [v1.1.0](https://example.com/releases/tag/v1.1.0)")
	// The new entry sits above the previous release.
	assert.Less(t,
		strings.Index(content, "v1.1.0"),
		strings.Index(content, "v1.0.0"))
}

func TestUpdateChangelogCustomPath(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"docs/HISTORY.md": changelogFixture,
	})
	testutil.InDir(t, dir)

	_, _, err := testutil.ExecuteCommand(t,
		"update-changelog", "v2.0.0", "--changelog", "docs/HISTORY.md")
	require.NoError(t, err)

	raw, readErr := os.ReadFile(filepath.Join(dir, "docs", "HISTORY.md"))
	require.NoError(t, readErr)
	assert.Contains(t, string(raw), "v2.0.0")
}

func TestUpdateChangelogMissingHeading(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"CHANGELOG.md": "# Changelog\n\nno release section here\n",
	})
	testutil.InDir(t, dir)

	_, _, err := testutil.ExecuteCommand(t, "update-changelog", "v1.1.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no '## Next Release' heading")
}

func TestUpdateChangelogMissingFile(t *testing.T) {
	testutil.InDir(t, t.TempDir())

	_, _, err := testutil.ExecuteCommand(t, "update-changelog", "v1.1.0")
	require.Error(t, err)
}
