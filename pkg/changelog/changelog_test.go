package changelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var updateTime = time.Date(2026, 1, 31, 15, 4, 5, 0, time.UTC)

func writeChangelog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "CHANGELOG.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUpdateInsertsEntry(t *testing.T) {
	path := writeChangelog(t, strings.Join([]string{
		"# Changelog",
		"",
		"## Next Release",
		InsertionMarker,
		"## [v1.0.0](https://example.com/r/releases/tag/v1.0.0) - 2025-12-01",
		"- old stuff",
		"",
	}, "\n"))

	err := Update(path, "v1.1.0", "https://example.com/r", updateTime)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want := strings.Join([]string{
		"# Changelog",
		"",
		"## Next Release",
		"",
		InsertionMarker,
		"## [v1.1.0](https://example.com/r/releases/tag/v1.1.0) - 2026-01-31",
		"## [v1.0.0](https://example.com/r/releases/tag/v1.0.0) - 2025-12-01",
		"- old stuff",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, string(got))
}

func TestUpdateMovesMarkerAboveNewestEntry(t *testing.T) {
	path := writeChangelog(t, "## Next Release\n"+InsertionMarker+"\n")

	require.NoError(t, Update(path, "v0.1.0", DefaultRepoURL, updateTime))
	require.NoError(t, Update(path, "v0.2.0", DefaultRepoURL, updateTime))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(got)
	// Exactly one marker, sitting above the newest entry.
	assert.Equal(t, 1, strings.Count(content, InsertionMarker))
	idxMarker := strings.Index(content, InsertionMarker)
	idxNew := strings.Index(content, "## [v0.2.0]")
	idxOld := strings.Index(content, "## [v0.1.0]")
	require.True(t, idxMarker >= 0 && idxNew >= 0 && idxOld >= 0)
	assert.Less(t, idxMarker, idxNew)
	assert.Less(t, idxNew, idxOld)
}

func TestUpdateMissingHeading(t *testing.T) {
	path := writeChangelog(t, "# Changelog\n\nno heading here\n")

	err := Update(path, "v1.0.0", DefaultRepoURL, updateTime)
	require.Error(t, err)
	var merr *MarkerError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, path, merr.Path)

	// File untouched on error.
	got, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "# Changelog\n\nno heading here\n", string(got))
}

func TestUpdateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.md")
	err := Update(path, "v1.0.0", DefaultRepoURL, updateTime)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestUpdateEntryUsesUTCDate(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	est := time.FixedZone("EST", -5*3600)
	local := time.Date(2026, 1, 31, 23, 30, 0, 0, est)

	path := writeChangelog(t, "## Next Release\n")
	require.NoError(t, Update(path, "v1.0.0", DefaultRepoURL, local))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "- 2026-02-01")
}
