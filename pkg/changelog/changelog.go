// Package changelog maintains a keep-a-changelog style file with a
// "## Next Release" section and an insertion marker that tracks
// where released entries begin.
package changelog

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

// DefaultRepoURL is the placeholder repository URL used in release
// links until a real one is configured.
const DefaultRepoURL = "https://github.com/repo/owner"

// InsertionMarker separates the unreleased section from released
// entries. Update moves it in front of the newest entry.
const InsertionMarker = "<!-- insertion marker -->"

var nextReleasePat = regexp.MustCompile(`^##\s+Next Release`)

// MarkerError reports a changelog without the required
// "## Next Release" heading.
type MarkerError struct {
	Path string
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("no '## Next Release' heading in %s", e.Path)
}

// Update inserts a release entry for version right below the
// "## Next Release" heading and moves the insertion marker in front
// of it. The entry links to the release tag and carries the UTC date
// of now:
//
//	## [v1.2.3](<repoURL>/releases/tag/v1.2.3) - 2026-01-31
//
// The previous marker line is dropped wherever it was. A missing
// heading yields a *MarkerError and leaves the file untouched.
func Update(path, version, repoURL string, now time.Time) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	entry := fmt.Sprintf("## [%s](%s/releases/tag/%s) - %s",
		version, repoURL, version, now.UTC().Format("2006-01-02"))

	content := strings.ReplaceAll(string(raw), "\r\n", "\n")
	lines := strings.Split(content, "\n")

	updated := make([]string, 0, len(lines)+3)
	inserted := false
	for _, line := range lines {
		switch {
		case !inserted && nextReleasePat.MatchString(line):
			updated = append(updated, line, "", InsertionMarker, entry)
			inserted = true
		case strings.Contains(line, InsertionMarker):
			// Old marker line, dropped.
		default:
			updated = append(updated, line)
		}
	}
	if !inserted {
		return &MarkerError{Path: path}
	}

	out := strings.Join(updated, "\n") + "\n"
	return os.WriteFile(path, []byte(out), info.Mode().Perm())
}
