package gitx

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo creates a git repository with one empty commit and
// returns a client for it. Tests are skipped when git is not
// installed.
func newTestRepo(t *testing.T) *Client {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{
			"-c", "user.name=test",
			"-c", "user.email=test@example.com",
		}, args...)...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}
	run("init")
	run("commit", "--allow-empty", "-m", "initial")
	run("tag", "v0.1.0")
	run("tag", "v0.2.0")
	run("tag", "v0.10.0")
	run("tag", "not-a-version")
	run("tag", "v1.2")

	return &Client{Dir: dir}
}

func TestClientTags(t *testing.T) {
	c := newTestRepo(t)

	tags, err := c.Tags(context.Background(), "v")
	require.NoError(t, err)

	var names []string
	for _, tag := range tags {
		names = append(names, tag.String())
	}
	// Unparseable names are skipped.
	assert.ElementsMatch(t, []string{"v0.1.0", "v0.2.0", "v0.10.0"}, names)
}

func TestClientLatest(t *testing.T) {
	c := newTestRepo(t)

	latest, err := c.Latest(context.Background(), "v", false)
	require.NoError(t, err)
	assert.Equal(t, "v0.10.0", latest.String())
}

func TestClientLatestEmpty(t *testing.T) {
	c := newTestRepo(t)

	_, err := c.Latest(context.Background(), "release-", false)
	require.Error(t, err)

	zero, err := c.Latest(context.Background(), "release-", true)
	require.NoError(t, err)
	assert.Equal(t, "release-0.0.0", zero.String())
}

func TestClientStagedFiles(t *testing.T) {
	c := newTestRepo(t)

	staged, err := c.StagedFiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, staged)

	require.NoError(t, os.WriteFile(filepath.Join(c.Dir, "a.hpp"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(c.Dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(c.Dir, "src", "b.cpp"), []byte("y"), 0o644))

	add := exec.Command("git", "add", "a.hpp", "src/b.cpp")
	add.Dir = c.Dir
	out, err := add.CombinedOutput()
	require.NoError(t, err, string(out))

	staged, err = c.StagedFiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.hpp", "src/b.cpp"}, staged)
}

func TestClientRunFailure(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	c := &Client{Dir: t.TempDir()}
	_, err := c.Tags(context.Background(), "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git tag")
}
