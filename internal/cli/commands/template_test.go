package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/97gamjak/devops/internal/cli/config"
	"github.com/97gamjak/devops/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTomlTemplateWritesFile(t *testing.T) {
	dir := t.TempDir()
	testutil.InDir(t, dir)

	stdout, _, err := testutil.ExecuteCommand(t, "generate-toml-template")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote devops.toml")

	raw, readErr := os.ReadFile(filepath.Join(dir, "devops.toml"))
	require.NoError(t, readErr)
	assert.Equal(t, config.Template(), string(raw))
}

func TestGenerateTomlTemplateRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"devops.toml": "[cpp]\njobs = 3\n",
	})
	testutil.InDir(t, dir)

	_, _, err := testutil.ExecuteCommand(t, "generate-toml-template")
	require.EqualError(t, err, "devops.toml already exists, use --force to overwrite")

	// Untouched without --force.
	raw, readErr := os.ReadFile(filepath.Join(dir, "devops.toml"))
	require.NoError(t, readErr)
	assert.Equal(t, "[cpp]\njobs = 3\n", string(raw))

	_, _, err = testutil.ExecuteCommand(t, "generate-toml-template", "--force")
	require.NoError(t, err)

	raw, readErr = os.ReadFile(filepath.Join(dir, "devops.toml"))
	require.NoError(t, readErr)
	assert.Equal(t, config.Template(), string(raw))
}

func TestGenerateTomlTemplateCustomOutput(t *testing.T) {
	dir := t.TempDir()
	testutil.InDir(t, dir)

	_, _, err := testutil.ExecuteCommand(t, "generate-toml-template", "-o", "conf/devops.toml")
	require.Error(t, err, "parent directory does not exist")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "conf"), 0o755))
	_, _, err = testutil.ExecuteCommand(t, "generate-toml-template", "-o", "conf/devops.toml")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "conf", "devops.toml"))
	assert.NoError(t, statErr)
}
