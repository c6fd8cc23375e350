package commands_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/97gamjak/devops/internal/cli/config"
	"github.com/97gamjak/devops/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixConfig = `
[cpp]
license_header = "// Copyright {year} {owner}"

[license]
owner = "ACME"
year = "2026"
`

func fixTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"devops.toml": fixConfig,
		"src/plain.cpp": "int main() { return 0; }\n",
		"src/done.cpp":  "// Copyright 2026 ACME\n\nint main() { return 0; }\n",
		"notes.txt":     "not a source file\n",
	})
	return dir
}

func TestAddLicenseHeadersBatch(t *testing.T) {
	dir := fixTree(t)
	testutil.InDir(t, dir)

	stdout, _, err := testutil.ExecuteCommand(t, "add-license-headers")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 modified, 1 unchanged, 0 failed")

	fixed, readErr := os.ReadFile(filepath.Join(dir, "src", "plain.cpp"))
	require.NoError(t, readErr)
	assert.Equal(t,
		"// Copyright 2026 ACME\n\nint main() { return 0; }\n",
		string(fixed))

	// A second pass changes nothing.
	stdout, _, err = testutil.ExecuteCommand(t, "add-license-headers")
	require.NoError(t, err)
	assert.Contains(t, stdout, "0 modified, 2 unchanged, 0 failed")
}

func TestAddLicenseHeadersDryRun(t *testing.T) {
	dir := fixTree(t)
	testutil.InDir(t, dir)

	stdout, _, err := testutil.ExecuteCommand(t, "add-license-headers", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 modified, 1 unchanged, 0 failed (dry run)")

	// Nothing was written.
	raw, readErr := os.ReadFile(filepath.Join(dir, "src", "plain.cpp"))
	require.NoError(t, readErr)
	assert.Equal(t, "int main() { return 0; }\n", string(raw))
}

func TestAddLicenseHeadersJSON(t *testing.T) {
	testutil.InDir(t, fixTree(t))

	stdout, _, err := testutil.ExecuteCommand(t, "add-license-headers", "--format", "json")
	require.NoError(t, err)

	var env struct {
		DryRun    bool `json:"dry_run"`
		Modified  int  `json:"modified"`
		Unchanged int  `json:"unchanged"`
		Failed    int  `json:"failed"`
		Results   []struct {
			File  string `json:"file"`
			State string `json:"state"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &env))
	assert.False(t, env.DryRun)
	assert.Equal(t, 1, env.Modified)
	assert.Equal(t, 1, env.Unchanged)
	assert.Equal(t, 0, env.Failed)
	require.Len(t, env.Results, 2)
}

func TestAddLicenseHeaderSingleFile(t *testing.T) {
	dir := fixTree(t)
	testutil.InDir(t, dir)

	stdout, _, err := testutil.ExecuteCommand(t, "add-license-header", "src/plain.cpp")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 modified, 0 unchanged, 0 failed")

	fixed, readErr := os.ReadFile(filepath.Join(dir, "src", "plain.cpp"))
	require.NoError(t, readErr)
	assert.True(t, strings.HasPrefix(string(fixed), "// Copyright 2026 ACME\n"))

	// The untouched file stayed untouched.
	other, readErr := os.ReadFile(filepath.Join(dir, "src", "done.cpp"))
	require.NoError(t, readErr)
	assert.Equal(t, "// Copyright 2026 ACME\n\nint main() { return 0; }\n", string(other))
}

func TestAddLicenseHeaderRejectsUnrecognizedFile(t *testing.T) {
	testutil.InDir(t, fixTree(t))

	_, _, err := testutil.ExecuteCommand(t, "add-license-header", "notes.txt")
	require.EqualError(t, err, "notes.txt is not a recognized C/C++ file")
}

func TestAddLicenseHeadersWithoutConfiguredHeader(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"src/plain.cpp": "int main() { return 0; }\n",
	})
	testutil.InDir(t, dir)

	_, _, err := testutil.ExecuteCommand(t, "add-license-headers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no license header configured")

	var cfgErr *config.Error
	assert.True(t, errors.As(err, &cfgErr))
}
