package commands_test

import (
	"encoding/json"
	"testing"

	"github.com/97gamjak/devops/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesListsBuiltins(t *testing.T) {
	testutil.InDir(t, t.TempDir())

	stdout, _, err := testutil.ExecuteCommand(t, "rules")
	require.NoError(t, err)

	assert.Contains(t, stdout, "LH01")
	assert.Contains(t, stdout, "HG01")
	assert.Contains(t, stdout, "KW01")
	assert.Contains(t, stdout, "license_header")
	assert.Contains(t, stdout, "header_guard")
	assert.Contains(t, stdout, "keyword_order")
}

func TestRulesGroupFilter(t *testing.T) {
	testutil.InDir(t, t.TempDir())

	stdout, _, err := testutil.ExecuteCommand(t, "rules", "--group", "guard")
	require.NoError(t, err)

	assert.Contains(t, stdout, "HG01")
	assert.NotContains(t, stdout, "LH01")
	assert.NotContains(t, stdout, "KW01")
}

func TestRulesJSON(t *testing.T) {
	testutil.InDir(t, t.TempDir())

	stdout, _, err := testutil.ExecuteCommand(t, "rules", "--format", "json")
	require.NoError(t, err)

	var infos []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Group string `json:"group"`
		Kinds string `json:"kinds"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &infos))
	require.Len(t, infos, 3)

	byID := make(map[string]string)
	for _, info := range infos {
		byID[info.ID] = info.Kinds
	}
	assert.Equal(t, "all files", byID["LH01"])
	assert.Equal(t, "headers", byID["HG01"])
}
