package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/97gamjak/devops/internal/cli/config"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, exitCode(nil))
	assert.Equal(t, ExitFailure, exitCode(errors.New("3 rule violations found")))
	assert.Equal(t, ExitConfigError, exitCode(&config.Error{Err: errors.New("bad toml")}))
	assert.Equal(t, ExitConfigError,
		exitCode(fmt.Errorf("loading: %w", &config.Error{Err: errors.New("bad level")})))
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{
		"cpp-checks",
		"add-license-header",
		"add-license-headers",
		"filter-buggy-cpp-files",
		"get-latest-tag",
		"increase-latest-tag",
		"update-changelog",
		"generate-toml-template",
		"rules",
		"version",
	}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		assert.NoError(t, err, name)
		assert.NotNil(t, cmd, name)
	}
}
