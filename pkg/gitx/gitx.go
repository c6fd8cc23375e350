// Package gitx wraps the git binary for the small set of repository
// questions the CLI asks: release tags and the staged file list.
package gitx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Client runs git commands in a fixed repository directory.
type Client struct {
	// Dir is the repository working directory. Empty means the
	// process working directory.
	Dir string
	// Logger receives skipped-tag notices. Nil discards them.
	Logger *slog.Logger
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// run executes git with the given arguments and returns stdout.
// Failures include git's stderr in the error message.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.Dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			if stderr != "" {
				return "", fmt.Errorf("git %s: %s", args[0], stderr)
			}
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(out), nil
}

// Tags returns every tag that parses with the given prefix, in the
// order git lists them. Tag names that do not parse are skipped with
// a debug log.
func (c *Client) Tags(ctx context.Context, prefix string) ([]Tag, error) {
	out, err := c.run(ctx, "tag", "--list")
	if err != nil {
		return nil, err
	}

	var tags []Tag
	for _, name := range splitLines(out) {
		tag, err := ParseTag(prefix, name)
		if err != nil {
			c.logger().Debug("skipping unparseable tag", "tag", name, "error", err)
			continue
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// Latest returns the highest release tag. When no tag parses and
// allowEmpty is set, the zero tag (e.g. "v0.0.0") is returned;
// otherwise the empty tag list is an error.
func (c *Client) Latest(ctx context.Context, prefix string, allowEmpty bool) (Tag, error) {
	tags, err := c.Tags(ctx, prefix)
	if err != nil {
		return Tag{}, err
	}
	if len(tags) == 0 {
		if allowEmpty {
			return Tag{Prefix: prefix}, nil
		}
		return Tag{}, fmt.Errorf("no release tags with prefix %q found", prefix)
	}

	latest := tags[0]
	for _, t := range tags[1:] {
		if latest.Less(t) {
			latest = t
		}
	}
	return latest, nil
}

// StagedFiles returns the paths staged in the index, relative to the
// repository root.
func (c *Client) StagedFiles(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "diff", "--name-only", "--cached")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
