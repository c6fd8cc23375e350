package check

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// MutationState describes what happened to a single file during a
// header fix pass.
type MutationState int

const (
	// MutationUnchanged means the file already carried the header.
	MutationUnchanged MutationState = iota
	// MutationModified means the header was prepended, or would be
	// in a dry run.
	MutationModified
	// MutationFailed means the file could not be rewritten. The
	// original file is untouched.
	MutationFailed
)

// String returns the lowercase name of the state.
func (s MutationState) String() string {
	switch s {
	case MutationUnchanged:
		return "unchanged"
	case MutationModified:
		return "modified"
	case MutationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Mutation records the fix result for one file.
type Mutation struct {
	Path  string
	State MutationState
	// Err is set only for MutationFailed.
	Err error
}

// Fixer prepends a license header to files that lack it. Applying
// the fixer twice leaves files identical to applying it once.
type Fixer struct {
	// Header is the effective header text, placeholders already
	// substituted.
	Header string
	// Codec reads and writes files in the configured charset. Nil
	// means utf-8.
	Codec *Codec
	// DryRun reports what would change without writing anything.
	DryRun bool
	// Logger receives per-file results. Nil discards them.
	Logger *slog.Logger
}

// Apply fixes every target in order and returns one mutation per
// target. Failures do not stop the pass.
func (f *Fixer) Apply(targets []Target) []Mutation {
	logger := f.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	codec := f.Codec
	if codec == nil {
		codec, _ = NewCodec("utf-8")
	}

	block := strings.TrimRight(NormalizeNewlines(f.Header), "\n") + "\n\n"

	mutations := make([]Mutation, 0, len(targets))
	for _, t := range targets {
		m := f.apply(t, block, codec)
		switch m.State {
		case MutationFailed:
			logger.Warn("header fix failed", "path", m.Path, "error", m.Err)
		case MutationModified:
			logger.Info("header added", "path", m.Path, "dry_run", f.DryRun)
		default:
			logger.Debug("header already present", "path", m.Path)
		}
		mutations = append(mutations, m)
	}
	return mutations
}

func (f *Fixer) apply(t Target, block string, codec *Codec) Mutation {
	fail := func(err error) Mutation {
		return Mutation{Path: t.RelPath, State: MutationFailed,
			Err: &MutationError{Path: t.RelPath, Err: err}}
	}

	raw, err := os.ReadFile(t.Path)
	if err != nil {
		return fail(err)
	}
	content, err := codec.Decode(raw)
	if err != nil {
		return fail(err)
	}
	content = NormalizeNewlines(content)

	if HasLicenseHeader(content, f.Header) {
		return Mutation{Path: t.RelPath, State: MutationUnchanged}
	}
	if f.DryRun {
		return Mutation{Path: t.RelPath, State: MutationModified}
	}

	out, err := codec.Encode(block + content)
	if err != nil {
		return fail(err)
	}
	if err := atomicWrite(t.Path, out); err != nil {
		return fail(err)
	}
	return Mutation{Path: t.RelPath, State: MutationModified}
}

// atomicWrite replaces path via a temp file in the same directory,
// preserving the original permission bits. The destination either
// keeps its old content or holds the complete new content.
func atomicWrite(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".devops-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
