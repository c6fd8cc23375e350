package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixHeader = "// Copyright 2026 ACME\n// All rights reserved.\n"

func fixTarget(root, rel string) Target {
	return Target{
		Path:    filepath.Join(root, filepath.FromSlash(rel)),
		RelPath: rel,
		Kind:    KindHeader,
	}
}

func TestFixerAddsHeader(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.hpp", "#pragma once\nint x;\n")

	f := &Fixer{Header: fixHeader}
	muts := f.Apply([]Target{fixTarget(root, "a.hpp")})

	require.Len(t, muts, 1)
	assert.Equal(t, MutationModified, muts[0].State)

	got, err := os.ReadFile(filepath.Join(root, "a.hpp"))
	require.NoError(t, err)
	want := "// Copyright 2026 ACME\n// All rights reserved.\n\n#pragma once\nint x;\n"
	assert.Equal(t, want, string(got))
}

func TestFixerIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.hpp", "int x;\n")
	target := fixTarget(root, "a.hpp")

	f := &Fixer{Header: fixHeader}
	first := f.Apply([]Target{target})
	require.Equal(t, MutationModified, first[0].State)

	afterFirst, err := os.ReadFile(target.Path)
	require.NoError(t, err)

	second := f.Apply([]Target{target})
	require.Equal(t, MutationUnchanged, second[0].State)

	afterSecond, err := os.ReadFile(target.Path)
	require.NoError(t, err)
	assert.Equal(t, string(afterFirst), string(afterSecond))
}

func TestFixerDryRun(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.hpp", "int x;\n")
	target := fixTarget(root, "a.hpp")

	f := &Fixer{Header: fixHeader, DryRun: true}
	muts := f.Apply([]Target{target})
	require.Equal(t, MutationModified, muts[0].State)

	got, err := os.ReadFile(target.Path)
	require.NoError(t, err)
	assert.Equal(t, "int x;\n", string(got))
}

func TestFixerPreservesPermissions(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "a.hpp", "int x;\n")
	require.NoError(t, os.Chmod(path, 0o600))

	f := &Fixer{Header: fixHeader}
	muts := f.Apply([]Target{fixTarget(root, "a.hpp")})
	require.Equal(t, MutationModified, muts[0].State)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFixerMissingFile(t *testing.T) {
	root := t.TempDir()

	f := &Fixer{Header: fixHeader}
	muts := f.Apply([]Target{fixTarget(root, "nope.hpp")})

	require.Len(t, muts, 1)
	assert.Equal(t, MutationFailed, muts[0].State)
	var merr *MutationError
	require.ErrorAs(t, muts[0].Err, &merr)
	assert.Equal(t, "nope.hpp", merr.Path)
}

func TestFixerBatchContinuesAfterFailure(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.hpp", "int x;\n")

	f := &Fixer{Header: fixHeader}
	muts := f.Apply([]Target{
		fixTarget(root, "missing.hpp"),
		fixTarget(root, "b.hpp"),
	})

	require.Len(t, muts, 2)
	assert.Equal(t, MutationFailed, muts[0].State)
	assert.Equal(t, MutationModified, muts[1].State)
}

func TestFixerUndecodableFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "bad.hpp")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o644))

	f := &Fixer{Header: fixHeader}
	muts := f.Apply([]Target{fixTarget(root, "bad.hpp")})
	require.Equal(t, MutationFailed, muts[0].State)

	// Original bytes untouched.
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xfe, 0x00}, got)
}
