package check

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultMaxDepth bounds how deep Resolve descends below each
// requested directory.
const DefaultMaxDepth = 20

// Resolver expands directories and explicit paths into a sorted,
// deduplicated list of check targets.
type Resolver struct {
	// Root is the project root. RelPath on every produced target is
	// relative to it.
	Root string
	// HeaderExts and SourceExts classify files by extension. A file
	// matching neither list is not a target.
	HeaderExts []string
	SourceExts []string
	// IgnoreDirs lists directory basenames that are never descended
	// into, e.g. ".git" or "build".
	IgnoreDirs []string
	// MaxDepth bounds directory recursion. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// Resolve walks the given directories below Root and returns every
// matching file as a target, sorted by RelPath. Paths may be
// absolute or relative to Root; passing no directories walks Root
// itself.
func (r *Resolver) Resolve(dirs ...string) ([]Target, error) {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	var targets []Target
	for _, dir := range dirs {
		found, err := r.walkDir(dir)
		if err != nil {
			return nil, err
		}
		targets = append(targets, found...)
	}
	return dedupe(targets), nil
}

// TargetsFromPaths converts an explicit file list, such as the
// staged files of a git index, into targets. Paths that no longer
// exist are skipped, as are files matching neither extension list.
func (r *Resolver) TargetsFromPaths(paths []string) ([]Target, error) {
	var targets []Target
	for _, p := range paths {
		kind, ok := r.classify(p)
		if !ok {
			continue
		}
		abs := p
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(r.Root, p)
		}
		if _, err := os.Stat(abs); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, &ResolutionError{Path: p, Err: err}
		}
		targets = append(targets, r.target(abs, kind))
	}
	return dedupe(targets), nil
}

func (r *Resolver) walkDir(dir string) ([]Target, error) {
	base := dir
	if !filepath.IsAbs(base) {
		base = filepath.Join(r.Root, base)
	}
	maxDepth := r.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var targets []Target
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &ResolutionError{Path: path, Err: err}
		}
		if d.IsDir() {
			if path == base {
				return nil
			}
			if r.ignoredDir(d.Name()) || depthBelow(base, path) > maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		kind, ok := r.classify(d.Name())
		if !ok {
			return nil
		}
		targets = append(targets, r.target(path, kind))
		return nil
	})
	if err != nil {
		var rerr *ResolutionError
		if errors.As(err, &rerr) {
			return nil, rerr
		}
		return nil, &ResolutionError{Path: dir, Err: err}
	}
	return targets, nil
}

func (r *Resolver) target(abs string, kind FileKind) Target {
	rel, err := filepath.Rel(r.Root, abs)
	if err != nil {
		rel = abs
	}
	return Target{Path: abs, RelPath: filepath.ToSlash(rel), Kind: kind}
}

// classify maps a file name onto a kind via its extension. Matching
// is exact, so the configured lists decide about case.
func (r *Resolver) classify(name string) (FileKind, bool) {
	ext := filepath.Ext(name)
	for _, e := range r.HeaderExts {
		if ext == e {
			return KindHeader, true
		}
	}
	for _, e := range r.SourceExts {
		if ext == e {
			return KindSource, true
		}
	}
	return KindSource, false
}

func (r *Resolver) ignoredDir(name string) bool {
	for _, d := range r.IgnoreDirs {
		if name == d {
			return true
		}
	}
	return false
}

func depthBelow(base, path string) int {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

func dedupe(targets []Target) []Target {
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].RelPath < targets[j].RelPath
	})
	out := targets[:0]
	var last string
	for i, t := range targets {
		if i > 0 && t.RelPath == last {
			continue
		}
		out = append(out, t)
		last = t.RelPath
	}
	return out
}
