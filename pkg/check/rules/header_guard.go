package rules

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/97gamjak/devops/pkg/check"
)

const (
	defaultGuardPrefix      = "__"
	defaultGuardSuffix      = "_HPP__"
	defaultGuardSearchLines = 50
)

var defaultGuardStripPrefixes = []string{"include/", "test/"}

// HG01HeaderGuard flags header files without a complete include
// guard and, when enforce_format is set, guards whose macro does not
// match the name derived from the file path.
var HG01HeaderGuard = check.RuleDef{
	ID:          "HG01",
	Name:        "header_guard",
	Group:       "guard",
	Description: "Header files must carry a complete include guard.",
	Kinds:       []check.FileKind{check.KindHeader},
	ConfigKeys: []string{
		"enforce_format", "path_based", "prefix", "suffix",
		"macro", "strip_prefixes", "search_lines",
	},
}

func init() {
	HG01HeaderGuard.Check = checkHeaderGuard
	check.Register(HG01HeaderGuard)
}

// guardScan is the result of looking for a guard near the top of a
// header.
type guardScan struct {
	macro      string
	pragmaOnce bool
	// reason explains a found-but-incomplete #ifndef triple.
	reason string
}

func checkHeaderGuard(t check.Target, content string, opts check.Options) check.Outcome {
	window := check.GetIntOption(opts, "search_lines", defaultGuardSearchLines)
	scan := scanGuard(strings.Split(content, "\n"), window)

	enforce := check.GetBoolOption(opts, "enforce_format", false)

	switch {
	case scan.macro != "":
		if !enforce {
			return check.Pass(HG01HeaderGuard.ID, t)
		}
		expected := expectedGuardMacro(t.RelPath, opts)
		if scan.macro != expected {
			return check.Violation(HG01HeaderGuard.ID, t,
				fmt.Sprintf("header guard mismatch: expected %s, got %s", expected, scan.macro))
		}
		return check.Pass(HG01HeaderGuard.ID, t)

	case scan.pragmaOnce:
		if enforce {
			expected := expectedGuardMacro(t.RelPath, opts)
			return check.Violation(HG01HeaderGuard.ID, t,
				fmt.Sprintf("header guard mismatch: expected %s, got #pragma once", expected))
		}
		return check.Pass(HG01HeaderGuard.ID, t)

	case scan.reason != "":
		return check.Violation(HG01HeaderGuard.ID, t, scan.reason)

	default:
		return check.Violation(HG01HeaderGuard.ID, t, "no header guard found")
	}
}

// scanGuard looks for the guard near the top of the file. The first
// #ifndef with a macro token inside the window is assumed to be the
// guard; later #ifndef directives are never considered. A #pragma
// once anywhere in the window counts as guard presence on its own.
func scanGuard(lines []string, window int) guardScan {
	if window <= 0 || window > len(lines) {
		window = len(lines)
	}

	var scan guardScan
	for i := 0; i < window; i++ {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "#pragma") {
			fields := strings.Fields(line)
			if len(fields) >= 2 && fields[1] == "once" {
				scan.pragmaOnce = true
			}
			continue
		}
		if !strings.HasPrefix(line, "#ifndef") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		macro := fields[1]
		if !macroDefined(lines, macro) {
			scan.reason = fmt.Sprintf("no header guard found: macro %s never defined with #define", macro)
			return scan
		}
		if !hasEndif(lines) {
			scan.reason = "no header guard found: missing closing #endif"
			return scan
		}
		scan.macro = macro
		return scan
	}
	return scan
}

func macroDefined(lines []string, macro string) bool {
	for _, l := range lines {
		line := strings.TrimSpace(l)
		if !strings.HasPrefix(line, "#define") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == macro {
			return true
		}
	}
	return false
}

func hasEndif(lines []string) bool {
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "#endif") {
			return true
		}
	}
	return false
}

// expectedGuardMacro computes the macro a guard must use. With
// path_based (the default) the name derives from the slash-separated
// relative path: upper-case it, strip the configured leading
// prefixes, turn separators into double underscores, drop the
// extension, and wrap it in prefix and suffix. include/foo/bar.hpp
// becomes __FOO__BAR_HPP__ with the defaults. With path_based off
// the fixed macro option is expected verbatim.
func expectedGuardMacro(relPath string, opts check.Options) string {
	if !check.GetBoolOption(opts, "path_based", true) {
		return check.GetStringOption(opts, "macro", "")
	}

	prefix := check.GetStringOption(opts, "prefix", defaultGuardPrefix)
	suffix := check.GetStringOption(opts, "suffix", defaultGuardSuffix)
	strip := check.GetStringSliceOption(opts, "strip_prefixes", defaultGuardStripPrefixes)

	name := strings.ToUpper(filepath.ToSlash(relPath))
	for _, p := range strip {
		name = strings.TrimPrefix(name, strings.ToUpper(p))
	}
	name = strings.ReplaceAll(name, "/", "__")
	name = strings.TrimSuffix(name, ".HPP")
	name = strings.TrimSuffix(name, ".H")
	return prefix + name + suffix
}
