// Package check implements the C/C++ hygiene engine: rule
// definitions, a global rule registry, file set resolution, and the
// engine that applies every active rule to every matching file.
//
// Rules live in the rules subpackage and register themselves on
// import:
//
//	import _ "github.com/97gamjak/devops/pkg/check/rules"
//
// A typical run resolves targets, builds an engine, and inspects the
// report:
//
//	resolver := &check.Resolver{Root: root, HeaderExts: []string{".h", ".hpp"}}
//	targets, err := resolver.Resolve("include", "src")
//	engine, err := check.NewEngine(check.Params{Config: cfg})
//	report, err := engine.Run(ctx, targets)
//	if report.Failed() { ... }
//
// Outcomes are ordered by target, one per applicable active rule, so
// repeated runs over the same tree render identically.
package check
